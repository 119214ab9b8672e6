// Package scoring implements the four pure scoring functions, one per
// instrument. Each takes a completed answer collection and the static scale
// tables from the survey package and returns a typed result. Scoring is
// deterministic: identical input always yields an identical result.
package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/violetta-bot/violetta/internal/models"
	"github.com/violetta-bot/violetta/internal/survey"
)

// round2 rounds to two decimal places, matching the stored precision of
// category averages and summary indices.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ScoreTest1 scores the accentuation questionnaire. A positive scale index
// contributes when the answer is "yes", a negative index when it is "no";
// the match count times the scale multiplier is the scale score. Dominant
// scales are those at the maximum, provided the maximum is above zero.
func ScoreTest1(answers []string) (*models.Test1Result, error) {
	if len(answers) < len(survey.Test1Def.Questions) {
		return nil, models.ErrMissingAnswers
	}

	scores := make(map[int]int, len(survey.AccentuationScales))
	for num, scale := range survey.AccentuationScales {
		matched := 0
		for _, q := range scale.Positive {
			if q-1 < len(answers) && answers[q-1] == models.AnswerYes {
				matched++
			}
		}
		for _, q := range scale.Negative {
			if q-1 < len(answers) && answers[q-1] == models.AnswerNo {
				matched++
			}
		}
		scores[num] = matched * scale.Multiplier
	}

	maxScore := 0
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}

	var dominant []int
	if maxScore > 0 {
		for num, s := range scores {
			if s == maxScore {
				dominant = append(dominant, num)
			}
		}
		sort.Ints(dominant)
	}

	return &models.Test1Result{
		Scores:         scores,
		DominantScales: dominant,
		MaxScore:       maxScore,
		Description:    test1Description(dominant),
	}, nil
}

func test1Description(dominant []int) string {
	var b strings.Builder
	b.WriteString("📊 Результаты анализа личности\n\n")

	switch {
	case len(dominant) == 0:
		b.WriteString("На основе ваших ответов не выявлено ярко выраженных акцентуаций характера.")
	case len(dominant) == 1:
		b.WriteString(survey.AccentuationDescriptions[dominant[0]])
	default:
		b.WriteString("У вас выражено несколько типов акцентуаций:\n\n")
		for _, scale := range dominant {
			b.WriteString(survey.AccentuationDescriptions[scale])
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// modalityOrder fixes the iteration order so ties render deterministically.
var modalityOrder = []models.Modality{
	models.ModalityVisual,
	models.ModalityAudial,
	models.ModalityKinesthetic,
}

// ScoreTest2 scores the perceptual modality questionnaire. Each channel
// counts "yes" answers among its member indices; all channels tied at the
// maximum are dominant, ties at zero included.
func ScoreTest2(answers []string) (*models.Test2Result, error) {
	if len(answers) < len(survey.Test2Def.Questions) {
		return nil, models.ErrMissingAnswers
	}

	scores := make(map[models.Modality]int, len(modalityOrder))
	for _, m := range modalityOrder {
		count := 0
		for _, q := range survey.ModalityScales[m] {
			if q-1 < len(answers) && answers[q-1] == models.AnswerYes {
				count++
			}
		}
		scores[m] = count
	}

	maxScore := 0
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}

	var dominant []models.Modality
	for _, m := range modalityOrder {
		if scores[m] == maxScore {
			dominant = append(dominant, m)
		}
	}

	return &models.Test2Result{
		Scores:        scores,
		DominantTypes: dominant,
		Description:   test2Description(dominant),
	}, nil
}

func test2Description(dominant []models.Modality) string {
	var b strings.Builder
	b.WriteString("📊 Результаты анализа типа восприятия\n\n")
	for _, m := range dominant {
		d := survey.ModalityDescriptions[m]
		b.WriteString(d.Title)
		b.WriteString("\n")
		b.WriteString(d.Description)
		b.WriteString("\n\n")
	}
	return b.String()
}

// ScoreTest3 scores the two HADS parts independently. Answers are option
// indices into each question's own option list; the part score is the sum of
// the chosen options' values. The two parts share no state: reordering which
// part is scored first cannot change either score.
func ScoreTest3(anxiety, depression []int) (*models.Test3Result, error) {
	anxietyScore, err := scoreTest3Part(survey.Test3Anxiety, anxiety)
	if err != nil {
		return nil, err
	}
	depressionScore, err := scoreTest3Part(survey.Test3Depression, depression)
	if err != nil {
		return nil, err
	}

	return &models.Test3Result{
		Anxiety:     anxietyScore,
		Depression:  depressionScore,
		Description: test3Description(anxietyScore, depressionScore),
	}, nil
}

func scoreTest3Part(part survey.Test3PartDef, answers []int) (int, error) {
	if len(answers) < len(part.Questions) {
		return 0, models.ErrMissingAnswers
	}
	score := 0
	for i, q := range part.Questions {
		opt := answers[i]
		if opt < 0 || opt >= len(q.Options) {
			return 0, fmt.Errorf("question %d: option index %d out of range: %w", i, opt, models.ErrMissingAnswers)
		}
		score += q.Options[opt].Value
	}
	return score, nil
}

// HADSBand returns the interpretation band for a single HADS part score.
func HADSBand(score int) string {
	switch {
	case score <= survey.HADSNormalMax:
		return "«норма» (отсутствие достоверно выраженных симптомов тревоги и депрессии"
	case score <= survey.HADSSubclinicalMax:
		return "«субклинически выраженная тревога / депрессия»"
	default:
		return "«клинически выраженная тревога / депрессия»"
	}
}

func test3Description(anxietyScore, depressionScore int) string {
	var b strings.Builder
	b.WriteString("📊 Результаты оценки тревоги и депрессии\n\n")
	fmt.Fprintf(&b, "🔷 Уровень тревоги: %d баллов\n", anxietyScore)
	fmt.Fprintf(&b, "Интерпретация: %s тревога\n\n", HADSBand(anxietyScore))
	fmt.Fprintf(&b, "🔶 Уровень депрессии: %d баллов\n", depressionScore)
	fmt.Fprintf(&b, "Интерпретация: %s депрессия\n\n", HADSBand(depressionScore))
	return b.String()
}

// ScoreTest4 scores the SCL-90-R symptom inventory: per-category sums and
// averages plus the three summary indices. GSI is the mean over all answers,
// PST the count of positive answers, PSDI the mean over only the positive
// answers (zero when none are positive).
func ScoreTest4(answers []int) (*models.Test4Result, error) {
	if len(answers) < len(survey.Test4Def.Questions) || len(answers) == 0 {
		return nil, models.ErrMissingAnswers
	}

	scaleScores := make(map[string]models.ScaleScore, len(survey.SCL90Scales))
	for key, scale := range survey.SCL90Scales {
		sum := 0
		for _, q := range scale.Questions {
			if q < len(answers) {
				sum += answers[q]
			}
		}
		scaleScores[key] = models.ScaleScore{
			Raw:     sum,
			Average: round2(float64(sum) / float64(len(scale.Questions))),
		}
	}

	total := 0
	positive := 0
	for _, v := range answers {
		total += v
		if v > 0 {
			positive++
		}
	}

	gsi := round2(float64(total) / float64(len(answers)))
	psdi := 0.0
	if positive > 0 {
		psdi = round2(float64(total) / float64(positive))
	}

	indices := models.Test4Indices{GSI: gsi, PST: positive, PSDI: psdi}
	return &models.Test4Result{
		ScaleScores: scaleScores,
		Indices:     indices,
		Score:       gsi,
		Description: test4Description(scaleScores, indices),
	}, nil
}

// scl90Order fixes the rendering order of category lines.
var scl90Order = []string{"SOM", "OCD", "INT", "DEP", "ANX", "HOS", "PHOB", "PAR", "PSY", "ADD"}

func test4Description(scaleScores map[string]models.ScaleScore, indices models.Test4Indices) string {
	var b strings.Builder
	b.WriteString("📊 Результаты психологического анализа SCL-90-R\n\n")

	b.WriteString("🔍 Показатели по шкалам:\n")
	for _, key := range scl90Order {
		fmt.Fprintf(&b, "%s: %v\n", survey.SCL90Scales[key].Description, scaleScores[key].Average)
	}

	b.WriteString("\n📈 Обобщенные показатели:\n")
	fmt.Fprintf(&b, "• Общий индекс тяжести симптомов (GSI): %v\n", indices.GSI)
	fmt.Fprintf(&b, "• Общее число утвердительных ответов (PST): %d\n", indices.PST)
	fmt.Fprintf(&b, "• Индекс личного симптоматического дистресса (PSDI): %v\n", indices.PSDI)

	b.WriteString("\n💡 Интерпретация:\n")
	switch {
	case indices.GSI < 0.5:
		b.WriteString("• Ваше текущее состояние находится в пределах нормы\n")
	case indices.GSI < 1.0:
		b.WriteString("• Наблюдается умеренный уровень дистресса\n")
	default:
		b.WriteString("• Рекомендуется консультация специалиста\n")
	}
	return b.String()
}
