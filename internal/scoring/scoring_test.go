package scoring

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/violetta-bot/violetta/internal/models"
	"github.com/violetta-bot/violetta/internal/survey"
)

func repeatAnswers(value string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = value
	}
	return out
}

func TestScoreTest1MissingAnswers(t *testing.T) {
	for _, answers := range [][]string{nil, {}, {models.AnswerYes}} {
		if _, err := ScoreTest1(answers); !errors.Is(err, models.ErrMissingAnswers) {
			t.Errorf("ScoreTest1(%v) error = %v, want ErrMissingAnswers", answers, err)
		}
	}
}

func TestScoreTest1AllNo(t *testing.T) {
	res, err := ScoreTest1(repeatAnswers(models.AnswerNo, len(survey.Test1Def.Questions)))
	if err != nil {
		t.Fatalf("ScoreTest1 failed: %v", err)
	}
	if res.MaxScore != 0 {
		t.Errorf("MaxScore = %d, want 0", res.MaxScore)
	}
	if len(res.DominantScales) != 0 {
		t.Errorf("DominantScales = %v, want empty", res.DominantScales)
	}
	if !strings.Contains(res.Description, "не выявлено ярко выраженных акцентуаций") {
		t.Errorf("description missing the no-pronounced-trait message: %q", res.Description)
	}
}

func TestScoreTest1SingleDominant(t *testing.T) {
	answers := repeatAnswers(models.AnswerNo, len(survey.Test1Def.Questions))
	answers[0] = models.AnswerYes // question 1 belongs to scale 1 only

	res, err := ScoreTest1(answers)
	if err != nil {
		t.Fatalf("ScoreTest1 failed: %v", err)
	}
	wantScore := survey.AccentuationScales[1].Multiplier
	if res.Scores[1] != wantScore {
		t.Errorf("scale 1 score = %d, want %d", res.Scores[1], wantScore)
	}
	if !reflect.DeepEqual(res.DominantScales, []int{1}) {
		t.Errorf("DominantScales = %v, want [1]", res.DominantScales)
	}
	if !strings.Contains(res.Description, survey.AccentuationDescriptions[1]) {
		t.Errorf("description missing the scale 1 paragraph")
	}
	if strings.Contains(res.Description, "несколько типов") {
		t.Errorf("single dominant must not use the multiple-types lead-in")
	}
}

func TestScoreTest1MultipleDominant(t *testing.T) {
	// All yes: questions 1 and 3 score scales 1 and 3 to the same maximum.
	res, err := ScoreTest1(repeatAnswers(models.AnswerYes, len(survey.Test1Def.Questions)))
	if err != nil {
		t.Fatalf("ScoreTest1 failed: %v", err)
	}
	if !reflect.DeepEqual(res.DominantScales, []int{1, 3}) {
		t.Errorf("DominantScales = %v, want [1 3]", res.DominantScales)
	}
	if !strings.Contains(res.Description, "несколько типов акцентуаций") {
		t.Errorf("description missing the multiple-types lead-in: %q", res.Description)
	}
	for _, scale := range res.DominantScales {
		if !strings.Contains(res.Description, survey.AccentuationDescriptions[scale]) {
			t.Errorf("description missing paragraph for scale %d", scale)
		}
	}
}

func TestScoreTest1NoZeroDominant(t *testing.T) {
	// Every dominant scale must carry the positive maximum score.
	combos := [][]string{
		{models.AnswerNo, models.AnswerNo, models.AnswerNo},
		{models.AnswerYes, models.AnswerNo, models.AnswerNo},
		{models.AnswerNo, models.AnswerYes, models.AnswerNo},
		{models.AnswerYes, models.AnswerYes, models.AnswerYes},
	}
	for _, answers := range combos {
		res, err := ScoreTest1(answers)
		if err != nil {
			t.Fatalf("ScoreTest1(%v) failed: %v", answers, err)
		}
		for _, scale := range res.DominantScales {
			if res.Scores[scale] <= 0 {
				t.Errorf("answers %v: dominant scale %d has score %d", answers, scale, res.Scores[scale])
			}
			if res.Scores[scale] != res.MaxScore {
				t.Errorf("answers %v: dominant scale %d score %d != max %d", answers, scale, res.Scores[scale], res.MaxScore)
			}
		}
	}
}

func TestScoreTest2MissingAnswers(t *testing.T) {
	if _, err := ScoreTest2(nil); !errors.Is(err, models.ErrMissingAnswers) {
		t.Errorf("ScoreTest2(nil) error = %v, want ErrMissingAnswers", err)
	}
}

func TestScoreTest2TiesAtZero(t *testing.T) {
	res, err := ScoreTest2(repeatAnswers(models.AnswerNo, len(survey.Test2Def.Questions)))
	if err != nil {
		t.Fatalf("ScoreTest2 failed: %v", err)
	}
	want := []models.Modality{models.ModalityVisual, models.ModalityAudial, models.ModalityKinesthetic}
	if !reflect.DeepEqual(res.DominantTypes, want) {
		t.Errorf("DominantTypes = %v, want all three tied at zero", res.DominantTypes)
	}
	for _, m := range want {
		if !strings.Contains(res.Description, survey.ModalityDescriptions[m].Title) {
			t.Errorf("description missing block for %s", m)
		}
	}
}

func TestScoreTest2SingleDominant(t *testing.T) {
	answers := repeatAnswers(models.AnswerNo, len(survey.Test2Def.Questions))
	answers[0] = models.AnswerYes // question 1 is visual

	res, err := ScoreTest2(answers)
	if err != nil {
		t.Fatalf("ScoreTest2 failed: %v", err)
	}
	if !reflect.DeepEqual(res.DominantTypes, []models.Modality{models.ModalityVisual}) {
		t.Errorf("DominantTypes = %v, want [visual]", res.DominantTypes)
	}
	if res.Scores[models.ModalityVisual] != 1 {
		t.Errorf("visual score = %d, want 1", res.Scores[models.ModalityVisual])
	}
}

func TestScoreTest2YesConservation(t *testing.T) {
	// Disjoint index lists: a yes counts toward at most one category.
	combos := [][]string{
		{models.AnswerYes, models.AnswerNo, models.AnswerNo},
		{models.AnswerYes, models.AnswerYes, models.AnswerNo},
		{models.AnswerYes, models.AnswerYes, models.AnswerYes},
	}
	for _, answers := range combos {
		res, err := ScoreTest2(answers)
		if err != nil {
			t.Fatalf("ScoreTest2(%v) failed: %v", answers, err)
		}
		yesCount := 0
		for _, a := range answers {
			if a == models.AnswerYes {
				yesCount++
			}
		}
		total := 0
		for _, s := range res.Scores {
			total += s
		}
		if total > yesCount {
			t.Errorf("answers %v: category sum %d exceeds yes count %d", answers, total, yesCount)
		}
	}
}

// test3Indices maps each question of a part to the option index carrying the
// wanted value, so tests can target an exact part score.
func test3Indices(t *testing.T, part survey.Test3PartDef, values []int) []int {
	t.Helper()
	if len(values) != len(part.Questions) {
		t.Fatalf("need %d values, got %d", len(part.Questions), len(values))
	}
	out := make([]int, len(values))
	for i, want := range values {
		found := -1
		for idx, opt := range part.Questions[i].Options {
			if opt.Value == want {
				found = idx
				break
			}
		}
		if found < 0 {
			t.Fatalf("question %d has no option with value %d", i, want)
		}
		out[i] = found
	}
	return out
}

func TestScoreTest3MissingAnswers(t *testing.T) {
	full := test3Indices(t, survey.Test3Depression, []int{0, 0, 0, 0, 0, 0, 0})
	if _, err := ScoreTest3(nil, full); !errors.Is(err, models.ErrMissingAnswers) {
		t.Errorf("missing anxiety part: error = %v, want ErrMissingAnswers", err)
	}
	fullAnx := test3Indices(t, survey.Test3Anxiety, []int{0, 0, 0, 0, 0, 0})
	if _, err := ScoreTest3(fullAnx, nil); !errors.Is(err, models.ErrMissingAnswers) {
		t.Errorf("missing depression part: error = %v, want ErrMissingAnswers", err)
	}
}

func TestScoreTest3OptionOutOfRange(t *testing.T) {
	anx := test3Indices(t, survey.Test3Anxiety, []int{0, 0, 0, 0, 0, 0})
	anx[2] = 9
	dep := test3Indices(t, survey.Test3Depression, []int{0, 0, 0, 0, 0, 0, 0})
	if _, err := ScoreTest3(anx, dep); !errors.Is(err, models.ErrMissingAnswers) {
		t.Errorf("out-of-range option: error = %v, want wrapped ErrMissingAnswers", err)
	}
}

func TestScoreTest3Sums(t *testing.T) {
	tests := []struct {
		name           string
		anxiety        []int
		depression     []int
		wantAnxiety    int
		wantDepression int
	}{
		{
			name:       "all zero values",
			anxiety:    []int{0, 0, 0, 0, 0, 0},
			depression: []int{0, 0, 0, 0, 0, 0, 0},
		},
		{
			name:           "mixed values",
			anxiety:        []int{3, 2, 1, 0, 3, 3},
			depression:     []int{1, 1, 2, 0, 3, 1, 0},
			wantAnxiety:    12,
			wantDepression: 8,
		},
		{
			name:           "maximal values",
			anxiety:        []int{3, 3, 3, 3, 3, 3},
			depression:     []int{3, 3, 3, 3, 3, 3, 3},
			wantAnxiety:    18,
			wantDepression: 21,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anx := test3Indices(t, survey.Test3Anxiety, tt.anxiety)
			dep := test3Indices(t, survey.Test3Depression, tt.depression)
			res, err := ScoreTest3(anx, dep)
			if err != nil {
				t.Fatalf("ScoreTest3 failed: %v", err)
			}
			if res.Anxiety != tt.wantAnxiety {
				t.Errorf("Anxiety = %d, want %d", res.Anxiety, tt.wantAnxiety)
			}
			if res.Depression != tt.wantDepression {
				t.Errorf("Depression = %d, want %d", res.Depression, tt.wantDepression)
			}
		})
	}
}

func TestHADSBandBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "норма"},
		{7, "норма"},
		{8, "субклинически"},
		{10, "субклинически"},
		{11, "клинически"},
		{21, "клинически"},
	}
	for _, tt := range tests {
		if got := HADSBand(tt.score); !strings.Contains(got, tt.want) {
			t.Errorf("HADSBand(%d) = %q, want band containing %q", tt.score, got, tt.want)
		}
	}
}

func TestScoreTest3PartIndependence(t *testing.T) {
	anx := test3Indices(t, survey.Test3Anxiety, []int{3, 2, 1, 0, 3, 3})
	depLow := test3Indices(t, survey.Test3Depression, []int{0, 0, 0, 0, 0, 0, 0})
	depHigh := test3Indices(t, survey.Test3Depression, []int{3, 3, 3, 3, 3, 3, 3})

	low, err := ScoreTest3(anx, depLow)
	if err != nil {
		t.Fatalf("ScoreTest3 failed: %v", err)
	}
	high, err := ScoreTest3(anx, depHigh)
	if err != nil {
		t.Fatalf("ScoreTest3 failed: %v", err)
	}
	if low.Anxiety != high.Anxiety {
		t.Errorf("anxiety score changed with depression answers: %d vs %d", low.Anxiety, high.Anxiety)
	}
}

func TestScoreTest4MissingAnswers(t *testing.T) {
	for _, answers := range [][]int{nil, {}, {1, 2}} {
		if _, err := ScoreTest4(answers); !errors.Is(err, models.ErrMissingAnswers) {
			t.Errorf("ScoreTest4(%v) error = %v, want ErrMissingAnswers", answers, err)
		}
	}
}

func TestScoreTest4AllZero(t *testing.T) {
	res, err := ScoreTest4(make([]int, len(survey.Test4Def.Questions)))
	if err != nil {
		t.Fatalf("ScoreTest4 failed: %v", err)
	}
	if res.Indices.GSI != 0 || res.Indices.PST != 0 {
		t.Errorf("indices = %+v, want all zero", res.Indices)
	}
	if res.Indices.PSDI != 0 {
		t.Errorf("PSDI = %v, want 0 when no answer is positive", res.Indices.PSDI)
	}
	if !strings.Contains(res.Description, "в пределах нормы") {
		t.Errorf("description missing the normal-range band: %q", res.Description)
	}
}

func TestScoreTest4Indices(t *testing.T) {
	n := len(survey.Test4Def.Questions)

	tests := []struct {
		name     string
		answers  []int
		wantGSI  float64
		wantPST  int
		wantPSDI float64
		wantBand string
	}{
		{
			name:     "single strong symptom",
			answers:  []int{4, 0, 0, 0, 0, 0, 0, 0},
			wantGSI:  0.5,
			wantPST:  1,
			wantPSDI: 4,
			wantBand: "умеренный уровень дистресса",
		},
		{
			name:     "uniform ones",
			answers:  []int{1, 1, 1, 1, 1, 1, 1, 1},
			wantGSI:  1,
			wantPST:  8,
			wantPSDI: 1,
			wantBand: "консультация специалиста",
		},
		{
			name:     "sparse",
			answers:  []int{0, 2, 0, 0, 1, 0, 0, 0},
			wantGSI:  0.38,
			wantPST:  2,
			wantPSDI: 1.5,
			wantBand: "в пределах нормы",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.answers) != n {
				t.Fatalf("answer set length %d does not match question count %d", len(tt.answers), n)
			}
			res, err := ScoreTest4(tt.answers)
			if err != nil {
				t.Fatalf("ScoreTest4 failed: %v", err)
			}
			if res.Indices.GSI != tt.wantGSI {
				t.Errorf("GSI = %v, want %v", res.Indices.GSI, tt.wantGSI)
			}
			if res.Indices.PST != tt.wantPST {
				t.Errorf("PST = %d, want %d", res.Indices.PST, tt.wantPST)
			}
			if res.Indices.PSDI != tt.wantPSDI {
				t.Errorf("PSDI = %v, want %v", res.Indices.PSDI, tt.wantPSDI)
			}
			if res.Score != res.Indices.GSI {
				t.Errorf("Score = %v, want GSI %v", res.Score, res.Indices.GSI)
			}
			if !strings.Contains(res.Description, tt.wantBand) {
				t.Errorf("description missing band %q: %q", tt.wantBand, res.Description)
			}
		})
	}
}

func TestScoreTest4CategoryAverages(t *testing.T) {
	answers := []int{4, 0, 0, 2, 0, 0, 0, 0} // questions 1 and 4 are somatization
	res, err := ScoreTest4(answers)
	if err != nil {
		t.Fatalf("ScoreTest4 failed: %v", err)
	}
	som := res.ScaleScores["SOM"]
	if som.Raw != 6 {
		t.Errorf("SOM raw = %d, want 6", som.Raw)
	}
	if som.Average != 0.5 {
		t.Errorf("SOM average = %v, want 0.5", som.Average)
	}
}

func TestScoringIdempotent(t *testing.T) {
	binary := []string{models.AnswerYes, models.AnswerNo, models.AnswerYes}
	anx := test3Indices(t, survey.Test3Anxiety, []int{3, 2, 1, 0, 3, 3})
	dep := test3Indices(t, survey.Test3Depression, []int{1, 1, 2, 0, 3, 1, 0})
	likert := []int{0, 2, 0, 0, 1, 0, 3, 0}

	r1a, err := ScoreTest1(binary)
	if err != nil {
		t.Fatalf("ScoreTest1 failed: %v", err)
	}
	r1b, _ := ScoreTest1(binary)
	if !reflect.DeepEqual(r1a, r1b) {
		t.Errorf("ScoreTest1 not deterministic")
	}

	r2a, err := ScoreTest2(binary)
	if err != nil {
		t.Fatalf("ScoreTest2 failed: %v", err)
	}
	r2b, _ := ScoreTest2(binary)
	if !reflect.DeepEqual(r2a, r2b) {
		t.Errorf("ScoreTest2 not deterministic")
	}

	r3a, err := ScoreTest3(anx, dep)
	if err != nil {
		t.Fatalf("ScoreTest3 failed: %v", err)
	}
	r3b, _ := ScoreTest3(anx, dep)
	if !reflect.DeepEqual(r3a, r3b) {
		t.Errorf("ScoreTest3 not deterministic")
	}

	r4a, err := ScoreTest4(likert)
	if err != nil {
		t.Fatalf("ScoreTest4 failed: %v", err)
	}
	r4b, _ := ScoreTest4(likert)
	if !reflect.DeepEqual(r4a, r4b) {
		t.Errorf("ScoreTest4 not deterministic")
	}
}
