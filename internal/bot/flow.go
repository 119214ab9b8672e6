package bot

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/violetta-bot/violetta/internal/models"
	"github.com/violetta-bot/violetta/internal/scoring"
	"github.com/violetta-bot/violetta/internal/survey"
)

// User-facing texts of the guided flow.
const (
	welcomeText = `Приветствую вас! Я ваш персональный помощник в борьбе с тревогой, стрессом и напряжением.

С моей помощью вы сможете пройти профессиональные тесты, чтобы лучше понять свое эмоциональное состояние, а также получить индивидуально подобранные техники релаксации. Вот, что я могу сделать для вас:
• Справиться с тревогой, стрессом и напряжением.
• Облегчить симптомы синдрома раздраженного кишечника (СРК).
• Улучшить ваше общее самочувствие и вернуть чувство внутреннего спокойствия.

Что вы получите?
• Рекомендации, основанные на ваших результатах.
• Простые и проверенные способы расслабления, которые легко включить в свою жизнь.
• Возможность чувствовать себя лучше каждый день.
Готовы попробовать? Давайте начнем прямо сейчас!`

	returningText = "С возвращением! Вы уже проходили тестирование. Хотите пройти новое?"

	askNameText       = "👋 Давайте познакомимся! Напишите ваше ФИО (Фамилия Имя Отчество):"
	invalidNameText   = "Пожалуйста, укажите корректное ФИО (например, Иванов Иван Иванович)."
	askAgeText        = "Сколько вам лет?"
	invalidAgeText    = "Пожалуйста, укажите корректный возраст (1-120 лет)."
	askGenderText     = "Укажите ваш пол:"
	askMedsText       = "💊 Принимаете ли вы какие-либо препараты?"
	askMedsListText   = "💊 Пожалуйста, перечислите принимаемые препараты:"
	askPregnantText   = "🤰 Вы беременны?"
	errorRestartText  = "Произошла ошибка. Пожалуйста, начните сначала /start"
	callbackErrorText = "⚠️ Произошла ошибка. Пожалуйста, начните заново /start"

	generatingText   = "Формирую индивидуальные рекомендации..."
	regeneratingText = "🎛️ Подбираю персонализированную технику..."
	apologyText      = "Извините, произошла ошибка при генерации рекомендации. Пожалуйста, попробуйте позже."
	remindLaterText  = "⏱️ Хорошо, напомню через 2 дня!"
)

// fullNameRe requires three capitalized Cyrillic words.
var fullNameRe = regexp.MustCompile(`^[А-ЯЁ][а-яё]+\s[А-ЯЁ][а-яё]+\s[А-ЯЁ][а-яё]+$`)

// IsValidFullName reports whether name matches the surname/name/patronymic
// format.
func IsValidFullName(name string) bool {
	return fullNameRe.MatchString(name)
}

// IsValidAge reports whether age is within the accepted range.
func IsValidAge(age int) bool {
	return age >= 1 && age <= 120
}

// savePrompt records the freshly rendered prompt and persists the profile.
func (b *Bot) savePrompt(profile *models.UserProfile, messageID int) {
	if messageID != 0 {
		profile.MessageID = messageID
	}
	if err := b.store.SaveProfile(profile); err != nil {
		slog.Error("Failed to save profile", "error", err, "chatID", profile.ChatID)
	}
}

func (b *Bot) startIntake(ctx context.Context, profile *models.UserProfile) {
	messageID := b.sendText(ctx, profile.ChatID, askNameText)
	profile.Stage = models.StageFullName
	b.savePrompt(profile, messageID)
}

func (b *Bot) handleFullName(ctx context.Context, profile *models.UserProfile, text string) {
	if !IsValidFullName(text) {
		slog.Debug("Rejected full name", "chatID", profile.ChatID)
		messageID := b.sendText(ctx, profile.ChatID, invalidNameText)
		b.savePrompt(profile, messageID)
		return
	}
	messageID := b.sendText(ctx, profile.ChatID, askAgeText)
	profile.FullName = text
	profile.Stage = models.StageAge
	b.savePrompt(profile, messageID)
}

func (b *Bot) handleAge(ctx context.Context, profile *models.UserProfile, text string) {
	age, err := strconv.Atoi(text)
	if err != nil || !IsValidAge(age) {
		slog.Debug("Rejected age", "chatID", profile.ChatID, "input", text)
		messageID := b.sendText(ctx, profile.ChatID, invalidAgeText)
		b.savePrompt(profile, messageID)
		return
	}
	messageID, sendErr := b.transport.SendKeyboard(ctx, profile.ChatID, askGenderText, [][]models.Button{
		{{Text: "Мужской", Data: "male"}, {Text: "Женский", Data: "female"}},
	})
	if sendErr != nil {
		slog.Error("Failed to send gender prompt", "error", sendErr, "chatID", profile.ChatID)
	}
	profile.Age = age
	profile.Stage = models.StageGender
	b.savePrompt(profile, messageID)
}

func (b *Bot) handleGender(ctx context.Context, profile *models.UserProfile, gender string) {
	messageID, err := b.transport.SendKeyboard(ctx, profile.ChatID, askMedsText, [][]models.Button{
		{{Text: "Да", Data: "meds_yes"}},
		{{Text: "Нет", Data: "meds_no"}},
	})
	if err != nil {
		slog.Error("Failed to send meds prompt", "error", err, "chatID", profile.ChatID)
	}
	profile.Gender = gender
	profile.Stage = models.StageTakingMeds
	b.savePrompt(profile, messageID)
}

func (b *Bot) handleMeds(ctx context.Context, profile *models.UserProfile, answer string) {
	if answer == models.AnswerYes {
		messageID := b.sendText(ctx, profile.ChatID, askMedsListText)
		profile.TakingMeds = models.AnswerYes
		profile.Stage = models.StageMedsDetails
		b.savePrompt(profile, messageID)
		return
	}
	profile.TakingMeds = models.AnswerNo
	b.afterMedication(ctx, profile)
}

func (b *Bot) handleMedsDetails(ctx context.Context, profile *models.UserProfile, text string) {
	profile.MedsDetails = text
	b.afterMedication(ctx, profile)
}

// afterMedication branches on gender: females get the pregnancy question,
// everyone else goes straight to the first test.
func (b *Bot) afterMedication(ctx context.Context, profile *models.UserProfile) {
	if profile.Gender == "female" {
		messageID, err := b.transport.SendKeyboard(ctx, profile.ChatID, askPregnantText, [][]models.Button{
			{{Text: "Да", Data: "pregnant_yes"}},
			{{Text: "Нет", Data: "pregnant_no"}},
		})
		if err != nil {
			slog.Error("Failed to send pregnancy prompt", "error", err, "chatID", profile.ChatID)
		}
		profile.Stage = models.StagePregnant
		b.savePrompt(profile, messageID)
		return
	}
	b.startTest1(ctx, profile)
}

func (b *Bot) handlePregnant(ctx context.Context, profile *models.UserProfile, answer string) {
	profile.Pregnant = answer
	b.startTest1(ctx, profile)
}

// Test intros. Each renders the instrument title with a start button and
// resets the in-memory collection for the test.

func (b *Bot) startTest1(ctx context.Context, profile *models.UserProfile) {
	text := fmt.Sprintf("Начинаем тестирование.\n\n%s", survey.Test1Def.Title)
	messageID, err := b.transport.SendKeyboard(ctx, profile.ChatID, text, [][]models.Button{
		{{Text: "Начать тестирование", Data: "start_test_1"}},
	})
	if err != nil {
		slog.Error("Failed to send test 1 intro", "error", err, "chatID", profile.ChatID)
	}
	profile.Stage = models.StageTesting
	profile.CurrentTest = models.Test1
	b.answers.Init(profile.ChatID, models.Test1)
	b.savePrompt(profile, messageID)
}

func (b *Bot) startTest2(ctx context.Context, profile *models.UserProfile) {
	text := fmt.Sprintf("Давайте пройдем второй тест!\n\n%s\n\nЭтот тест поможет определить ваш ведущий канал восприятия информации.", survey.Test2Def.Title)
	messageID, err := b.transport.SendKeyboard(ctx, profile.ChatID, text, [][]models.Button{
		{{Text: "Начать тест №2", Data: "start_test_2"}},
	})
	if err != nil {
		slog.Error("Failed to send test 2 intro", "error", err, "chatID", profile.ChatID)
	}
	profile.CurrentTest = models.Test2
	b.answers.Init(profile.ChatID, models.Test2)
	b.savePrompt(profile, messageID)
}

func (b *Bot) startTest3(ctx context.Context, profile *models.UserProfile) {
	text := fmt.Sprintf("Давайте пройдем третий тест!\n\n%s\n\nЭтот тест поможет оценить ваше эмоциональное состояние.", survey.Test3Title)
	messageID, err := b.transport.SendKeyboard(ctx, profile.ChatID, text, [][]models.Button{
		{{Text: "Начать тест №3", Data: "start_test_3_anxiety"}},
	})
	if err != nil {
		slog.Error("Failed to send test 3 intro", "error", err, "chatID", profile.ChatID)
	}
	profile.CurrentTest = models.Test3
	b.answers.InitPart(profile.ChatID, models.PartAnxiety)
	b.answers.InitPart(profile.ChatID, models.PartDepression)
	b.savePrompt(profile, messageID)
}

func (b *Bot) startTest4(ctx context.Context, profile *models.UserProfile) {
	text := fmt.Sprintf("Давайте пройдем четвертый тест!\n\n%s\n\nЭтот тест поможет оценить выраженность симптомов.", survey.Test4Def.Title)
	messageID, err := b.transport.SendKeyboard(ctx, profile.ChatID, text, [][]models.Button{
		{{Text: "Начать тест №4", Data: "start_test_4"}},
	})
	if err != nil {
		slog.Error("Failed to send test 4 intro", "error", err, "chatID", profile.ChatID)
	}
	profile.CurrentTest = models.Test4
	b.answers.Init(profile.ChatID, models.Test4)
	b.savePrompt(profile, messageID)
}

// Question rendering.

func (b *Bot) askBinaryQuestion(ctx context.Context, profile *models.UserProfile, testID models.TestID, index int) {
	test := survey.TestFor(testID)
	if index >= len(test.Questions) {
		b.sendText(ctx, profile.ChatID, errorRestartText)
		return
	}
	text := fmt.Sprintf("Вопрос %d/%d:\n%s", index+1, len(test.Questions), test.Questions[index])
	rows := make([][]models.Button, 0, len(test.Options))
	for _, opt := range test.Options {
		rows = append(rows, []models.Button{{
			Text: opt.Text,
			Data: fmt.Sprintf("answer_%s_%d_%s", testID, index, opt.Value),
		}})
	}
	messageID, err := b.transport.SendKeyboard(ctx, profile.ChatID, text, rows)
	if err != nil {
		slog.Error("Failed to send question", "error", err, "chatID", profile.ChatID, "test", testID)
	}
	profile.CurrentTest = testID
	b.savePrompt(profile, messageID)
}

func (b *Bot) askTest3Question(ctx context.Context, profile *models.UserProfile, part models.Test3Part, index int) {
	def := survey.Test3PartFor(part)
	if index >= len(def.Questions) {
		b.sendText(ctx, profile.ChatID, errorRestartText)
		return
	}
	q := def.Questions[index]
	text := fmt.Sprintf("%s\n\nВопрос %d/%d:\n%s", def.Title, index+1, len(def.Questions), q.Text)
	rows := make([][]models.Button, 0, len(q.Options))
	for i, opt := range q.Options {
		rows = append(rows, []models.Button{{
			Text: opt.Text,
			Data: fmt.Sprintf("answer_test3_%s_%d_%d", part, index, i),
		}})
	}
	messageID, err := b.transport.SendKeyboard(ctx, profile.ChatID, text, rows)
	if err != nil {
		slog.Error("Failed to send question", "error", err, "chatID", profile.ChatID, "part", part)
	}
	profile.CurrentTest = models.Test3
	b.savePrompt(profile, messageID)
}

func (b *Bot) askTest4Question(ctx context.Context, profile *models.UserProfile, index int) {
	test := survey.Test4Def
	if index >= len(test.Questions) {
		b.sendText(ctx, profile.ChatID, errorRestartText)
		return
	}
	text := fmt.Sprintf("Вопрос %d/%d:\n%s", index+1, len(test.Questions), test.Questions[index])
	rows := make([][]models.Button, 0, len(test.Options))
	for i, opt := range test.Options {
		rows = append(rows, []models.Button{{
			Text: opt.Text,
			Data: fmt.Sprintf("answer_test4_%d_%d", index, i),
		}})
	}
	messageID, err := b.transport.SendKeyboard(ctx, profile.ChatID, text, rows)
	if err != nil {
		slog.Error("Failed to send question", "error", err, "chatID", profile.ChatID, "test", models.Test4)
	}
	profile.CurrentTest = models.Test4
	b.savePrompt(profile, messageID)
}

// Answer handlers.

func (b *Bot) handleBinaryAnswer(ctx context.Context, profile *models.UserProfile, action Action) {
	test := survey.TestFor(action.Test)
	if action.Question >= len(test.Questions) {
		b.sendText(ctx, profile.ChatID, errorRestartText)
		return
	}
	b.answers.Record(profile.ChatID, action.Test, action.Question, action.Value)

	if action.Question+1 < len(test.Questions) {
		b.askBinaryQuestion(ctx, profile, action.Test, action.Question+1)
		return
	}
	if action.Test == models.Test1 {
		b.finishTest1(ctx, profile)
		return
	}
	b.finishTest2(ctx, profile)
}

func (b *Bot) finishTest1(ctx context.Context, profile *models.UserProfile) {
	raw := b.answers.Get(profile.ChatID, models.Test1)
	result, err := scoring.ScoreTest1(raw)
	if err != nil {
		slog.Error("Failed to score test 1", "error", err, "chatID", profile.ChatID)
		b.sendText(ctx, profile.ChatID, errorRestartText)
		return
	}
	profile.Test1Score = result.MaxScore
	if !b.persistResult(profile, models.Test1, result, raw) {
		b.sendText(ctx, profile.ChatID, errorRestartText)
		return
	}
	b.sendText(ctx, profile.ChatID, result.Description)
	slog.Info("Test 1 completed", "chatID", profile.ChatID, "maxScore", result.MaxScore, "dominant", result.DominantScales)
	b.startTest2(ctx, profile)
}

func (b *Bot) finishTest2(ctx context.Context, profile *models.UserProfile) {
	raw := b.answers.Get(profile.ChatID, models.Test2)
	result, err := scoring.ScoreTest2(raw)
	if err != nil {
		slog.Error("Failed to score test 2", "error", err, "chatID", profile.ChatID)
		b.sendText(ctx, profile.ChatID, errorRestartText)
		return
	}
	maxScore := 0
	for _, s := range result.Scores {
		if s > maxScore {
			maxScore = s
		}
	}
	profile.Test2Score = maxScore
	if !b.persistResult(profile, models.Test2, result, raw) {
		b.sendText(ctx, profile.ChatID, errorRestartText)
		return
	}
	b.sendText(ctx, profile.ChatID, result.Description)
	slog.Info("Test 2 completed", "chatID", profile.ChatID, "dominant", result.DominantTypes)
	b.startTest3(ctx, profile)
}

func (b *Bot) handleTest3Answer(ctx context.Context, profile *models.UserProfile, action Action) {
	def := survey.Test3PartFor(action.Part)
	if action.Question >= len(def.Questions) || action.Option >= len(def.Questions[action.Question].Options) {
		b.sendText(ctx, profile.ChatID, errorRestartText)
		return
	}
	b.answers.RecordPart(profile.ChatID, action.Part, action.Question, strconv.Itoa(action.Option))

	if action.Question+1 < len(def.Questions) {
		b.askTest3Question(ctx, profile, action.Part, action.Question+1)
		return
	}
	if action.Part == models.PartAnxiety {
		messageID, err := b.transport.SendKeyboard(ctx, profile.ChatID, "Теперь перейдем к оценке депрессии", [][]models.Button{
			{{Text: "Продолжить", Data: "start_test_3_depression"}},
		})
		if err != nil {
			slog.Error("Failed to send part transition", "error", err, "chatID", profile.ChatID)
		}
		b.savePrompt(profile, messageID)
		return
	}
	b.finishTest3(ctx, profile)
}

func (b *Bot) finishTest3(ctx context.Context, profile *models.UserProfile) {
	anxietyRaw := b.answers.GetPart(profile.ChatID, models.PartAnxiety)
	depressionRaw := b.answers.GetPart(profile.ChatID, models.PartDepression)
	anxiety, okA := parseIntAnswers(anxietyRaw)
	depression, okD := parseIntAnswers(depressionRaw)
	if !okA || !okD {
		slog.Error("Corrupt HADS answer collection", "chatID", profile.ChatID)
		b.sendText(ctx, profile.ChatID, errorRestartText)
		return
	}

	result, err := scoring.ScoreTest3(anxiety, depression)
	if err != nil {
		slog.Error("Failed to score test 3", "error", err, "chatID", profile.ChatID)
		b.sendText(ctx, profile.ChatID, errorRestartText)
		return
	}

	resultJSON, err := models.ToJSON(result)
	if err != nil {
		slog.Error("Failed to serialize test 3 result", "error", err, "chatID", profile.ChatID)
		b.sendText(ctx, profile.ChatID, errorRestartText)
		return
	}
	anxietyJSON, _ := models.ToJSON(anxiety)
	depressionJSON, _ := models.ToJSON(depression)
	profile.Test3Answers = resultJSON
	profile.Test3AnxietyRaw = anxietyJSON
	profile.Test3DepressionRaw = depressionJSON
	profile.Test3AnxietyScore = result.Anxiety
	profile.Test3DepressionScore = result.Depression
	if err := b.store.SaveProfile(profile); err != nil {
		slog.Error("Failed to save test 3 result", "error", err, "chatID", profile.ChatID)
		b.sendText(ctx, profile.ChatID, errorRestartText)
		return
	}
	b.sendText(ctx, profile.ChatID, result.Description)
	slog.Info("Test 3 completed", "chatID", profile.ChatID, "anxiety", result.Anxiety, "depression", result.Depression)
	b.startTest4(ctx, profile)
}

func (b *Bot) handleTest4Answer(ctx context.Context, profile *models.UserProfile, action Action) {
	test := survey.Test4Def
	if action.Question >= len(test.Questions) || action.Option >= len(test.Options) {
		b.sendText(ctx, profile.ChatID, errorRestartText)
		return
	}
	b.answers.Record(profile.ChatID, models.Test4, action.Question, strconv.Itoa(action.Option))

	if action.Question+1 < len(test.Questions) {
		b.askTest4Question(ctx, profile, action.Question+1)
		return
	}
	b.finishTest4(ctx, profile)
}

func (b *Bot) finishTest4(ctx context.Context, profile *models.UserProfile) {
	raw := b.answers.Get(profile.ChatID, models.Test4)
	values, ok := parseIntAnswers(raw)
	if !ok {
		slog.Error("Corrupt test 4 answer collection", "chatID", profile.ChatID)
		b.sendText(ctx, profile.ChatID, errorRestartText)
		return
	}
	result, err := scoring.ScoreTest4(values)
	if err != nil {
		slog.Error("Failed to score test 4", "error", err, "chatID", profile.ChatID)
		b.sendText(ctx, profile.ChatID, errorRestartText)
		return
	}
	profile.Test4Score = result.Score
	profile.Stage = models.StageDone
	if !b.persistResult(profile, models.Test4, result, raw) {
		b.sendText(ctx, profile.ChatID, errorRestartText)
		return
	}
	b.sendText(ctx, profile.ChatID, result.Description)
	slog.Info("Test 4 completed", "chatID", profile.ChatID, "gsi", result.Indices.GSI)

	b.deliverRecommendation(ctx, profile, result)
}

// deliverRecommendation assembles all four results and renders the generated
// technique. The freshly computed test 4 result is used directly; the rest
// come from the durable record.
func (b *Bot) deliverRecommendation(ctx context.Context, profile *models.UserProfile, test4 *models.Test4Result) {
	b.sendText(ctx, profile.ChatID, generatingText)

	results := resultsFromProfile(profile)
	results.Test4 = test4

	recommendation, err := b.recommender.Recommendation(ctx, results)
	if err != nil {
		slog.Error("Failed to generate recommendation", "error", err, "chatID", profile.ChatID)
		b.sendText(ctx, profile.ChatID, apologyText)
	} else {
		if err := b.store.SaveRecommendation(profile.ChatID, recommendation); err != nil {
			slog.Error("Failed to persist recommendation", "error", err, "chatID", profile.ChatID)
		}
		profile.Recommendation = recommendation
		b.sendText(ctx, profile.ChatID, recommendation)
	}

	if err := b.reminders.Arm(profile.ChatID); err != nil {
		slog.Error("Failed to arm reminder", "error", err, "chatID", profile.ChatID)
	}
	b.answers.Clear(profile.ChatID)
}

// Reminder-driven paths.

func (b *Bot) handleRemindLater(ctx context.Context, profile *models.UserProfile) {
	b.sendText(ctx, profile.ChatID, remindLaterText)
	if err := b.reminders.Arm(profile.ChatID); err != nil {
		slog.Error("Failed to arm reminder", "error", err, "chatID", profile.ChatID)
	}
}

// regenerateRecommendation bypasses the test flow entirely and regenerates
// from the persisted results.
func (b *Bot) regenerateRecommendation(ctx context.Context, profile *models.UserProfile) {
	b.reminders.Cancel(profile.ChatID)
	b.sendText(ctx, profile.ChatID, regeneratingText)

	results := resultsFromProfile(profile)
	recommendation, err := b.recommender.Recommendation(ctx, results)
	if err != nil {
		slog.Error("Failed to regenerate recommendation", "error", err, "chatID", profile.ChatID)
		b.sendText(ctx, profile.ChatID, apologyText)
	} else {
		if err := b.store.SaveRecommendation(profile.ChatID, recommendation); err != nil {
			slog.Error("Failed to persist recommendation", "error", err, "chatID", profile.ChatID)
		}
		b.sendText(ctx, profile.ChatID, "🧘‍♀️ Рекомендация:\n\n"+recommendation)
	}

	if err := b.reminders.Arm(profile.ChatID); err != nil {
		slog.Error("Failed to arm reminder", "error", err, "chatID", profile.ChatID)
	}
}

// resendRecommendation replays the stored recommendation without a new LLM
// call.
func (b *Bot) resendRecommendation(ctx context.Context, profile *models.UserProfile) {
	if profile.Recommendation == "" {
		b.sendText(ctx, profile.ChatID, "❌ Не удалось загрузить рекомендацию")
		return
	}
	b.sendText(ctx, profile.ChatID, "🧘 Повторите технику:\n\n"+profile.Recommendation)
}

// persistResult serializes a scored result plus its raw answers into the
// profile's blob columns and saves. Returns false on failure.
func (b *Bot) persistResult(profile *models.UserProfile, testID models.TestID, result interface{}, raw []string) bool {
	resultJSON, err := models.ToJSON(result)
	if err != nil {
		slog.Error("Failed to serialize result", "error", err, "chatID", profile.ChatID, "test", testID)
		return false
	}
	rawJSON, err := models.ToJSON(raw)
	if err != nil {
		slog.Error("Failed to serialize raw answers", "error", err, "chatID", profile.ChatID, "test", testID)
		return false
	}
	switch testID {
	case models.Test1:
		profile.Test1Answers = resultJSON
		profile.Test1Raw = rawJSON
	case models.Test2:
		profile.Test2Answers = resultJSON
		profile.Test2Raw = rawJSON
	case models.Test4:
		profile.Test4Answers = resultJSON
		profile.Test4Raw = rawJSON
	}
	if err := b.store.SaveProfile(profile); err != nil {
		slog.Error("Failed to save result", "error", err, "chatID", profile.ChatID, "test", testID)
		return false
	}
	return true
}

// resultsFromProfile deserializes the persisted result blobs. Tests with no
// data stay nil and render as placeholders in the prompt.
func resultsFromProfile(profile *models.UserProfile) *models.AllResults {
	results := &models.AllResults{}

	var t1 models.Test1Result
	if ok, err := models.FromJSON(profile.Test1Answers, &t1); err == nil && ok {
		results.Test1 = &t1
	}
	var t2 models.Test2Result
	if ok, err := models.FromJSON(profile.Test2Answers, &t2); err == nil && ok {
		results.Test2 = &t2
	}
	var t3 models.Test3Result
	if ok, err := models.FromJSON(profile.Test3Answers, &t3); err == nil && ok {
		results.Test3 = &t3
	}
	var t4 models.Test4Result
	if ok, err := models.FromJSON(profile.Test4Answers, &t4); err == nil && ok {
		results.Test4 = &t4
	}
	return results
}

// parseIntAnswers converts an accumulated collection to integers. An empty or
// non-numeric entry fails the whole collection.
func parseIntAnswers(raw []string) ([]int, bool) {
	out := make([]int, len(raw))
	for i, s := range raw {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
