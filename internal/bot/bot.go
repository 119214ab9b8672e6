// Package bot implements the conversational state machine: intake, the four
// test question loops, recommendation delivery, and the reminder callbacks.
// It is transport-agnostic; the telegram package feeds it inbound events.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/violetta-bot/violetta/internal/answers"
	"github.com/violetta-bot/violetta/internal/models"
	"github.com/violetta-bot/violetta/internal/store"
	"github.com/violetta-bot/violetta/internal/survey"
)

// Message is an inbound free-text message.
type Message struct {
	ChatID   int64
	Username string
	Text     string
}

// Callback is an inbound button press.
type Callback struct {
	ChatID   int64
	Username string
	Data     string
}

// Transport abstracts the messaging service the bot talks through.
type Transport interface {
	SendText(ctx context.Context, chatID int64, text string) (int, error)
	SendKeyboard(ctx context.Context, chatID int64, text string, rows [][]models.Button) (int, error)
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
	SendDocument(ctx context.Context, chatID int64, filename string, data []byte) error
}

// Recommender produces the relaxation technique recommendation text.
type Recommender interface {
	Recommendation(ctx context.Context, results *models.AllResults) (string, error)
}

// Reminders is the scheduler surface the bot drives.
type Reminders interface {
	Arm(chatID int64) error
	Cancel(chatID int64)
}

// Exporter renders all profiles into a spreadsheet.
type Exporter interface {
	Export(profiles []*models.UserProfile) ([]byte, error)
}

// Config carries the bot's dependencies.
type Config struct {
	Store       store.Store
	Transport   Transport
	Recommender Recommender
	Reminders   Reminders
	Exporter    Exporter
	Admins      []int64
}

// Bot dispatches inbound events against the per-user stage.
type Bot struct {
	store       store.Store
	transport   Transport
	answers     *answers.Accumulator
	recommender Recommender
	reminders   Reminders
	exporter    Exporter
	admins      map[int64]bool
}

// New creates a bot from its dependencies.
func New(cfg Config) *Bot {
	admins := make(map[int64]bool, len(cfg.Admins))
	for _, id := range cfg.Admins {
		admins[id] = true
	}
	return &Bot{
		store:       cfg.Store,
		transport:   cfg.Transport,
		answers:     answers.NewAccumulator(),
		recommender: cfg.Recommender,
		reminders:   cfg.Reminders,
		exporter:    cfg.Exporter,
		admins:      admins,
	}
}

func (b *Bot) isAdmin(chatID int64) bool {
	return b.admins[chatID]
}

// recoverBoundary keeps one misbehaving update from crashing the dispatch
// loop. The user gets a generic restart hint.
func (b *Bot) recoverBoundary(ctx context.Context, chatID int64) {
	if r := recover(); r != nil {
		slog.Error("Handler panicked", "chatID", chatID, "panic", r)
		b.answers.Clear(chatID)
		b.reminders.Cancel(chatID)
		if _, err := b.transport.SendText(ctx, chatID, callbackErrorText); err != nil {
			slog.Error("Failed to send panic notice", "error", err, "chatID", chatID)
		}
	}
}

// HandleMessage processes an inbound free-text message against the user's
// current stage.
func (b *Bot) HandleMessage(ctx context.Context, msg Message) {
	defer b.recoverBoundary(ctx, msg.ChatID)

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}
	if strings.HasPrefix(text, "/") {
		b.handleCommand(ctx, msg, text)
		return
	}

	profile, err := b.store.GetProfile(msg.ChatID)
	if err != nil {
		slog.Error("Failed to load profile", "error", err, "chatID", msg.ChatID)
		b.sendText(ctx, msg.ChatID, errorRestartText)
		return
	}
	if profile == nil {
		b.sendText(ctx, msg.ChatID, errorRestartText)
		return
	}
	b.deletePrompt(ctx, profile)

	slog.Debug("Handling message", "chatID", msg.ChatID, "stage", profile.Stage)
	switch profile.Stage {
	case models.StageFullName:
		b.handleFullName(ctx, profile, text)
	case models.StageAge:
		b.handleAge(ctx, profile, text)
	case models.StageMedsDetails:
		b.handleMedsDetails(ctx, profile, text)
	default:
		b.sendText(ctx, msg.ChatID, errorRestartText)
	}
}

// HandleCallback processes an inbound button press.
func (b *Bot) HandleCallback(ctx context.Context, cb Callback) {
	defer b.recoverBoundary(ctx, cb.ChatID)

	action, err := DecodeAction(cb.Data)
	if err != nil {
		slog.Warn("Undecodable callback", "error", err, "chatID", cb.ChatID, "data", cb.Data)
		return
	}

	profile, err := b.store.GetProfile(cb.ChatID)
	if err != nil {
		slog.Error("Failed to load profile", "error", err, "chatID", cb.ChatID)
		b.sendText(ctx, cb.ChatID, errorRestartText)
		return
	}
	if profile == nil {
		profile = &models.UserProfile{ChatID: cb.ChatID, Username: cb.Username, Stage: models.StageStart}
	}
	if profile.Username == "" {
		profile.Username = cb.Username
	}
	b.deletePrompt(ctx, profile)

	slog.Debug("Handling callback", "chatID", cb.ChatID, "kind", action.Kind, "data", cb.Data)
	switch action.Kind {
	case ActionStartIntake:
		b.startIntake(ctx, profile)
	case ActionGender:
		b.handleGender(ctx, profile, action.Value)
	case ActionMeds:
		b.handleMeds(ctx, profile, action.Value)
	case ActionPregnant:
		b.handlePregnant(ctx, profile, action.Value)
	case ActionStartTest:
		switch action.Test {
		case models.Test4:
			b.askTest4Question(ctx, profile, 0)
		default:
			b.askBinaryQuestion(ctx, profile, action.Test, 0)
		}
	case ActionStartTest3Part:
		b.askTest3Question(ctx, profile, action.Part, 0)
	case ActionAnswerBinary:
		b.handleBinaryAnswer(ctx, profile, action)
	case ActionAnswerTest3:
		b.handleTest3Answer(ctx, profile, action)
	case ActionAnswerTest4:
		b.handleTest4Answer(ctx, profile, action)
	case ActionRemindLater:
		b.handleRemindLater(ctx, profile)
	case ActionNewTechnique:
		b.regenerateRecommendation(ctx, profile)
	case ActionNewSession:
		b.resendRecommendation(ctx, profile)
	case ActionExport:
		b.handleExport(ctx, cb.ChatID)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg Message, text string) {
	cmd := strings.Fields(text)[0]
	switch cmd {
	case "/start":
		b.handleStart(ctx, msg)
	case "/export":
		if !b.isAdmin(msg.ChatID) {
			b.sendText(ctx, msg.ChatID, "У вас нет прав для выполнения этой команды")
			return
		}
		b.sendText(ctx, msg.ChatID, "Начинаю экспорт базы данных...")
		b.handleExport(ctx, msg.ChatID)
	case "/test4":
		if !b.isAdmin(msg.ChatID) {
			b.sendText(ctx, msg.ChatID, "У вас нет прав для выполнения этой команды")
			return
		}
		b.handleTest4Harness(ctx, msg)
	default:
		slog.Debug("Ignoring unknown command", "chatID", msg.ChatID, "command", cmd)
	}
}

func (b *Bot) handleStart(ctx context.Context, msg Message) {
	profile, err := b.store.GetProfile(msg.ChatID)
	if err != nil {
		slog.Error("Failed to load profile", "error", err, "chatID", msg.ChatID)
		b.sendText(ctx, msg.ChatID, "Произошла ошибка. Пожалуйста, попробуйте еще раз позже.")
		return
	}

	keyboard := [][]models.Button{
		{{Text: "Начать новое тестирование", Data: "start_test"}},
	}
	if b.isAdmin(msg.ChatID) {
		keyboard = append(keyboard, []models.Button{{Text: "База", Data: "export_database"}})
	}

	text := welcomeText
	if profile != nil {
		text = returningText
	}

	messageID, err := b.transport.SendKeyboard(ctx, msg.ChatID, text, keyboard)
	if err != nil {
		slog.Error("Failed to send welcome", "error", err, "chatID", msg.ChatID)
		return
	}

	if profile == nil {
		profile = &models.UserProfile{
			ChatID:   msg.ChatID,
			Username: msg.Username,
			Stage:    models.StageStart,
		}
		profile.MessageID = messageID
		if err := b.store.SaveProfile(profile); err != nil {
			slog.Error("Failed to create profile", "error", err, "chatID", msg.ChatID)
		}
		return
	}
	if err := b.store.UpdateMessageID(msg.ChatID, messageID); err != nil {
		slog.Error("Failed to update message id", "error", err, "chatID", msg.ChatID)
	}
}

func (b *Bot) handleExport(ctx context.Context, chatID int64) {
	profiles, err := b.store.ListProfiles()
	if err != nil {
		slog.Error("Failed to list profiles for export", "error", err)
		b.sendText(ctx, chatID, "Ошибка при выгрузке данных")
		return
	}
	if len(profiles) == 0 {
		b.sendText(ctx, chatID, "База данных пуста")
		return
	}

	data, err := b.exporter.Export(profiles)
	if err != nil {
		slog.Error("Failed to build export workbook", "error", err)
		b.sendText(ctx, chatID, "Произошла ошибка при экспорте базы данных")
		return
	}

	filename := fmt.Sprintf("responses_%s.xlsx", time.Now().UTC().Format("2006-01-02T15-04-05"))
	if err := b.transport.SendDocument(ctx, chatID, filename, data); err != nil {
		slog.Error("Failed to send export document", "error", err, "chatID", chatID)
		b.sendText(ctx, chatID, "Произошла ошибка при экспорте базы данных")
		return
	}
	slog.Info("Export delivered", "chatID", chatID, "profiles", len(profiles))
}

// handleTest4Harness fills the symptom inventory with random answers and
// runs the full scoring and recommendation path. Admin shortcut for checking
// the pipeline end to end without answering every question.
func (b *Bot) handleTest4Harness(ctx context.Context, msg Message) {
	profile, err := b.store.GetProfile(msg.ChatID)
	if err != nil {
		slog.Error("Failed to load profile", "error", err, "chatID", msg.ChatID)
		b.sendText(ctx, msg.ChatID, errorRestartText)
		return
	}
	if profile == nil {
		profile = &models.UserProfile{ChatID: msg.ChatID, Username: msg.Username, Stage: models.StageStart}
	}

	b.sendText(ctx, msg.ChatID, "🧪 Запускаю тест 4 со случайными ответами...")
	b.answers.Init(msg.ChatID, models.Test4)
	optionCount := len(survey.Test4Def.Options)
	for i := range survey.Test4Def.Questions {
		b.answers.Record(msg.ChatID, models.Test4, i, strconv.Itoa(rand.IntN(optionCount)))
	}
	b.finishTest4(ctx, profile)
}

// sendText sends plain text and logs delivery failures.
func (b *Bot) sendText(ctx context.Context, chatID int64, text string) int {
	messageID, err := b.transport.SendText(ctx, chatID, text)
	if err != nil {
		slog.Error("Failed to send message", "error", err, "chatID", chatID)
		return 0
	}
	return messageID
}

// deletePrompt removes the previous inline prompt so stale buttons cannot be
// pressed twice. Deletion failures are expected (old messages) and ignored.
func (b *Bot) deletePrompt(ctx context.Context, profile *models.UserProfile) {
	if profile.MessageID == 0 {
		return
	}
	if err := b.transport.DeleteMessage(ctx, profile.ChatID, profile.MessageID); err != nil {
		slog.Debug("Failed to delete previous prompt", "error", err, "chatID", profile.ChatID)
	}
}
