package telegram

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/violetta-bot/violetta/internal/bot"
	"github.com/violetta-bot/violetta/internal/models"
)

type fakeAPI struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	sendErr  error
	nextID   int
	updates  chan tgbotapi.Update
	stopped  bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{updates: make(chan tgbotapi.Update, 8)}
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return tgbotapi.Message{}, f.sendErr
	}
	f.sent = append(f.sent, c)
	f.nextID++
	return tgbotapi.Message{MessageID: f.nextID}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return f.updates
}

func (f *fakeAPI) StopReceivingUpdates() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

type recordedEvent struct {
	message  *bot.Message
	callback *bot.Callback
}

type fakeRouter struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakeRouter) HandleMessage(ctx context.Context, msg bot.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{message: &msg})
}

func (f *fakeRouter) HandleCallback(ctx context.Context, cb bot.Callback) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{callback: &cb})
}

func (f *fakeRouter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

func TestSendTextReturnsMessageID(t *testing.T) {
	api := newFakeAPI()
	c := NewClientWithAPI(api)

	id, err := c.SendText(context.Background(), 42, "привет")
	if err != nil {
		t.Fatalf("SendText failed: %v", err)
	}
	if id != 1 {
		t.Errorf("message ID = %d, want 1", id)
	}

	msg, ok := api.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("sent %T, want MessageConfig", api.sent[0])
	}
	if msg.ChatID != 42 || msg.Text != "привет" {
		t.Errorf("sent chat %d text %q", msg.ChatID, msg.Text)
	}
}

func TestSendKeyboardBuildsInlineMarkup(t *testing.T) {
	api := newFakeAPI()
	c := NewClientWithAPI(api)

	rows := [][]models.Button{
		{{Text: "Да", Data: "meds_yes"}},
		{{Text: "Нет", Data: "meds_no"}},
	}
	if _, err := c.SendKeyboard(context.Background(), 42, "Вопрос", rows); err != nil {
		t.Fatalf("SendKeyboard failed: %v", err)
	}

	msg := api.sent[0].(tgbotapi.MessageConfig)
	markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	if !ok {
		t.Fatalf("reply markup %T, want InlineKeyboardMarkup", msg.ReplyMarkup)
	}
	if len(markup.InlineKeyboard) != 2 {
		t.Fatalf("keyboard rows = %d, want 2", len(markup.InlineKeyboard))
	}
	button := markup.InlineKeyboard[1][0]
	if button.Text != "Нет" || button.CallbackData == nil || *button.CallbackData != "meds_no" {
		t.Errorf("second row button = %+v", button)
	}
}

func TestSendErrorsMapForbiddenToUnreachable(t *testing.T) {
	api := newFakeAPI()
	api.sendErr = &tgbotapi.Error{Code: 403, Message: "Forbidden: bot was blocked by the user"}
	c := NewClientWithAPI(api)

	_, err := c.SendText(context.Background(), 42, "привет")
	if !errors.Is(err, models.ErrRecipientUnreachable) {
		t.Errorf("error = %v, want ErrRecipientUnreachable", err)
	}

	api.sendErr = errors.New("network down")
	_, err = c.SendText(context.Background(), 42, "привет")
	if errors.Is(err, models.ErrRecipientUnreachable) {
		t.Errorf("transient error mapped to unreachable: %v", err)
	}
}

func TestDeleteMessageIssuesRequest(t *testing.T) {
	api := newFakeAPI()
	c := NewClientWithAPI(api)

	if err := c.DeleteMessage(context.Background(), 42, 7); err != nil {
		t.Fatalf("DeleteMessage failed: %v", err)
	}
	del, ok := api.requests[0].(tgbotapi.DeleteMessageConfig)
	if !ok {
		t.Fatalf("request %T, want DeleteMessageConfig", api.requests[0])
	}
	if del.ChatID != 42 || del.MessageID != 7 {
		t.Errorf("delete target = chat %d message %d", del.ChatID, del.MessageID)
	}
}

func TestSendDocumentUploadsBytes(t *testing.T) {
	api := newFakeAPI()
	c := NewClientWithAPI(api)

	if err := c.SendDocument(context.Background(), 42, "responses.xlsx", []byte{1, 2, 3}); err != nil {
		t.Fatalf("SendDocument failed: %v", err)
	}
	doc, ok := api.sent[0].(tgbotapi.DocumentConfig)
	if !ok {
		t.Fatalf("sent %T, want DocumentConfig", api.sent[0])
	}
	file, ok := doc.File.(tgbotapi.FileBytes)
	if !ok {
		t.Fatalf("document file %T, want FileBytes", doc.File)
	}
	if file.Name != "responses.xlsx" || len(file.Bytes) != 3 {
		t.Errorf("document = %q with %d bytes", file.Name, len(file.Bytes))
	}
}

func TestRunDispatchesUpdates(t *testing.T) {
	api := newFakeAPI()
	c := NewClientWithAPI(api)
	router := &fakeRouter{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.Run(ctx, router)
	}()

	api.updates <- tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 42},
		From: &tgbotapi.User{UserName: "tester"},
		Text: "/start",
	}}
	api.updates <- tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:   "cb1",
		From: &tgbotapi.User{UserName: "tester"},
		Data: "start_test",
		Message: &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: 42},
		},
	}}

	deadline := time.Now().Add(2 * time.Second)
	for router.count() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-done

	if router.count() != 2 {
		t.Fatalf("dispatched %d events, want 2", router.count())
	}
	router.mu.Lock()
	defer router.mu.Unlock()
	first, second := router.events[0], router.events[1]
	if first.message == nil || first.message.Text != "/start" || first.message.ChatID != 42 {
		t.Errorf("first event = %+v, want /start message", first)
	}
	if second.callback == nil || second.callback.Data != "start_test" {
		t.Errorf("second event = %+v, want start_test callback", second)
	}

	api.mu.Lock()
	answered := len(api.requests)
	stopped := api.stopped
	api.mu.Unlock()
	if answered != 1 {
		t.Errorf("callback answered %d times, want 1", answered)
	}
	if !stopped {
		t.Error("expected StopReceivingUpdates after cancel")
	}
}
