// Package telegram adapts the Telegram Bot API to the transport surface the
// bot and the reminder scheduler consume, and runs the inbound update loop.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/violetta-bot/violetta/internal/bot"
	"github.com/violetta-bot/violetta/internal/models"
)

const defaultUpdateTimeout = 30

// API is the subset of the Bot API client the transport uses. It exists so
// tests can substitute a fake.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Router dispatches decoded inbound events.
type Router interface {
	HandleMessage(ctx context.Context, msg bot.Message)
	HandleCallback(ctx context.Context, cb bot.Callback)
}

// Opts holds configuration options for the transport.
type Opts struct {
	Token         string
	UpdateTimeout int
}

// Option configures transport creation.
type Option func(*Opts)

// WithToken sets the bot token, overriding the TELEGRAM_BOT_TOKEN variable.
func WithToken(token string) Option {
	return func(o *Opts) { o.Token = token }
}

// WithUpdateTimeout sets the long-poll timeout in seconds.
func WithUpdateTimeout(seconds int) Option {
	return func(o *Opts) { o.UpdateTimeout = seconds }
}

// Client sends outbound messages and feeds inbound updates to a router.
type Client struct {
	api           API
	updateTimeout int
}

// NewClient connects to the Bot API. The token comes from options or from
// the TELEGRAM_BOT_TOKEN environment variable.
func NewClient(opts ...Option) (*Client, error) {
	cfg := Opts{UpdateTimeout: defaultUpdateTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv("TELEGRAM_BOT_TOKEN")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("telegram bot token not set")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	slog.Info("Telegram client connected", "username", api.Self.UserName)
	return &Client{api: api, updateTimeout: cfg.UpdateTimeout}, nil
}

// NewClientWithAPI wraps an existing API implementation. Used in tests.
func NewClientWithAPI(api API) *Client {
	return &Client{api: api, updateTimeout: defaultUpdateTimeout}
}

// SendText sends a plain text message and returns its message ID.
func (c *Client) SendText(ctx context.Context, chatID int64, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	msg, err := c.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return 0, wrapSendError(chatID, err)
	}
	return msg.MessageID, nil
}

// SendKeyboard sends a message with an inline keyboard and returns its
// message ID.
func (c *Client) SendKeyboard(ctx context.Context, chatID int64, text string, rows [][]models.Button) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	keyboard := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		keyboard = append(keyboard, buttons)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(keyboard...)
	sent, err := c.api.Send(msg)
	if err != nil {
		return 0, wrapSendError(chatID, err)
	}
	return sent.MessageID, nil
}

// DeleteMessage removes a previously sent message.
func (c *Client) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := c.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return fmt.Errorf("failed to delete message %d in chat %d: %w", messageID, chatID, err)
	}
	return nil
}

// SendDocument uploads a file from memory.
func (c *Client) SendDocument(ctx context.Context, chatID int64, filename string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	if _, err := c.api.Send(doc); err != nil {
		return wrapSendError(chatID, err)
	}
	return nil
}

// Run consumes updates and dispatches them to the router until ctx is
// canceled.
func (c *Client) Run(ctx context.Context, router Router) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = c.updateTimeout
	updates := c.api.GetUpdatesChan(updateConfig)
	slog.Info("Update loop started")

	for {
		select {
		case <-ctx.Done():
			c.api.StopReceivingUpdates()
			slog.Info("Update loop stopped")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			c.dispatch(ctx, router, update)
		}
	}
}

func (c *Client) dispatch(ctx context.Context, router Router, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		cb := update.CallbackQuery
		// Acknowledge first so the client stops its spinner even if the
		// handler is slow.
		if _, err := c.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			slog.Debug("Failed to answer callback query", "error", err)
		}
		if cb.Message == nil {
			return
		}
		router.HandleCallback(ctx, bot.Callback{
			ChatID:   cb.Message.Chat.ID,
			Username: cb.From.UserName,
			Data:     cb.Data,
		})
	case update.Message != nil:
		msg := update.Message
		router.HandleMessage(ctx, bot.Message{
			ChatID:   msg.Chat.ID,
			Username: msg.From.UserName,
			Text:     msg.Text,
		})
	}
}

// wrapSendError maps blocked-bot failures onto the unreachable sentinel so
// callers can drop the profile.
func wrapSendError(chatID int64, err error) error {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 403 {
		return fmt.Errorf("chat %d: %w", chatID, models.ErrRecipientUnreachable)
	}
	if strings.Contains(err.Error(), "Forbidden") {
		return fmt.Errorf("chat %d: %w", chatID, models.ErrRecipientUnreachable)
	}
	return fmt.Errorf("failed to send to chat %d: %w", chatID, err)
}
