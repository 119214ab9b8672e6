// Package reminder schedules the practice reminders: a per-user timer armed
// after a recommendation is delivered, plus a periodic bulk sweep over every
// completed profile. Deadlines are durable; timers are rebuilt on startup.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/violetta-bot/violetta/internal/models"
	"github.com/violetta-bot/violetta/internal/store"
)

const (
	// DefaultDelay is the interval between a recommendation and its reminder.
	DefaultDelay = 48 * time.Hour
	// DefaultSweepSpec runs the bulk sweep at 10:00 every second day.
	DefaultSweepSpec = "0 10 */2 * *"
	// DefaultSendPause rate-limits bulk sends to respect transport limits.
	DefaultSendPause = 500 * time.Millisecond
	// minRestoreDelay keeps overdue restored timers from firing mid-startup.
	minRestoreDelay = time.Minute
	// restoreHorizon bounds the deadline scan when rebuilding timers.
	restoreHorizon = 365 * 24 * time.Hour
)

// Sender is the outbound surface the scheduler needs.
type Sender interface {
	SendKeyboard(ctx context.Context, chatID int64, text string, rows [][]models.Button) (int, error)
}

// Opts holds configuration options for the scheduler.
type Opts struct {
	Delay     time.Duration
	SweepSpec string
	SendPause time.Duration
}

// Option configures scheduler creation.
type Option func(*Opts)

// WithDelay overrides the default reminder delay.
func WithDelay(d time.Duration) Option {
	return func(o *Opts) { o.Delay = d }
}

// WithSweepSpec overrides the bulk sweep cron expression.
func WithSweepSpec(spec string) Option {
	return func(o *Opts) { o.SweepSpec = spec }
}

// WithSendPause overrides the inter-send pause of the bulk sweep.
func WithSendPause(d time.Duration) Option {
	return func(o *Opts) { o.SendPause = d }
}

// Scheduler owns the per-user timers and the periodic sweep. At most one
// timer exists per chat ID; arming replaces any previous one.
type Scheduler struct {
	mu     sync.Mutex
	timers map[int64]*time.Timer

	store     store.Store
	sender    Sender
	cron      *cron.Cron
	delay     time.Duration
	sweepSpec string
	sendPause time.Duration
}

// NewScheduler creates a scheduler over the given store and sender.
func NewScheduler(st store.Store, sender Sender, opts ...Option) *Scheduler {
	cfg := Opts{Delay: DefaultDelay, SweepSpec: DefaultSweepSpec, SendPause: DefaultSendPause}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Scheduler{
		timers:    make(map[int64]*time.Timer),
		store:     st,
		sender:    sender,
		delay:     cfg.Delay,
		sweepSpec: cfg.SweepSpec,
		sendPause: cfg.SendPause,
	}
}

// Arm schedules the reminder for chatID after the default delay, canceling
// and replacing any outstanding one. The deadline is persisted so a restart
// can rebuild the timer.
func (s *Scheduler) Arm(chatID int64) error {
	deadline := time.Now().UTC().Add(s.delay)
	if err := s.store.SetNextReminder(chatID, &deadline); err != nil {
		return fmt.Errorf("failed to persist reminder deadline for %d: %w", chatID, err)
	}
	s.armAt(chatID, s.delay)
	slog.Debug("Reminder armed", "chatID", chatID, "deadline", deadline)
	return nil
}

// armAt installs the in-memory timer, replacing any existing one.
func (s *Scheduler) armAt(chatID int64, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[chatID]; ok {
		t.Stop()
	}
	s.timers[chatID] = time.AfterFunc(delay, func() { s.fire(chatID) })
}

// Cancel removes any outstanding reminder for chatID without side effects.
func (s *Scheduler) Cancel(chatID int64) {
	s.mu.Lock()
	if t, ok := s.timers[chatID]; ok {
		t.Stop()
		delete(s.timers, chatID)
	}
	s.mu.Unlock()
	if err := s.store.SetNextReminder(chatID, nil); err != nil {
		slog.Error("Failed to clear reminder deadline", "error", err, "chatID", chatID)
	}
	slog.Debug("Reminder canceled", "chatID", chatID)
}

// fire delivers the single-user reminder prompt.
func (s *Scheduler) fire(chatID int64) {
	ctx := context.Background()
	s.mu.Lock()
	delete(s.timers, chatID)
	s.mu.Unlock()

	rows := [][]models.Button{{
		{Text: "⏩ Позже", Data: fmt.Sprintf("remind_later_%d", chatID)},
		{Text: "🚀 Начать сейчас", Data: fmt.Sprintf("new_technique_%d", chatID)},
	}}
	messageID, err := s.sender.SendKeyboard(ctx, chatID, "⏰ Время практиковать! Хотите попробовать сейчас?", rows)
	if err != nil {
		if errors.Is(err, models.ErrRecipientUnreachable) {
			slog.Info("Recipient unreachable, dropping profile", "chatID", chatID)
			if derr := s.store.DeleteProfile(chatID); derr != nil {
				slog.Error("Failed to delete unreachable profile", "error", derr, "chatID", chatID)
			}
			return
		}
		slog.Error("Failed to send reminder", "error", err, "chatID", chatID)
		return
	}

	now := time.Now().UTC()
	if err := s.store.MarkReminderSent(chatID, now); err != nil {
		slog.Error("Failed to mark reminder sent", "error", err, "chatID", chatID)
	}
	if err := s.store.UpdateMessageID(chatID, messageID); err != nil {
		slog.Error("Failed to record reminder prompt", "error", err, "chatID", chatID)
	}
	slog.Info("Reminder delivered", "chatID", chatID)
}

// Restore rebuilds timers from persisted deadlines after a restart. Overdue
// reminders fire after a short grace delay instead of immediately.
func (s *Scheduler) Restore() error {
	profiles, err := s.store.ListDueReminders(time.Now().UTC().Add(restoreHorizon))
	if err != nil {
		return fmt.Errorf("failed to list persisted reminders: %w", err)
	}
	now := time.Now().UTC()
	for _, p := range profiles {
		if p.NextReminderAt == nil {
			continue
		}
		delay := p.NextReminderAt.Sub(now)
		if delay < minRestoreDelay {
			delay = minRestoreDelay
		}
		s.armAt(p.ChatID, delay)
		slog.Debug("Reminder restored", "chatID", p.ChatID, "delay", delay)
	}
	slog.Info("Reminders restored", "count", len(profiles))
	return nil
}

// Start launches the periodic bulk sweep.
func (s *Scheduler) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.sweepSpec, s.Sweep); err != nil {
		return fmt.Errorf("failed to schedule reminder sweep: %w", err)
	}
	s.cron.Start()
	slog.Info("Reminder sweep scheduled", "spec", s.sweepSpec)
	return nil
}

// Stop halts the sweep and every outstanding timer. Persisted deadlines are
// kept so Restore can rebuild state on the next start.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for chatID, t := range s.timers {
		t.Stop()
		delete(s.timers, chatID)
	}
	slog.Info("Reminder scheduler stopped")
}

// Sweep sends the periodic prompt to every completed profile not reminded
// within the delay window, pausing between sends.
func (s *Scheduler) Sweep() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-s.delay)
	profiles, err := s.store.ListRemindable(cutoff)
	if err != nil {
		slog.Error("Failed to list remindable profiles", "error", err)
		return
	}
	slog.Info("Reminder sweep started", "candidates", len(profiles))

	for i, p := range profiles {
		rows := [][]models.Button{{
			{Text: "Напомнить позже", Data: fmt.Sprintf("remind_later_%d", p.ChatID)},
			{Text: "Пройти сейчас", Data: fmt.Sprintf("new_session_%d", p.ChatID)},
		}}
		_, err := s.sender.SendKeyboard(ctx, p.ChatID, "🕑 Прошло 2 дня! Самое время повторить технику релаксации:", rows)
		if err != nil {
			if errors.Is(err, models.ErrRecipientUnreachable) {
				slog.Info("Recipient unreachable, dropping profile", "chatID", p.ChatID)
				if derr := s.store.DeleteProfile(p.ChatID); derr != nil {
					slog.Error("Failed to delete unreachable profile", "error", derr, "chatID", p.ChatID)
				}
			} else {
				slog.Error("Failed to send sweep reminder", "error", err, "chatID", p.ChatID)
			}
		} else if err := s.store.MarkReminderSent(p.ChatID, time.Now().UTC()); err != nil {
			slog.Error("Failed to mark reminder sent", "error", err, "chatID", p.ChatID)
		}

		if i+1 < len(profiles) {
			time.Sleep(s.sendPause)
		}
	}
}
