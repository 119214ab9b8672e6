// Package store provides storage backends for violetta.
//
// It includes SQLite and PostgreSQL implementations of the Store interface
// plus an in-memory store for tests. Backend selection is DSN-driven.
package store

import (
	"strings"
	"time"

	"github.com/violetta-bot/violetta/internal/models"
)

// Opts holds configuration options for store implementations.
type Opts struct {
	DSN string
}

// Option configures store creation.
type Option func(*Opts)

// WithDSN sets the data source name. For SQLite this is a file path; for
// Postgres a connection string.
func WithDSN(dsn string) Option {
	return func(o *Opts) { o.DSN = dsn }
}

// Store is the durable per-identity record repository. Implementations must
// be safe for concurrent use.
type Store interface {
	// GetProfile returns the profile for chatID, or nil when absent.
	GetProfile(chatID int64) (*models.UserProfile, error)
	// SaveProfile upserts the whole row keyed by chat ID.
	SaveProfile(p *models.UserProfile) error
	// UpdateStage persists a stage transition without touching other fields.
	UpdateStage(chatID int64, stage models.Stage, currentTest models.TestID) error
	// UpdateMessageID records the last rendered prompt message.
	UpdateMessageID(chatID int64, messageID int) error
	// SaveRecommendation persists the generated recommendation text.
	SaveRecommendation(chatID int64, text string) error
	// SetNextReminder arms or clears the durable reminder deadline.
	SetNextReminder(chatID int64, at *time.Time) error
	// MarkReminderSent stamps last_reminder and clears the deadline.
	MarkReminderSent(chatID int64, at time.Time) error
	// ListDueReminders returns profiles whose deadline is at or before now.
	ListDueReminders(now time.Time) ([]*models.UserProfile, error)
	// ListRemindable returns completed profiles not reminded since before.
	ListRemindable(before time.Time) ([]*models.UserProfile, error)
	// ListProfiles returns every profile, for the export report.
	ListProfiles() ([]*models.UserProfile, error)
	// DeleteProfile removes the row. Deleting an absent row is not an error.
	DeleteProfile(chatID int64) error
	// Close releases the underlying resources.
	Close() error
}

// NewStore selects a backend from the DSN: connection-string shapes go to
// Postgres, anything else is treated as an SQLite file path.
func NewStore(opts ...Option) (Store, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	if isPostgresDSN(cfg.DSN) {
		return NewPostgresStore(opts...)
	}
	return NewSQLiteStore(opts...)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
