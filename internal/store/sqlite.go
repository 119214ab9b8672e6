// This file implements the SQLite-backed store.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/violetta-bot/violetta/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultDirPermissions defines the default permissions for database directories.
const DefaultDirPermissions = 0755

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates an SQLite store. The DSN is a file path; missing
// directories are created.
func NewSQLiteStore(opts ...Option) (*SQLiteStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("NewSQLiteStore invoked", "DSN_set", cfg.DSN != "")

	dsn := cfg.DSN
	if dsn == "" {
		slog.Error("SQLiteStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	dir := filepath.Dir(dsn)
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		slog.Error("Failed to create database directory", "error", err, "dir", dir)
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		slog.Error("Failed to open SQLite connection", "error", err)
		return nil, err
	}
	if err := db.Ping(); err != nil {
		slog.Error("SQLite ping failed", "error", err)
		return nil, err
	}

	if err := runMigrations(db, "sqlite"); err != nil {
		slog.Error("Failed to run SQLite migrations", "error", err)
		return nil, err
	}
	slog.Debug("SQLite store ready", "dsn", dsn)

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) GetProfile(chatID int64) (*models.UserProfile, error) {
	row := s.db.QueryRow(`SELECT `+profileColumns+` FROM user_profiles WHERE chat_id = ?`, chatID)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		slog.Error("SQLiteStore GetProfile failed", "error", err, "chatID", chatID)
		return nil, fmt.Errorf("failed to get profile %d: %w", chatID, err)
	}
	return p, nil
}

func (s *SQLiteStore) SaveProfile(p *models.UserProfile) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	_, err := s.db.Exec(`INSERT INTO user_profiles (`+profileColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(chat_id) DO UPDATE SET
			username = excluded.username, full_name = excluded.full_name, age = excluded.age,
			gender = excluded.gender, taking_meds = excluded.taking_meds,
			meds_details = excluded.meds_details, pregnant = excluded.pregnant,
			stage = excluded.stage, current_test = excluded.current_test, message_id = excluded.message_id,
			test1_answers = excluded.test1_answers, test1_raw = excluded.test1_raw, test1_score = excluded.test1_score,
			test2_answers = excluded.test2_answers, test2_raw = excluded.test2_raw, test2_score = excluded.test2_score,
			test3_answers = excluded.test3_answers, test3_anxiety_raw = excluded.test3_anxiety_raw,
			test3_depression_raw = excluded.test3_depression_raw,
			test3_anxiety_score = excluded.test3_anxiety_score, test3_depression_score = excluded.test3_depression_score,
			test4_answers = excluded.test4_answers, test4_raw = excluded.test4_raw, test4_score = excluded.test4_score,
			recommendation = excluded.recommendation, last_reminder = excluded.last_reminder,
			next_reminder_at = excluded.next_reminder_at, updated_at = excluded.updated_at`,
		p.ChatID, p.Username, p.FullName, p.Age, p.Gender, p.TakingMeds, p.MedsDetails, p.Pregnant,
		p.Stage, p.CurrentTest, p.MessageID,
		p.Test1Answers, p.Test1Raw, p.Test1Score,
		p.Test2Answers, p.Test2Raw, p.Test2Score,
		p.Test3Answers, p.Test3AnxietyRaw, p.Test3DepressionRaw, p.Test3AnxietyScore, p.Test3DepressionScore,
		p.Test4Answers, p.Test4Raw, p.Test4Score,
		p.Recommendation, nullableTime(p.LastReminder), nullableTime(p.NextReminderAt), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		slog.Error("SQLiteStore SaveProfile failed", "error", err, "chatID", p.ChatID)
		return fmt.Errorf("failed to save profile %d: %w", p.ChatID, err)
	}
	slog.Debug("SQLiteStore SaveProfile succeeded", "chatID", p.ChatID, "stage", p.Stage)
	return nil
}

func (s *SQLiteStore) UpdateStage(chatID int64, stage models.Stage, currentTest models.TestID) error {
	_, err := s.db.Exec(`UPDATE user_profiles SET stage = ?, current_test = ?, updated_at = ? WHERE chat_id = ?`,
		stage, currentTest, time.Now().UTC(), chatID)
	if err != nil {
		slog.Error("SQLiteStore UpdateStage failed", "error", err, "chatID", chatID, "stage", stage)
		return fmt.Errorf("failed to update stage for %d: %w", chatID, err)
	}
	return nil
}

func (s *SQLiteStore) UpdateMessageID(chatID int64, messageID int) error {
	_, err := s.db.Exec(`UPDATE user_profiles SET message_id = ?, updated_at = ? WHERE chat_id = ?`,
		messageID, time.Now().UTC(), chatID)
	if err != nil {
		slog.Error("SQLiteStore UpdateMessageID failed", "error", err, "chatID", chatID)
		return fmt.Errorf("failed to update message id for %d: %w", chatID, err)
	}
	return nil
}

func (s *SQLiteStore) SaveRecommendation(chatID int64, text string) error {
	_, err := s.db.Exec(`UPDATE user_profiles SET recommendation = ?, updated_at = ? WHERE chat_id = ?`,
		text, time.Now().UTC(), chatID)
	if err != nil {
		slog.Error("SQLiteStore SaveRecommendation failed", "error", err, "chatID", chatID)
		return fmt.Errorf("failed to save recommendation for %d: %w", chatID, err)
	}
	return nil
}

func (s *SQLiteStore) SetNextReminder(chatID int64, at *time.Time) error {
	_, err := s.db.Exec(`UPDATE user_profiles SET next_reminder_at = ?, updated_at = ? WHERE chat_id = ?`,
		nullableTime(at), time.Now().UTC(), chatID)
	if err != nil {
		slog.Error("SQLiteStore SetNextReminder failed", "error", err, "chatID", chatID)
		return fmt.Errorf("failed to set next reminder for %d: %w", chatID, err)
	}
	return nil
}

func (s *SQLiteStore) MarkReminderSent(chatID int64, at time.Time) error {
	_, err := s.db.Exec(`UPDATE user_profiles SET last_reminder = ?, next_reminder_at = NULL, updated_at = ? WHERE chat_id = ?`,
		at, time.Now().UTC(), chatID)
	if err != nil {
		slog.Error("SQLiteStore MarkReminderSent failed", "error", err, "chatID", chatID)
		return fmt.Errorf("failed to mark reminder sent for %d: %w", chatID, err)
	}
	return nil
}

func (s *SQLiteStore) ListDueReminders(now time.Time) ([]*models.UserProfile, error) {
	rows, err := s.db.Query(`SELECT `+profileColumns+` FROM user_profiles
		WHERE next_reminder_at IS NOT NULL AND next_reminder_at <= ?`, now)
	if err != nil {
		slog.Error("SQLiteStore ListDueReminders query failed", "error", err)
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}
	return collectProfiles(rows)
}

func (s *SQLiteStore) ListRemindable(before time.Time) ([]*models.UserProfile, error) {
	rows, err := s.db.Query(`SELECT `+profileColumns+` FROM user_profiles
		WHERE test1_score > 0 AND test2_score > 0
		  AND test3_anxiety_score > 0 AND test3_depression_score > 0 AND test4_score > 0
		  AND (last_reminder IS NULL OR last_reminder < ?)`, before)
	if err != nil {
		slog.Error("SQLiteStore ListRemindable query failed", "error", err)
		return nil, fmt.Errorf("failed to query remindable profiles: %w", err)
	}
	return collectProfiles(rows)
}

func (s *SQLiteStore) ListProfiles() ([]*models.UserProfile, error) {
	rows, err := s.db.Query(`SELECT ` + profileColumns + ` FROM user_profiles ORDER BY created_at`)
	if err != nil {
		slog.Error("SQLiteStore ListProfiles query failed", "error", err)
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	return collectProfiles(rows)
}

func (s *SQLiteStore) DeleteProfile(chatID int64) error {
	_, err := s.db.Exec(`DELETE FROM user_profiles WHERE chat_id = ?`, chatID)
	if err != nil {
		slog.Error("SQLiteStore DeleteProfile failed", "error", err, "chatID", chatID)
		return fmt.Errorf("failed to delete profile %d: %w", chatID, err)
	}
	slog.Debug("SQLiteStore DeleteProfile succeeded", "chatID", chatID)
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
