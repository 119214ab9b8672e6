// This file implements the PostgreSQL-backed store.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/violetta-bot/violetta/internal/models"
	_ "github.com/lib/pq"
)

// Database connection pool configuration constants.
const (
	DefaultMaxOpenConns    = 25
	DefaultMaxIdleConns    = 25
	DefaultConnMaxLifetime = 5 * time.Minute
)

type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Postgres store based on provided options.
func NewPostgresStore(opts ...Option) (*PostgresStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("NewPostgresStore invoked", "DSN_set", cfg.DSN != "")

	dsn := cfg.DSN
	if dsn == "" {
		slog.Error("PostgresStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		slog.Error("Failed to open Postgres connection", "error", err)
		return nil, err
	}

	db.SetMaxOpenConns(DefaultMaxOpenConns)
	db.SetMaxIdleConns(DefaultMaxIdleConns)
	db.SetConnMaxLifetime(DefaultConnMaxLifetime)

	if err := db.Ping(); err != nil {
		slog.Error("Postgres ping failed", "error", err)
		return nil, err
	}

	if err := runMigrations(db, "postgres"); err != nil {
		slog.Error("Failed to run Postgres migrations", "error", err)
		return nil, err
	}
	slog.Debug("Postgres store ready")

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) GetProfile(chatID int64) (*models.UserProfile, error) {
	row := s.db.QueryRow(`SELECT `+profileColumns+` FROM user_profiles WHERE chat_id = $1`, chatID)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		slog.Error("PostgresStore GetProfile failed", "error", err, "chatID", chatID)
		return nil, fmt.Errorf("failed to get profile %d: %w", chatID, err)
	}
	return p, nil
}

func (s *PostgresStore) SaveProfile(p *models.UserProfile) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	_, err := s.db.Exec(`INSERT INTO user_profiles (`+profileColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)
		ON CONFLICT (chat_id) DO UPDATE SET
			username = EXCLUDED.username, full_name = EXCLUDED.full_name, age = EXCLUDED.age,
			gender = EXCLUDED.gender, taking_meds = EXCLUDED.taking_meds,
			meds_details = EXCLUDED.meds_details, pregnant = EXCLUDED.pregnant,
			stage = EXCLUDED.stage, current_test = EXCLUDED.current_test, message_id = EXCLUDED.message_id,
			test1_answers = EXCLUDED.test1_answers, test1_raw = EXCLUDED.test1_raw, test1_score = EXCLUDED.test1_score,
			test2_answers = EXCLUDED.test2_answers, test2_raw = EXCLUDED.test2_raw, test2_score = EXCLUDED.test2_score,
			test3_answers = EXCLUDED.test3_answers, test3_anxiety_raw = EXCLUDED.test3_anxiety_raw,
			test3_depression_raw = EXCLUDED.test3_depression_raw,
			test3_anxiety_score = EXCLUDED.test3_anxiety_score, test3_depression_score = EXCLUDED.test3_depression_score,
			test4_answers = EXCLUDED.test4_answers, test4_raw = EXCLUDED.test4_raw, test4_score = EXCLUDED.test4_score,
			recommendation = EXCLUDED.recommendation, last_reminder = EXCLUDED.last_reminder,
			next_reminder_at = EXCLUDED.next_reminder_at, updated_at = EXCLUDED.updated_at`,
		p.ChatID, p.Username, p.FullName, p.Age, p.Gender, p.TakingMeds, p.MedsDetails, p.Pregnant,
		p.Stage, p.CurrentTest, p.MessageID,
		p.Test1Answers, p.Test1Raw, p.Test1Score,
		p.Test2Answers, p.Test2Raw, p.Test2Score,
		p.Test3Answers, p.Test3AnxietyRaw, p.Test3DepressionRaw, p.Test3AnxietyScore, p.Test3DepressionScore,
		p.Test4Answers, p.Test4Raw, p.Test4Score,
		p.Recommendation, nullableTime(p.LastReminder), nullableTime(p.NextReminderAt), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		slog.Error("PostgresStore SaveProfile failed", "error", err, "chatID", p.ChatID)
		return fmt.Errorf("failed to save profile %d: %w", p.ChatID, err)
	}
	slog.Debug("PostgresStore SaveProfile succeeded", "chatID", p.ChatID, "stage", p.Stage)
	return nil
}

func (s *PostgresStore) UpdateStage(chatID int64, stage models.Stage, currentTest models.TestID) error {
	_, err := s.db.Exec(`UPDATE user_profiles SET stage = $1, current_test = $2, updated_at = $3 WHERE chat_id = $4`,
		stage, currentTest, time.Now().UTC(), chatID)
	if err != nil {
		slog.Error("PostgresStore UpdateStage failed", "error", err, "chatID", chatID, "stage", stage)
		return fmt.Errorf("failed to update stage for %d: %w", chatID, err)
	}
	return nil
}

func (s *PostgresStore) UpdateMessageID(chatID int64, messageID int) error {
	_, err := s.db.Exec(`UPDATE user_profiles SET message_id = $1, updated_at = $2 WHERE chat_id = $3`,
		messageID, time.Now().UTC(), chatID)
	if err != nil {
		slog.Error("PostgresStore UpdateMessageID failed", "error", err, "chatID", chatID)
		return fmt.Errorf("failed to update message id for %d: %w", chatID, err)
	}
	return nil
}

func (s *PostgresStore) SaveRecommendation(chatID int64, text string) error {
	_, err := s.db.Exec(`UPDATE user_profiles SET recommendation = $1, updated_at = $2 WHERE chat_id = $3`,
		text, time.Now().UTC(), chatID)
	if err != nil {
		slog.Error("PostgresStore SaveRecommendation failed", "error", err, "chatID", chatID)
		return fmt.Errorf("failed to save recommendation for %d: %w", chatID, err)
	}
	return nil
}

func (s *PostgresStore) SetNextReminder(chatID int64, at *time.Time) error {
	_, err := s.db.Exec(`UPDATE user_profiles SET next_reminder_at = $1, updated_at = $2 WHERE chat_id = $3`,
		nullableTime(at), time.Now().UTC(), chatID)
	if err != nil {
		slog.Error("PostgresStore SetNextReminder failed", "error", err, "chatID", chatID)
		return fmt.Errorf("failed to set next reminder for %d: %w", chatID, err)
	}
	return nil
}

func (s *PostgresStore) MarkReminderSent(chatID int64, at time.Time) error {
	_, err := s.db.Exec(`UPDATE user_profiles SET last_reminder = $1, next_reminder_at = NULL, updated_at = $2 WHERE chat_id = $3`,
		at, time.Now().UTC(), chatID)
	if err != nil {
		slog.Error("PostgresStore MarkReminderSent failed", "error", err, "chatID", chatID)
		return fmt.Errorf("failed to mark reminder sent for %d: %w", chatID, err)
	}
	return nil
}

func (s *PostgresStore) ListDueReminders(now time.Time) ([]*models.UserProfile, error) {
	rows, err := s.db.Query(`SELECT `+profileColumns+` FROM user_profiles
		WHERE next_reminder_at IS NOT NULL AND next_reminder_at <= $1`, now)
	if err != nil {
		slog.Error("PostgresStore ListDueReminders query failed", "error", err)
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}
	return collectProfiles(rows)
}

func (s *PostgresStore) ListRemindable(before time.Time) ([]*models.UserProfile, error) {
	rows, err := s.db.Query(`SELECT `+profileColumns+` FROM user_profiles
		WHERE test1_score > 0 AND test2_score > 0
		  AND test3_anxiety_score > 0 AND test3_depression_score > 0 AND test4_score > 0
		  AND (last_reminder IS NULL OR last_reminder < $1)`, before)
	if err != nil {
		slog.Error("PostgresStore ListRemindable query failed", "error", err)
		return nil, fmt.Errorf("failed to query remindable profiles: %w", err)
	}
	return collectProfiles(rows)
}

func (s *PostgresStore) ListProfiles() ([]*models.UserProfile, error) {
	rows, err := s.db.Query(`SELECT ` + profileColumns + ` FROM user_profiles ORDER BY created_at`)
	if err != nil {
		slog.Error("PostgresStore ListProfiles query failed", "error", err)
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	return collectProfiles(rows)
}

func (s *PostgresStore) DeleteProfile(chatID int64) error {
	_, err := s.db.Exec(`DELETE FROM user_profiles WHERE chat_id = $1`, chatID)
	if err != nil {
		slog.Error("PostgresStore DeleteProfile failed", "error", err, "chatID", chatID)
		return fmt.Errorf("failed to delete profile %d: %w", chatID, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
