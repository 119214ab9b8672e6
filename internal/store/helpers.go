package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/violetta-bot/violetta/internal/models"
)

// profileColumns is the canonical column list shared by every SELECT and the
// upsert. Order must match scanProfile.
const profileColumns = `chat_id, username, full_name, age, gender, taking_meds, meds_details, pregnant,
	stage, current_test, message_id,
	test1_answers, test1_raw, test1_score,
	test2_answers, test2_raw, test2_score,
	test3_answers, test3_anxiety_raw, test3_depression_raw, test3_anxiety_score, test3_depression_score,
	test4_answers, test4_raw, test4_score,
	recommendation, last_reminder, next_reminder_at, created_at, updated_at`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanProfile scans one user_profiles row in profileColumns order.
func scanProfile(row rowScanner) (*models.UserProfile, error) {
	var p models.UserProfile
	var lastReminder, nextReminderAt sql.NullTime
	err := row.Scan(
		&p.ChatID, &p.Username, &p.FullName, &p.Age, &p.Gender, &p.TakingMeds, &p.MedsDetails, &p.Pregnant,
		&p.Stage, &p.CurrentTest, &p.MessageID,
		&p.Test1Answers, &p.Test1Raw, &p.Test1Score,
		&p.Test2Answers, &p.Test2Raw, &p.Test2Score,
		&p.Test3Answers, &p.Test3AnxietyRaw, &p.Test3DepressionRaw, &p.Test3AnxietyScore, &p.Test3DepressionScore,
		&p.Test4Answers, &p.Test4Raw, &p.Test4Score,
		&p.Recommendation, &lastReminder, &nextReminderAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan profile row: %w", err)
	}
	if lastReminder.Valid {
		p.LastReminder = &lastReminder.Time
	}
	if nextReminderAt.Valid {
		p.NextReminderAt = &nextReminderAt.Time
	}
	return &p, nil
}

// collectProfiles drains rows into a slice, propagating iteration errors.
func collectProfiles(rows *sql.Rows) ([]*models.UserProfile, error) {
	defer rows.Close()
	var profiles []*models.UserProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profile rows: %w", err)
	}
	return profiles, nil
}

// nullableTime converts an optional timestamp for a nullable column.
func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
