// Package models defines the core data structures for violetta.
//
// It includes the durable user profile, the conversation stage enum, test
// identifiers, and the typed results produced by the scoring engine. These
// types are shared across modules.
package models

import (
	"encoding/json"
	"errors"
	"time"
)

// Stage identifies the durable step of the guided intake/test sequence.
type Stage string

const (
	// StageStart is the initial stage before the user agrees to begin.
	StageStart Stage = "start"
	// StageFullName expects a free-text full name.
	StageFullName Stage = "full_name"
	// StageAge expects a free-text age.
	StageAge Stage = "age"
	// StageGender expects a gender button press.
	StageGender Stage = "gender"
	// StageTakingMeds expects a yes/no medication button press.
	StageTakingMeds Stage = "taking_meds"
	// StageMedsDetails expects a free-text list of medications.
	StageMedsDetails Stage = "meds_details"
	// StagePregnant expects a yes/no pregnancy button press (female only).
	StagePregnant Stage = "pregnant"
	// StageTesting covers the four question loops.
	StageTesting Stage = "testing"
	// StageDone marks a delivered recommendation. Re-enterable from the
	// reminder flow via a new-session action.
	StageDone Stage = "done"
)

// TestID identifies one of the four instruments.
type TestID string

const (
	// Test1 is the Leonhard character accentuation questionnaire.
	Test1 TestID = "test1"
	// Test2 is the leading perceptual modality questionnaire.
	Test2 TestID = "test2"
	// Test3 is the Hospital Anxiety and Depression Scale (HADS).
	Test3 TestID = "test3"
	// Test4 is the SCL-90-R symptom inventory.
	Test4 TestID = "test4"
)

// Test3Part identifies a part of the two-part HADS instrument.
type Test3Part string

const (
	// PartAnxiety is the first HADS part.
	PartAnxiety Test3Part = "anxiety"
	// PartDepression is the second HADS part.
	PartDepression Test3Part = "depression"
)

// IsValidTest3Part reports whether p names a HADS part.
func IsValidTest3Part(p Test3Part) bool {
	return p == PartAnxiety || p == PartDepression
}

// Answer values for binary tests.
const (
	AnswerYes = "yes"
	AnswerNo  = "no"
)

// Error variables for better error handling and testability.
var (
	// ErrMissingAnswers indicates scoring was invoked on an empty or
	// undersized answer collection.
	ErrMissingAnswers = errors.New("missing answers")
	// ErrInvalidName indicates a full name failing the format check.
	ErrInvalidName = errors.New("invalid full name")
	// ErrInvalidAge indicates an out-of-range or non-numeric age.
	ErrInvalidAge = errors.New("invalid age")
	// ErrUserNotFound indicates a profile lookup for an unknown identity.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmptyRecommendation indicates the LLM returned no choices.
	ErrEmptyRecommendation = errors.New("empty recommendation response")
	// ErrRecipientUnreachable indicates the transport rejected a send
	// because the recipient blocked or deleted the chat.
	ErrRecipientUnreachable = errors.New("recipient unreachable")
)

// UserProfile is the durable per-identity record. At most one row exists per
// chat ID; the store enforces the unique constraint.
type UserProfile struct {
	ChatID      int64  `json:"chat_id"`
	Username    string `json:"username,omitempty"`
	FullName    string `json:"full_name,omitempty"`
	Age         int    `json:"age,omitempty"`
	Gender      string `json:"gender,omitempty"`      // "male" or "female"
	TakingMeds  string `json:"taking_meds,omitempty"` // "yes" or "no"
	MedsDetails string `json:"meds_details,omitempty"`
	Pregnant    string `json:"pregnant,omitempty"` // "yes" or "no"

	Stage       Stage  `json:"stage"`
	CurrentTest TestID `json:"current_test,omitempty"`
	MessageID   int    `json:"message_id,omitempty"` // last rendered prompt

	Test1Answers string `json:"test1_answers,omitempty"` // serialized Test1Result
	Test1Raw     string `json:"test1_raw,omitempty"`     // serialized raw answers
	Test1Score   int    `json:"test1_score,omitempty"`

	Test2Answers string `json:"test2_answers,omitempty"`
	Test2Raw     string `json:"test2_raw,omitempty"`
	Test2Score   int    `json:"test2_score,omitempty"`

	Test3Answers         string `json:"test3_answers,omitempty"`
	Test3AnxietyRaw      string `json:"test3_anxiety_raw,omitempty"`
	Test3DepressionRaw   string `json:"test3_depression_raw,omitempty"`
	Test3AnxietyScore    int    `json:"test3_anxiety_score,omitempty"`
	Test3DepressionScore int    `json:"test3_depression_score,omitempty"`

	Test4Answers string  `json:"test4_answers,omitempty"`
	Test4Raw     string  `json:"test4_raw,omitempty"`
	Test4Score   float64 `json:"test4_score,omitempty"`

	Recommendation string     `json:"recommendation,omitempty"`
	LastReminder   *time.Time `json:"last_reminder,omitempty"`
	NextReminderAt *time.Time `json:"next_reminder_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Completed reports whether all four instruments have nonzero scores, the
// qualification test for reminder sweeps.
func (p *UserProfile) Completed() bool {
	return p.Test1Score > 0 && p.Test2Score > 0 &&
		p.Test3AnxietyScore > 0 && p.Test3DepressionScore > 0 &&
		p.Test4Score > 0
}

// Button is one inline keyboard button: a visible label plus the callback
// token sent back when pressed.
type Button struct {
	Text string `json:"text"`
	Data string `json:"data"`
}

// Modality names a perceptual channel category of test 2.
type Modality string

const (
	ModalityVisual      Modality = "visual"
	ModalityAudial      Modality = "audial"
	ModalityKinesthetic Modality = "kinesthetic"
)

// Test1Result is the scored output of the accentuation questionnaire.
type Test1Result struct {
	Scores         map[int]int `json:"scores"`          // scale number -> score
	DominantScales []int       `json:"dominant_scales"` // empty when max score is 0
	MaxScore       int         `json:"max_score"`
	Description    string      `json:"description"`
}

// Test2Result is the scored output of the perceptual modality questionnaire.
type Test2Result struct {
	Scores        map[Modality]int `json:"scores"`
	DominantTypes []Modality       `json:"dominant_types"` // never empty, ties at zero included
	Description   string           `json:"description"`
}

// Test3Result is the scored output of the HADS instrument.
type Test3Result struct {
	Anxiety     int    `json:"anxiety"`
	Depression  int    `json:"depression"`
	Description string `json:"description"`
}

// ScaleScore is one SCL-90-R category score.
type ScaleScore struct {
	Raw     int     `json:"raw"`
	Average float64 `json:"average"` // raw / category size, 2 decimals
}

// Test4Indices are the SCL-90-R summary distress indices.
type Test4Indices struct {
	GSI  float64 `json:"GSI"`  // mean of all answers
	PST  int     `json:"PST"`  // count of positive answers
	PSDI float64 `json:"PSDI"` // mean of positive answers, 0 when PST is 0
}

// Test4Result is the scored output of the symptom inventory.
type Test4Result struct {
	ScaleScores map[string]ScaleScore `json:"scale_scores"`
	Indices     Test4Indices          `json:"indices"`
	Score       float64               `json:"score"` // GSI, persisted as the test 4 score field
	Description string                `json:"description"`
}

// AllResults bundles the four persisted results for recommendation assembly.
// Nil fields stand for tests with no data.
type AllResults struct {
	Test1 *Test1Result
	Test2 *Test2Result
	Test3 *Test3Result
	Test4 *Test4Result
}

// ToJSON serializes a value for opaque storage in a result blob column.
func ToJSON(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FromJSON deserializes a result blob column into v. Empty input leaves v
// untouched and returns false.
func FromJSON(data string, v interface{}) (bool, error) {
	if data == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return false, err
	}
	return true, nil
}
