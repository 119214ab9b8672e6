// Package answers holds the in-flight answer collections of users who are in
// the middle of a test. State lives in memory only; the durable record gets
// the collection once the test is scored.
package answers

import (
	"log/slog"
	"sync"

	"github.com/violetta-bot/violetta/internal/models"
)

// key addresses one answer collection. HADS uses the part as a sub-key so the
// two parts accumulate independently.
type key struct {
	chatID int64
	testID models.TestID
	part   models.Test3Part
}

// Accumulator stores sparse per-identity answer collections. Operations on
// different identities are independent; the mutex only guards the map itself.
type Accumulator struct {
	mu          sync.RWMutex
	collections map[key][]string
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{collections: make(map[key][]string)}
}

// Init resets the collection for the given identity and test to empty.
func (a *Accumulator) Init(chatID int64, testID models.TestID) {
	a.initKey(key{chatID: chatID, testID: testID})
}

// InitPart resets one HADS part collection to empty.
func (a *Accumulator) InitPart(chatID int64, part models.Test3Part) {
	a.initKey(key{chatID: chatID, testID: models.Test3, part: part})
}

func (a *Accumulator) initKey(k key) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.collections[k] = nil
	slog.Debug("Accumulator reset collection", "chatID", k.chatID, "test", k.testID, "part", k.part)
}

// Record sets the answer at questionIndex, growing the collection as needed.
// Unanswered gaps stay empty strings; the state machine drives indices
// monotonically so gaps do not occur in practice.
func (a *Accumulator) Record(chatID int64, testID models.TestID, questionIndex int, value string) {
	a.recordKey(key{chatID: chatID, testID: testID}, questionIndex, value)
}

// RecordPart sets an answer within one HADS part.
func (a *Accumulator) RecordPart(chatID int64, part models.Test3Part, questionIndex int, value string) {
	a.recordKey(key{chatID: chatID, testID: models.Test3, part: part}, questionIndex, value)
}

func (a *Accumulator) recordKey(k key, questionIndex int, value string) {
	if questionIndex < 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	c := a.collections[k]
	for len(c) <= questionIndex {
		c = append(c, "")
	}
	c[questionIndex] = value
	a.collections[k] = c
}

// Get returns a copy of the current collection, or an empty one if absent.
func (a *Accumulator) Get(chatID int64, testID models.TestID) []string {
	return a.getKey(key{chatID: chatID, testID: testID})
}

// GetPart returns a copy of one HADS part collection.
func (a *Accumulator) GetPart(chatID int64, part models.Test3Part) []string {
	return a.getKey(key{chatID: chatID, testID: models.Test3, part: part})
}

func (a *Accumulator) getKey(k key) []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	c := a.collections[k]
	out := make([]string, len(c))
	copy(out, c)
	return out
}

// Clear drops all in-flight state for the identity across every test.
func (a *Accumulator) Clear(chatID int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for k := range a.collections {
		if k.chatID == chatID {
			delete(a.collections, k)
		}
	}
	slog.Debug("Accumulator cleared identity", "chatID", chatID)
}
