// This file implements an in-memory store, used in tests and as a fallback
// when no DSN is configured.
package store

import (
	"sync"
	"time"

	"github.com/violetta-bot/violetta/internal/models"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[int64]*models.UserProfile
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[int64]*models.UserProfile)}
}

// copyProfile makes a shallow copy with the pointer timestamps duplicated so
// callers cannot mutate stored state through returned values.
func copyProfile(p *models.UserProfile) *models.UserProfile {
	cp := *p
	if p.LastReminder != nil {
		t := *p.LastReminder
		cp.LastReminder = &t
	}
	if p.NextReminderAt != nil {
		t := *p.NextReminderAt
		cp.NextReminderAt = &t
	}
	return &cp
}

func (s *InMemoryStore) GetProfile(chatID int64) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[chatID]
	if !ok {
		return nil, nil
	}
	return copyProfile(p), nil
}

func (s *InMemoryStore) SaveProfile(p *models.UserProfile) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ChatID] = copyProfile(p)
	return nil
}

func (s *InMemoryStore) UpdateStage(chatID int64, stage models.Stage, currentTest models.TestID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.profiles[chatID]; ok {
		p.Stage = stage
		p.CurrentTest = currentTest
		p.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (s *InMemoryStore) UpdateMessageID(chatID int64, messageID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.profiles[chatID]; ok {
		p.MessageID = messageID
		p.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (s *InMemoryStore) SaveRecommendation(chatID int64, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.profiles[chatID]; ok {
		p.Recommendation = text
		p.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (s *InMemoryStore) SetNextReminder(chatID int64, at *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.profiles[chatID]; ok {
		if at != nil {
			t := *at
			p.NextReminderAt = &t
		} else {
			p.NextReminderAt = nil
		}
		p.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (s *InMemoryStore) MarkReminderSent(chatID int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.profiles[chatID]; ok {
		t := at
		p.LastReminder = &t
		p.NextReminderAt = nil
		p.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (s *InMemoryStore) ListDueReminders(now time.Time) ([]*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var due []*models.UserProfile
	for _, p := range s.profiles {
		if p.NextReminderAt != nil && !p.NextReminderAt.After(now) {
			due = append(due, copyProfile(p))
		}
	}
	return due, nil
}

func (s *InMemoryStore) ListRemindable(before time.Time) ([]*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.UserProfile
	for _, p := range s.profiles {
		if !p.Completed() {
			continue
		}
		if p.LastReminder == nil || p.LastReminder.Before(before) {
			out = append(out, copyProfile(p))
		}
	}
	return out, nil
}

func (s *InMemoryStore) ListProfiles() ([]*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.UserProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, copyProfile(p))
	}
	return out, nil
}

func (s *InMemoryStore) DeleteProfile(chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, chatID)
	return nil
}

func (s *InMemoryStore) Close() error {
	return nil
}
