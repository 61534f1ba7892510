// Package feedback handles user feedback intake, appended to a single
// shared collection under the "feedback" key.
package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AmoolyaSuneja/EduStream/models"
	"github.com/AmoolyaSuneja/EduStream/storage"
)

const feedbackKey = "feedback"

var ErrInvalid = errors.New("feedback: subject and description are required")

var (
	validTypes      = map[string]bool{"suggestion": true, "bug": true, "feature": true, "general": true}
	validPriorities = map[string]bool{"low": true, "medium": true, "high": true, "critical": true}
)

type Service struct {
	store storage.Store
	now   func() time.Time

	mu sync.Mutex
}

func NewService(store storage.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Submit validates and stores an entry. Nothing is persisted when
// validation fails, so a rejected submission can simply be retried.
func (s *Service) Submit(ctx context.Context, entry models.Feedback) (models.Feedback, error) {
	entry.Subject = strings.TrimSpace(entry.Subject)
	entry.Description = strings.TrimSpace(entry.Description)
	if entry.Subject == "" || entry.Description == "" {
		return models.Feedback{}, ErrInvalid
	}
	if !validTypes[entry.Type] {
		entry.Type = "general"
	}
	if !validPriorities[entry.Priority] {
		entry.Priority = "medium"
	}
	entry.ID = uuid.NewString()
	entry.SubmittedAt = s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.entriesLocked(ctx)
	entries = append(entries, entry)
	raw, err := json.Marshal(entries)
	if err != nil {
		return models.Feedback{}, err
	}
	if err := s.store.Set(ctx, feedbackKey, string(raw)); err != nil {
		return models.Feedback{}, err
	}
	return entry, nil
}

func (s *Service) entriesLocked(ctx context.Context) []models.Feedback {
	raw, err := s.store.Get(ctx, feedbackKey)
	if err != nil {
		return []models.Feedback{}
	}
	var entries []models.Feedback
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []models.Feedback{}
	}
	return entries
}
