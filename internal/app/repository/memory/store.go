package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"speech-search/internal/app/model"
	"speech-search/internal/app/repository"
)

// Store is a process-lifetime, map-backed TranscriptStore
type Store struct {
	mu      sync.RWMutex
	records map[string]*model.Transcript
	order   []string

	// overridable in tests
	newID func() string
	now   func() time.Time
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		records: make(map[string]*model.Transcript),
		newID:   func() string { return uuid.New().String() },
		now:     time.Now,
	}
}

// Insert stores text under a new random id
func (s *Store) Insert(ctx context.Context, text, language string) (*model.Transcript, error) {
	if text == "" {
		return nil, repository.ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for {
		if _, taken := s.records[id]; !taken {
			break
		}
		id = s.newID()
	}

	record := &model.Transcript{
		ID:        id,
		Text:      text,
		Language:  language,
		CreatedAt: s.now(),
	}
	s.records[id] = record
	s.order = append(s.order, id)

	copied := *record
	return &copied, nil
}

// Get returns a copy of the record stored under id
func (s *Store) Get(ctx context.Context, id string) (*model.Transcript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, repository.NotFoundError()
	}
	copied := *record
	return &copied, nil
}

// ListAll returns every record in insertion order
func (s *Store) ListAll(ctx context.Context) ([]model.Transcript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Transcript, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, *s.records[id])
	}
	return result, nil
}

// Count returns the number of stored records
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Close is a no-op; records live as long as the process
func (s *Store) Close() error {
	return nil
}

var _ repository.TranscriptStore = (*Store)(nil)
