package search

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"speech-search/internal/app/errors"
	"speech-search/internal/app/model"
	"speech-search/internal/app/repository"
)

// ErrEmptyQuery is returned for empty or whitespace-only queries
var ErrEmptyQuery = errors.Input("No search query provided")

// Engine answers case-insensitive substring queries over a TranscriptStore.
// It keeps no state of its own; every call scans a fresh snapshot.
type Engine struct {
	store repository.TranscriptStore
}

// NewEngine creates a search engine over store
func NewEngine(store repository.TranscriptStore) *Engine {
	return &Engine{store: store}
}

// NormalizeQuery returns the form of query that is matched against transcripts
func NormalizeQuery(query string) string {
	return strings.ToLower(query)
}

// Search returns every transcript whose text contains query, ignoring case.
// Result order is not meaningful.
func (e *Engine) Search(ctx context.Context, query string) ([]model.Transcript, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	records, err := e.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := NormalizeQuery(query)
	return lo.Filter(records, func(t model.Transcript, _ int) bool {
		return strings.Contains(strings.ToLower(t.Text), needle)
	}), nil
}
