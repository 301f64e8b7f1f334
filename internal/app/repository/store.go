package repository

import (
	"context"
	stderrors "errors"

	"speech-search/internal/app/errors"
	"speech-search/internal/app/model"
)

// ErrNotFound is wrapped by every store when an id is unknown
var ErrNotFound = stderrors.New("transcript not found")

// ErrEmptyText is returned when an insert carries no text
var ErrEmptyText = errors.Input("transcript text is required")

// TranscriptStore holds transcripts keyed by an opaque id.
// Implementations must be safe for concurrent use: an Insert that has
// returned is visible to every later Get, ListAll and Count.
type TranscriptStore interface {
	// Insert stores a new record under a freshly generated id
	Insert(ctx context.Context, text, language string) (*model.Transcript, error)

	// Get returns the record for id or an error wrapping ErrNotFound
	Get(ctx context.Context, id string) (*model.Transcript, error)

	// ListAll returns a snapshot of every record. Order is not meaningful.
	ListAll(ctx context.Context) ([]model.Transcript, error)

	// Count returns the number of stored records
	Count(ctx context.Context) (int, error)

	Close() error
}

// NotFoundError builds the error stores return for an unknown id
func NotFoundError() error {
	return errors.Wrap(ErrNotFound, errors.KindNotFound, "Transcription not found")
}
