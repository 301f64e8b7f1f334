package asr

import "context"

// Recognizer sends audio to an external speech recognition service.
// Implementations make exactly one call per Recognize and never retry.
//
// Errors are classified with speech-search/internal/app/errors:
// KindCollaborator when the service declined the audio, KindTransport when
// it could not be reached or answered with a non-200 status.
type Recognizer interface {
	Recognize(ctx context.Context, audio Audio) (*Result, error)

	// Name identifies the backend in logs and metrics
	Name() string
}

// Audio is a single recognition request
type Audio struct {
	Data     []byte
	Filename string
	Language string
}

// Result is a successful recognition. Transcript may be empty.
type Result struct {
	Transcript string
	TimeTaken  float64
}
