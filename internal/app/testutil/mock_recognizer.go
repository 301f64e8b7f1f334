package testutil

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"speech-search/internal/app/api/asr"
)

// MockRecognizer is a testify mock of asr.Recognizer that also keeps every
// audio it was asked to recognize
type MockRecognizer struct {
	mock.Mock

	mu    sync.Mutex
	calls []asr.Audio
}

// NewMockRecognizer creates a mock bound to t
func NewMockRecognizer(t mock.TestingT) *MockRecognizer {
	m := &MockRecognizer{}
	m.Test(t)
	return m
}

// Recognize implements asr.Recognizer
func (m *MockRecognizer) Recognize(ctx context.Context, audio asr.Audio) (*asr.Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, audio)
	m.mu.Unlock()

	args := m.Called(ctx, audio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*asr.Result), args.Error(1)
}

// Name implements asr.Recognizer
func (m *MockRecognizer) Name() string {
	return "mock"
}

// Calls returns the audio passed to Recognize so far
func (m *MockRecognizer) Calls() []asr.Audio {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]asr.Audio(nil), m.calls...)
}

var _ asr.Recognizer = (*MockRecognizer)(nil)
