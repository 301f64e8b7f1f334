package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"speech-search/internal/api/v1/dto"
)

// MockServices contains all mock services for handler tests
type MockServices struct {
	TranscriptionService *MockTranscriptionService
	HealthService        *MockHealthService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		TranscriptionService: NewMockTranscriptionService(t),
		HealthService:        NewMockHealthService(t),
	}
}

// MockTranscriptionService is a mock implementation of TranscriptionService
type MockTranscriptionService struct {
	mock.Mock
}

func NewMockTranscriptionService(t *testing.T) *MockTranscriptionService {
	m := &MockTranscriptionService{}
	m.Test(t)
	return m
}

func (m *MockTranscriptionService) TranscribeFile(ctx context.Context, path, language string) (*dto.TranscribeResponse, error) {
	args := m.Called(ctx, path, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscribeResponse), args.Error(1)
}

func (m *MockTranscriptionService) GetTranscription(ctx context.Context, id string) (*dto.GetTranscriptionResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GetTranscriptionResponse), args.Error(1)
}

func (m *MockTranscriptionService) ListTranscriptions(ctx context.Context) (*dto.ListTranscriptionsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTranscriptionsResponse), args.Error(1)
}

func (m *MockTranscriptionService) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SearchResponse), args.Error(1)
}

// MockHealthService is a mock implementation of HealthService
type MockHealthService struct {
	mock.Mock
}

func NewMockHealthService(t *testing.T) *MockHealthService {
	m := &MockHealthService{}
	m.Test(t)
	return m
}

func (m *MockHealthService) Health(ctx context.Context) (*dto.HealthResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.HealthResponse), args.Error(1)
}
