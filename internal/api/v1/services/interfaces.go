package services

import (
	"context"

	"speech-search/internal/api/v1/dto"
)

// TranscriptionService defines the operations behind the transcription endpoints
type TranscriptionService interface {
	TranscribeFile(ctx context.Context, path, language string) (*dto.TranscribeResponse, error)
	GetTranscription(ctx context.Context, id string) (*dto.GetTranscriptionResponse, error)
	ListTranscriptions(ctx context.Context) (*dto.ListTranscriptionsResponse, error)
	Search(ctx context.Context, query string) (*dto.SearchResponse, error)
}

// HealthService reports service liveness
type HealthService interface {
	Health(ctx context.Context) (*dto.HealthResponse, error)
}
