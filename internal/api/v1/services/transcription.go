package services

import (
	"context"
	"time"

	"speech-search/internal/api/v1/dto"
	"speech-search/internal/app/metrics"
	"speech-search/internal/app/repository"
	"speech-search/internal/app/search"
	"speech-search/internal/app/transcribe"
)

// TranscriptionServiceImpl implements TranscriptionService and HealthService
type TranscriptionServiceImpl struct {
	orchestrator *transcribe.Orchestrator
	store        repository.TranscriptStore
	engine       *search.Engine
	metrics      *metrics.Recorder
	backend      string
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(
	orchestrator *transcribe.Orchestrator,
	store repository.TranscriptStore,
	engine *search.Engine,
	recorder *metrics.Recorder,
) *TranscriptionServiceImpl {
	return &TranscriptionServiceImpl{
		orchestrator: orchestrator,
		store:        store,
		engine:       engine,
		metrics:      recorder,
		backend:      orchestrator.Backend(),
	}
}

// TranscribeFile transcribes a staged upload and stores a non-empty result
func (s *TranscriptionServiceImpl) TranscribeFile(ctx context.Context, path, language string) (*dto.TranscribeResponse, error) {
	outcome, err := s.orchestrator.TranscribeFile(ctx, path, language)
	if err != nil {
		return nil, err
	}

	response := &dto.TranscribeResponse{
		Status:     dto.StatusSuccess,
		Transcript: outcome.Transcript,
		TimeTaken:  outcome.TimeTaken,
	}
	if outcome.Stored() {
		response.TranscriptionID = outcome.Record.ID
		response.Language = outcome.Record.Language
	}
	return response, nil
}

// GetTranscription returns one stored transcript
func (s *TranscriptionServiceImpl) GetTranscription(ctx context.Context, id string) (*dto.GetTranscriptionResponse, error) {
	record, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.GetTranscriptionResponse{
		Status:                dto.StatusSuccess,
		TranscriptionResponse: dto.ToTranscriptionResponse(*record),
	}, nil
}

// ListTranscriptions returns every stored transcript
func (s *TranscriptionServiceImpl) ListTranscriptions(ctx context.Context) (*dto.ListTranscriptionsResponse, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewListTranscriptionsResponse(records), nil
}

// Search returns the transcripts containing query, ignoring case
func (s *TranscriptionServiceImpl) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	matches, err := s.engine.Search(ctx, query)
	s.metrics.RecordSearch(len(matches), err)
	if err != nil {
		return nil, err
	}
	return dto.NewSearchResponse(search.NormalizeQuery(query), matches), nil
}

// Health reports the configured backend and the number of stored transcripts
func (s *TranscriptionServiceImpl) Health(ctx context.Context) (*dto.HealthResponse, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.SetStored(count)
	return &dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Unix(),
		Backend:   s.backend,
		Stored:    count,
	}, nil
}

var (
	_ TranscriptionService = (*TranscriptionServiceImpl)(nil)
	_ HealthService        = (*TranscriptionServiceImpl)(nil)
)
