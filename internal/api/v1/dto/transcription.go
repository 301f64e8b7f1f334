package dto

import (
	"github.com/samber/lo"
	"speech-search/internal/app/model"
)

// StatusSuccess is the value of the status field in every success body
const StatusSuccess = "success"

// AudioFileField is the multipart file part carrying the audio
const AudioFileField = "audio_file"

// TranscribeRequest holds the transcribe endpoint's form fields. The audio
// itself is read from the AudioFileField file part.
type TranscribeRequest struct {
	Language string `form:"language"`
}

// TranscribeResponse reports one transcription. TranscriptionID and Language
// are present only when a non-empty transcript was stored.
type TranscribeResponse struct {
	Status          string  `json:"status" example:"success"`
	Transcript      string  `json:"transcript" example:"hello world"`
	TimeTaken       float64 `json:"time_taken" example:"1.2"`
	TranscriptionID string  `json:"transcription_id,omitempty" example:"9b2c7a4e-6f0e-4a55-8f43-3f1f3c1f0d2a"`
	Language        string  `json:"language,omitempty" example:"english"`
}

// TranscriptionResponse is a stored transcript as returned by the API
type TranscriptionResponse struct {
	ID        string `json:"id" example:"9b2c7a4e-6f0e-4a55-8f43-3f1f3c1f0d2a"`
	Text      string `json:"text" example:"hello world"`
	Timestamp string `json:"timestamp" example:"2024-05-01 10:00:00"`
	Language  string `json:"language" example:"english"`
}

// GetTranscriptionResponse wraps a single transcript
type GetTranscriptionResponse struct {
	Status string `json:"status" example:"success"`
	TranscriptionResponse
}

// ListTranscriptionsResponse lists every stored transcript
type ListTranscriptionsResponse struct {
	Status  string                  `json:"status" example:"success"`
	Count   int                     `json:"count" example:"1"`
	Results []TranscriptionResponse `json:"results"`
}

// SearchQuery holds the search endpoint's query parameters
type SearchQuery struct {
	Q string `form:"q"`
}

// SearchResponse lists the transcripts matching Query
type SearchResponse struct {
	Status  string                  `json:"status" example:"success"`
	Query   string                  `json:"query" example:"world"`
	Count   int                     `json:"count" example:"1"`
	Results []TranscriptionResponse `json:"results"`
}

// ToTranscriptionResponse converts a model to response DTO
func ToTranscriptionResponse(t model.Transcript) TranscriptionResponse {
	return TranscriptionResponse{
		ID:        t.ID,
		Text:      t.Text,
		Timestamp: t.Timestamp(),
		Language:  t.Language,
	}
}

// ToTranscriptionResponses converts models to response DTOs, never returning nil
func ToTranscriptionResponses(transcripts []model.Transcript) []TranscriptionResponse {
	if len(transcripts) == 0 {
		return []TranscriptionResponse{}
	}
	return lo.Map(transcripts, func(t model.Transcript, _ int) TranscriptionResponse {
		return ToTranscriptionResponse(t)
	})
}

// NewListTranscriptionsResponse builds the list body
func NewListTranscriptionsResponse(transcripts []model.Transcript) *ListTranscriptionsResponse {
	results := ToTranscriptionResponses(transcripts)
	return &ListTranscriptionsResponse{
		Status:  StatusSuccess,
		Count:   len(results),
		Results: results,
	}
}

// NewSearchResponse builds the search body for an already normalized query
func NewSearchResponse(query string, transcripts []model.Transcript) *SearchResponse {
	results := ToTranscriptionResponses(transcripts)
	return &SearchResponse{
		Status:  StatusSuccess,
		Query:   query,
		Count:   len(results),
		Results: results,
	}
}
