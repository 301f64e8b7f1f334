package test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"speech-search/internal/api/middleware"
	"speech-search/internal/api/v1/dto"
	"speech-search/internal/api/v1/handlers"
	apperrors "speech-search/internal/app/errors"
	"speech-search/internal/app/testutil"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *testutil.MockServices) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	mockServices := testutil.NewMockServices(t)
	return router, mockServices
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func uploadRequest(t *testing.T, audio []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if audio != nil {
		part, err := writer.CreateFormFile("audio_file", "clip.mp3")
		require.NoError(t, err)
		_, err = part.Write(audio)
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestTranscriptionHandler_Transcribe(t *testing.T) {
	audio := []byte("RIFF....WAVEfmt ")

	tests := []struct {
		name           string
		request        func(t *testing.T) *http.Request
		setupMocks     func(*testutil.MockServices)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name: "stored transcript",
			request: func(t *testing.T) *http.Request {
				return uploadRequest(t, audio, map[string]string{"language": "hindi"})
			},
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("TranscribeFile", mock.Anything, mock.MatchedBy(func(path string) bool {
					data, err := os.ReadFile(path)
					return err == nil && bytes.Equal(data, audio)
				}), "hindi").Return(&dto.TranscribeResponse{
					Status:          dto.StatusSuccess,
					Transcript:      "namaste",
					TimeTaken:       0.8,
					TranscriptionID: "id-1",
					Language:        "hindi",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "success", body["status"])
				assert.Equal(t, "namaste", body["transcript"])
				assert.Equal(t, "id-1", body["transcription_id"])
				assert.Equal(t, "hindi", body["language"])
			},
		},
		{
			name: "language omitted is passed through empty",
			request: func(t *testing.T) *http.Request {
				return uploadRequest(t, audio, nil)
			},
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("TranscribeFile", mock.Anything, mock.Anything, "").
					Return(&dto.TranscribeResponse{Status: dto.StatusSuccess, Transcript: "", TimeTaken: 0.1}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "", body["transcript"])
				assert.NotContains(t, body, "transcription_id")
				assert.NotContains(t, body, "language")
			},
		},
		{
			name: "missing audio file",
			request: func(t *testing.T) *http.Request {
				return uploadRequest(t, nil, map[string]string{"language": "english"})
			},
			setupMocks:     func(ms *testutil.MockServices) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "error", body["status"])
				assert.Equal(t, "No audio file provided", body["message"])
			},
		},
		{
			name: "audio field sent as text",
			request: func(t *testing.T) *http.Request {
				return uploadRequest(t, nil, map[string]string{"audio_file": "not-a-file"})
			},
			setupMocks:     func(ms *testutil.MockServices) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "input", body["kind"])
				assert.Equal(t, "No audio file provided", body["message"])
			},
		},
		{
			name: "not multipart",
			request: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/transcribe", nil)
			},
			setupMocks:     func(ms *testutil.MockServices) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "No audio file provided", body["message"])
			},
		},
		{
			name: "asr http error",
			request: func(t *testing.T) *http.Request {
				return uploadRequest(t, audio, nil)
			},
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("TranscribeFile", mock.Anything, mock.Anything, "").
					Return(nil, apperrors.Newf(apperrors.KindTransport, "HTTP Error: %d", 500))
			},
			expectedStatus: http.StatusBadGateway,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "transport", body["kind"])
				assert.Equal(t, "HTTP Error: 500", body["message"])
			},
		},
		{
			name: "asr declined",
			request: func(t *testing.T) *http.Request {
				return uploadRequest(t, audio, nil)
			},
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("TranscribeFile", mock.Anything, mock.Anything, "").
					Return(nil, apperrors.New(apperrors.KindCollaborator, "Unknown API error"))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "collaborator", body["kind"])
				assert.Equal(t, "Unknown API error", body["message"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewTranscriptionHandler(mockServices.TranscriptionService, nil)
			router.POST("/api/transcribe", handler.Transcribe)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, tt.request(t))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.validateBody(t, decodeBody(t, rec))
			mockServices.TranscriptionService.AssertExpectations(t)
		})
	}
}

func TestTranscriptionHandler_TranscribeRemovesTempFile(t *testing.T) {
	router, mockServices := setupTestRouter(t)

	var staged string
	mockServices.TranscriptionService.On("TranscribeFile", mock.Anything, mock.Anything, "english").
		Run(func(args mock.Arguments) {
			staged = args.String(1)
			_, err := os.Stat(staged)
			assert.NoError(t, err, "upload should be staged while transcribing")
		}).
		Return(&dto.TranscribeResponse{Status: dto.StatusSuccess, Transcript: "hi"}, nil)

	handler := handlers.NewTranscriptionHandler(mockServices.TranscriptionService, nil)
	router.POST("/api/transcribe", handler.Transcribe)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, []byte("audio"), map[string]string{"language": "english"}))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, staged)
	_, err := os.Stat(staged)
	assert.True(t, os.IsNotExist(err))
}

func TestTranscriptionHandler_Search(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMocks     func(*testutil.MockServices)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name: "matches",
			url:  "/api/search?q=WORLD",
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("Search", mock.Anything, "WORLD").Return(&dto.SearchResponse{
					Status: dto.StatusSuccess,
					Query:  "world",
					Count:  1,
					Results: []dto.TranscriptionResponse{
						{ID: "a", Text: "Hello World", Timestamp: "2024-05-01 10:00:00", Language: "english"},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "world", body["query"])
				assert.Equal(t, float64(1), body["count"])
				results := body["results"].([]interface{})
				assert.Equal(t, "Hello World", results[0].(map[string]interface{})["text"])
			},
		},
		{
			name: "missing query",
			url:  "/api/search",
			setupMocks: func(ms *testutil.MockServices) {
				ms.TranscriptionService.On("Search", mock.Anything, "").
					Return(nil, apperrors.Input("No search query provided"))
			},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "error", body["status"])
				assert.Equal(t, "No search query provided", body["message"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewTranscriptionHandler(mockServices.TranscriptionService, nil)
			router.GET("/api/search", handler.Search)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.validateBody(t, decodeBody(t, rec))
		})
	}
}

func TestTranscriptionHandler_Get(t *testing.T) {
	router, mockServices := setupTestRouter(t)
	mockServices.TranscriptionService.On("GetTranscription", mock.Anything, "known").Return(&dto.GetTranscriptionResponse{
		Status:                dto.StatusSuccess,
		TranscriptionResponse: dto.TranscriptionResponse{ID: "known", Text: "hello", Timestamp: "2024-05-01 10:00:00", Language: "english"},
	}, nil)
	mockServices.TranscriptionService.On("GetTranscription", mock.Anything, "unknown").
		Return(nil, apperrors.NotFound("Transcription not found"))

	handler := handlers.NewTranscriptionHandler(mockServices.TranscriptionService, nil)
	router.GET("/api/transcriptions/:id", handler.Get)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transcriptions/known", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "known", body["id"])
	assert.Equal(t, "hello", body["text"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transcriptions/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Transcription not found", body["message"])
	assert.NotEmpty(t, body["request_id"])
}

func TestTranscriptionHandler_List(t *testing.T) {
	router, mockServices := setupTestRouter(t)
	mockServices.TranscriptionService.On("ListTranscriptions", mock.Anything).
		Return(dto.NewListTranscriptionsResponse(nil), nil).Once()
	mockServices.TranscriptionService.On("ListTranscriptions", mock.Anything).
		Return(nil, stderrors.New("database is locked")).Once()

	handler := handlers.NewTranscriptionHandler(mockServices.TranscriptionService, nil)
	router.GET("/api/transcriptions", handler.List)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transcriptions", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","count":0,"results":[]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transcriptions", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "database is locked")
}

func TestHealthHandler(t *testing.T) {
	router, mockServices := setupTestRouter(t)
	mockServices.HealthService.On("Health", mock.Anything).
		Return(&dto.HealthResponse{Status: "healthy", Timestamp: 1714557600, Backend: "iitm", Stored: 2}, nil)

	router.GET("/health", handlers.NewHealthHandler(mockServices.HealthService).Health)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(2), body["stored_transcripts"])
}
