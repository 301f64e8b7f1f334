package handlers

import (
	"context"
	stderrors "errors"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"speech-search/internal/api/middleware"
	"speech-search/internal/api/v1/dto"
	"speech-search/internal/api/v1/services"
	"speech-search/internal/app/logging"
	"speech-search/internal/app/transcribe"
)

// TranscriptionHandler handles transcription-related API endpoints
type TranscriptionHandler struct {
	service services.TranscriptionService
	logger  *zap.Logger
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService, logger *zap.Logger) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
		logger:  logging.OrNop(logger),
	}
}

// Transcribe handles POST /api/transcribe
// Stages the uploaded audio in a temporary file and transcribes it
//
// @Summary Transcribe uploaded audio
// @Description Sends the audio to the ASR service and stores the transcript when it is non-empty. transcription_id and language are only present when a transcript was stored.
// @Tags transcriptions
// @Accept multipart/form-data
// @Produce json
// @Param audio_file formData file true "Audio file to transcribe"
// @Param language formData string false "Language of the audio" default(english)
// @Success 200 {object} dto.TranscribeResponse "Transcription result"
// @Failure 400 {object} errors.APIError "No audio file provided"
// @Failure 422 {object} errors.APIError "ASR service declined the audio"
// @Failure 502 {object} errors.APIError "ASR service unreachable or returned an HTTP error"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcribe [post]
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	var req dto.TranscribeRequest
	if err := middleware.ValidateForm(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	file, err := c.FormFile(dto.AudioFileField)
	if err != nil {
		// a plain text field under the same name is not an upload either
		if stderrors.Is(err, http.ErrMissingFile) || stderrors.Is(err, http.ErrNotMultipart) {
			err = transcribe.ErrNoAudio
		}
		middleware.HandleError(c, err)
		return
	}

	path, err := h.stage(c, file)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	defer h.cleanup(c, path)

	// a client disconnect must not abort a transcription already in flight
	ctx := context.WithoutCancel(c.Request.Context())

	response, err := h.service.TranscribeFile(ctx, path, req.Language)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *TranscriptionHandler) stage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	tmp, err := os.CreateTemp("", "speech-search-*.wav")
	if err != nil {
		return "", err
	}
	path := tmp.Name()
	tmp.Close()

	if err := c.SaveUploadedFile(file, path); err != nil {
		h.cleanup(c, path)
		return "", err
	}
	return path, nil
}

func (h *TranscriptionHandler) cleanup(c *gin.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		h.logger.Warn("Failed to remove temporary upload",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", path),
			zap.Error(err),
		)
	}
}

// Search handles GET /api/search
//
// @Summary Search stored transcriptions
// @Description Case-insensitive substring search over every stored transcript. The response echoes the lower-cased query.
// @Tags transcriptions
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} dto.SearchResponse "Matching transcriptions"
// @Failure 400 {object} errors.APIError "No search query provided"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /search [get]
func (h *TranscriptionHandler) Search(c *gin.Context) {
	var query dto.SearchQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Search(c.Request.Context(), query.Q)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// List handles GET /api/transcriptions
//
// @Summary List transcriptions
// @Description Returns every stored transcript
// @Tags transcriptions
// @Produce json
// @Success 200 {object} dto.ListTranscriptionsResponse "All transcriptions"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcriptions [get]
func (h *TranscriptionHandler) List(c *gin.Context) {
	response, err := h.service.ListTranscriptions(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/transcriptions/:id
//
// @Summary Get transcription by ID
// @Tags transcriptions
// @Produce json
// @Param id path string true "Transcription ID"
// @Success 200 {object} dto.GetTranscriptionResponse "Transcription details"
// @Failure 404 {object} errors.APIError "Transcription not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /transcriptions/{id} [get]
func (h *TranscriptionHandler) Get(c *gin.Context) {
	response, err := h.service.GetTranscription(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
