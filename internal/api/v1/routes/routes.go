package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"speech-search/internal/api/middleware"
	"speech-search/internal/api/v1/handlers"
	"speech-search/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
	Logger               *zap.Logger
	// MaxUploadBytes caps transcribe request bodies; zero disables the cap
	MaxUploadBytes int64
}

// RegisterRoutes registers the transcription routes on router
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService, container.Logger)

	router.POST("/transcribe", middleware.BodyLimit(container.MaxUploadBytes), transcriptionHandler.Transcribe)
	router.GET("/search", transcriptionHandler.Search)

	transcriptions := router.Group("/transcriptions")
	{
		transcriptions.GET("", transcriptionHandler.List)
		transcriptions.GET("/:id", transcriptionHandler.Get)
	}
}
