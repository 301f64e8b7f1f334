package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	_ "speech-search/docs" // Generated swagger docs
	"speech-search/internal/api/middleware"
	"speech-search/internal/api/v1/handlers"
	v1routes "speech-search/internal/api/v1/routes"
	"speech-search/internal/api/v1/services"
	"speech-search/internal/app/logging"
	"speech-search/internal/app/metrics"
	"speech-search/internal/config"
)

// Server represents the API server
type Server struct {
	config     config.ServerConfig
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// Service is what the HTTP surface needs from the application layer
type Service interface {
	services.TranscriptionService
	services.HealthService
}

// NewServer creates a new API server
func NewServer(
	cfg config.ServerConfig,
	service Service,
	recorder *metrics.Recorder,
	logger *zap.Logger,
) *Server {
	logger = logging.OrNop(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	// Apply global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	router.GET("/health", handlers.NewHealthHandler(service).Health)
	if recorder != nil {
		router.GET("/metrics", gin.WrapH(recorder.Handler()))
	}

	container := &v1routes.ServiceContainer{
		TranscriptionService: service,
		Logger:               logger,
		MaxUploadBytes:       cfg.MaxUploadBytes(),
	}

	// Register API routes at the original paths and under /api/v1
	api := router.Group("/api")
	{
		v1routes.RegisterRoutes(api, container)

		v1 := api.Group("/v1")
		v1routes.RegisterRoutes(v1, container)
	}

	// Swagger documentation routes
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":       "Speech Search API",
			"version":       "1.0",
			"documentation": "/swagger/index.html",
			"endpoints": gin.H{
				"health":         "/health",
				"metrics":        "/metrics",
				"transcribe":     "/api/transcribe",
				"search":         "/api/search",
				"transcriptions": "/api/transcriptions",
			},
		})
	})

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		config:     cfg,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Start starts the API server in the background. The returned channel
// receives the listener error, if any, and is closed when serving stops.
func (s *Server) Start() <-chan error {
	s.logger.Info("Starting API server",
		zap.String("host", s.config.Host),
		zap.String("port", s.config.Port),
		zap.String("environment", s.config.Environment),
	)

	errs := make(chan error, 1)
	go func() {
		defer close(errs)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Failed to start server", zap.Error(err))
			errs <- err
		}
	}()

	s.logger.Info("API server started", zap.String("address", s.httpServer.Addr))
	return errs
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")

	if s.config.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("API server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
