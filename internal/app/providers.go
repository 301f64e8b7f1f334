package app

import (
	"fmt"

	"github.com/google/wire"
	"go.uber.org/zap"
	"speech-search/internal/api/server"
	"speech-search/internal/api/v1/services"
	"speech-search/internal/app/api/asr"
	"speech-search/internal/app/api/openai/whisper"
	"speech-search/internal/app/batch"
	"speech-search/internal/app/logging"
	"speech-search/internal/app/metrics"
	"speech-search/internal/app/repository"
	"speech-search/internal/app/repository/memory"
	"speech-search/internal/app/repository/sqlite"
	"speech-search/internal/app/search"
	"speech-search/internal/app/transcribe"
	"speech-search/internal/config"
)

// Batch bundles what the transcribe command needs
type Batch struct {
	Runner *batch.Runner
	Engine *search.Engine
	Store  repository.TranscriptStore
}

func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	logger, err := logging.New(cfg.Log.Development)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

// provideStore opens the configured store; the cleanup closes it
func provideStore(cfg *config.Config, logger *zap.Logger) (repository.TranscriptStore, func(), error) {
	var store repository.TranscriptStore
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.Store.DSN)
		if err != nil {
			return nil, nil, err
		}
		store = s
	case config.DriverMemory, "":
		store = memory.NewStore()
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	logger.Info("Transcript store ready", zap.String("driver", cfg.Store.Driver))
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("Failed to close transcript store", zap.Error(err))
		}
	}, nil
}

func provideRecognizer(cfg *config.Config) (asr.Recognizer, error) {
	switch cfg.ASR.Backend {
	case config.BackendIITM, "":
		return asr.NewClient(asr.ClientConfig{
			URL:           cfg.ASR.URL,
			Timeout:       cfg.ASR.Timeout,
			CustomHeaders: cfg.ASR.CustomHeaders,
		}), nil
	case config.BackendOpenAI:
		return whisper.NewRecognizer(whisper.Config{
			APIKey:  cfg.ASR.OpenAIAPIKey,
			Model:   cfg.ASR.OpenAIModel,
			BaseURL: cfg.ASR.OpenAIBaseURL,
			Timeout: cfg.ASR.Timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown asr backend %q", cfg.ASR.Backend)
	}
}

func provideOrchestratorConfig(cfg *config.Config) transcribe.Config {
	return transcribe.Config{DefaultLanguage: cfg.ASR.DefaultLanguage}
}

func provideServerConfig(cfg *config.Config) config.ServerConfig {
	return cfg.Server
}

func provideProgressRunner(orchestrator *transcribe.Orchestrator, progress *batch.ProgressManager, logger *zap.Logger) *batch.Runner {
	return batch.NewRunner(orchestrator, progress, logger)
}

var coreSet = wire.NewSet(
	provideLogger,
	provideStore,
	provideRecognizer,
	provideOrchestratorConfig,
	metrics.NewRecorder,
	transcribe.NewOrchestrator,
	search.NewEngine,
)

var serverSet = wire.NewSet(
	coreSet,
	provideServerConfig,
	services.NewTranscriptionService,
	wire.Bind(new(server.Service), new(*services.TranscriptionServiceImpl)),
	server.NewServer,
)

var batchSet = wire.NewSet(
	coreSet,
	provideProgressRunner,
	wire.Struct(new(Batch), "*"),
)
