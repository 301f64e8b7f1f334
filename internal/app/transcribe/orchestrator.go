package transcribe

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"speech-search/internal/app/api/asr"
	"speech-search/internal/app/errors"
	"speech-search/internal/app/logging"
	"speech-search/internal/app/metrics"
	"speech-search/internal/app/model"
	"speech-search/internal/app/repository"
)

// DefaultLanguage is used when a request names no language
const DefaultLanguage = "english"

// ErrNoAudio is returned for requests without audio bytes
var ErrNoAudio = errors.Input("No audio file provided")

// Config holds orchestrator settings
type Config struct {
	DefaultLanguage string
}

// Request is one transcription request
type Request struct {
	Audio    []byte
	Filename string
	Language string
}

// Outcome is a successful transcription. Record is nil when the service
// returned an empty transcript, which is reported but never stored.
type Outcome struct {
	Transcript string
	TimeTaken  float64
	Language   string
	Record     *model.Transcript
}

// Stored reports whether the outcome produced a stored record
func (o *Outcome) Stored() bool {
	return o.Record != nil
}

// Orchestrator runs a recognizer and stores non-empty transcripts
type Orchestrator struct {
	config     Config
	recognizer asr.Recognizer
	store      repository.TranscriptStore
	metrics    *metrics.Recorder
	logger     *zap.Logger
}

// NewOrchestrator wires a recognizer to a store. recorder and logger may be nil.
func NewOrchestrator(
	config Config,
	recognizer asr.Recognizer,
	store repository.TranscriptStore,
	recorder *metrics.Recorder,
	logger *zap.Logger,
) *Orchestrator {
	if config.DefaultLanguage == "" {
		config.DefaultLanguage = DefaultLanguage
	}
	return &Orchestrator{
		config:     config,
		recognizer: recognizer,
		store:      store,
		metrics:    recorder,
		logger:     logging.OrNop(logger),
	}
}

// Backend names the recognizer in use
func (o *Orchestrator) Backend() string {
	return o.recognizer.Name()
}

// Transcribe sends the audio to the recognizer once and, when the transcript
// is non-empty, inserts exactly one record into the store.
func (o *Orchestrator) Transcribe(ctx context.Context, req Request) (*Outcome, error) {
	backend := o.recognizer.Name()

	if len(req.Audio) == 0 {
		o.metrics.RecordTranscription(backend, "", ErrNoAudio)
		return nil, ErrNoAudio
	}

	language := req.Language
	if language == "" {
		language = o.config.DefaultLanguage
	}

	start := time.Now()
	result, err := o.recognizer.Recognize(ctx, asr.Audio{
		Data:     req.Audio,
		Filename: req.Filename,
		Language: language,
	})
	latency := time.Since(start)
	o.metrics.ObserveASR(backend, latency)

	if err != nil {
		o.logger.Warn("Transcription failed",
			zap.String("backend", backend),
			zap.String("language", language),
			zap.String("kind", string(errors.KindOf(err))),
			zap.Duration("latency", latency),
			zap.Error(err),
		)
		o.metrics.RecordTranscription(backend, "", err)
		return nil, err
	}

	outcome := &Outcome{
		Transcript: result.Transcript,
		TimeTaken:  result.TimeTaken,
		Language:   language,
	}

	if result.Transcript == "" {
		o.logger.Info("Empty transcript returned, nothing stored",
			zap.String("backend", backend),
			zap.String("language", language),
		)
		o.metrics.RecordTranscription(backend, metrics.OutcomeEmpty, nil)
		return outcome, nil
	}

	record, err := o.store.Insert(ctx, result.Transcript, language)
	if err != nil {
		o.logger.Error("Failed to store transcript", zap.Error(err))
		o.metrics.RecordTranscription(backend, "", err)
		return nil, err
	}
	outcome.Record = record

	o.metrics.RecordTranscription(backend, metrics.OutcomeStored, nil)
	if count, err := o.store.Count(ctx); err == nil {
		o.metrics.SetStored(count)
	}

	o.logger.Info("Transcript stored",
		zap.String("id", record.ID),
		zap.String("backend", backend),
		zap.String("language", language),
		zap.Int("chars", len(record.Text)),
		zap.Float64("time_taken", result.TimeTaken),
	)
	return outcome, nil
}

// TranscribeFile reads audio from path and transcribes it
func (o *Orchestrator) TranscribeFile(ctx context.Context, path, language string) (*Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.KindInput, "File %s does not exist", path)
		}
		return nil, errors.Wrap(err, errors.KindInternal, "Failed to read audio file")
	}

	return o.Transcribe(ctx, Request{
		Audio:    data,
		Filename: filepath.Base(path),
		Language: language,
	})
}
