package batch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"speech-search/internal/app/logging"
	"speech-search/internal/app/transcribe"
)

// Transcriber is the part of the orchestrator a batch needs
type Transcriber interface {
	TranscribeFile(ctx context.Context, path, language string) (*transcribe.Outcome, error)
}

// Item is the result of transcribing one file. Exactly one of Outcome and Err is set.
type Item struct {
	Path    string
	Outcome *transcribe.Outcome
	Err     error
}

// Stored reports whether the file produced a stored transcript
func (i Item) Stored() bool {
	return i.Err == nil && i.Outcome != nil && i.Outcome.Stored()
}

// Summary counts batch results
type Summary struct {
	Total  int
	Stored int
	Empty  int
	Failed int
}

// Summarize counts stored, empty and failed items
func Summarize(items []Item) Summary {
	summary := Summary{Total: len(items)}
	for _, item := range items {
		switch {
		case item.Err != nil:
			summary.Failed++
		case item.Stored():
			summary.Stored++
		default:
			summary.Empty++
		}
	}
	return summary
}

// Runner transcribes files with bounded parallelism
type Runner struct {
	transcriber Transcriber
	progress    *ProgressManager
	logger      *zap.Logger
}

// NewRunner creates a runner. progress and logger may be nil.
func NewRunner(transcriber Transcriber, progress *ProgressManager, logger *zap.Logger) *Runner {
	if progress == nil {
		progress = NewProgressManager(ProgressConfig{})
	}
	return &Runner{
		transcriber: transcriber,
		progress:    progress,
		logger:      logging.OrNop(logger),
	}
}

// Run transcribes every path, at most parallel at a time, and returns one
// item per path in input order. Failures are recorded per item; Run only
// returns early when ctx is cancelled, leaving unstarted items with ctx.Err().
func (r *Runner) Run(ctx context.Context, paths []string, language string, parallel int) []Item {
	items := make([]Item, len(paths))
	if len(paths) == 0 {
		return items
	}
	if parallel < 1 {
		parallel = 1
	}

	bar := r.progress.CreateBar(len(paths), "Transcribing")
	defer r.progress.Wait()

	var wg sync.WaitGroup
	sem := make(chan struct{}, parallel)

	for i, path := range paths {
		items[i].Path = path

		if !acquire(ctx, sem) {
			for j := i; j < len(paths); j++ {
				items[j] = Item{Path: paths[j], Err: ctx.Err()}
			}
			wg.Wait()
			bar.Abort()
			return items
		}

		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()

			start := time.Now()
			outcome, err := r.transcriber.TranscribeFile(ctx, path, language)
			items[i].Outcome, items[i].Err = outcome, err
			bar.Increment(time.Since(start))

			name := filepath.Base(path)
			switch {
			case err != nil:
				r.logger.Warn("Failed to transcribe file", zap.String("file", name), zap.Error(err))
			case outcome.Stored():
				r.logger.Info("Transcribed file", zap.String("file", name), zap.String("id", outcome.Record.ID))
			default:
				r.logger.Info("Empty transcript", zap.String("file", name))
			}
		}(i, path)
	}

	wg.Wait()
	return items
}

// acquire takes a semaphore slot unless ctx is done first
func acquire(ctx context.Context, sem chan struct{}) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case sem <- struct{}{}:
		return true
	case <-ctx.Done():
		return false
	}
}
