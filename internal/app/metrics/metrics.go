package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"speech-search/internal/app/errors"
)

const namespace = "speech_search"

// Transcription outcomes
const (
	OutcomeStored = "stored"
	OutcomeEmpty  = "empty"
)

// Recorder owns the service's Prometheus collectors. A nil *Recorder is
// valid and records nothing.
type Recorder struct {
	registry       *prometheus.Registry
	transcriptions *prometheus.CounterVec
	asrLatency     *prometheus.HistogramVec
	searches       *prometheus.CounterVec
	stored         prometheus.Gauge
}

// NewRecorder creates a recorder with its own registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		transcriptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcriptions_total",
			Help:      "Transcription requests by ASR backend and outcome.",
		}, []string{"backend", "outcome"}),
		asrLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "asr_request_duration_seconds",
			Help:      "Latency of calls to the ASR service.",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"backend"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Search queries by result.",
		}, []string{"result"}),
		stored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stored_transcripts",
			Help:      "Transcripts currently held in the store.",
		}),
	}

	r.registry.MustRegister(
		r.transcriptions,
		r.asrLatency,
		r.searches,
		r.stored,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// ObserveASR records the latency of one ASR call
func (r *Recorder) ObserveASR(backend string, latency time.Duration) {
	if r == nil {
		return
	}
	r.asrLatency.WithLabelValues(backend).Observe(latency.Seconds())
}

// RecordTranscription counts one transcription. err selects the outcome
// label when non-nil; otherwise outcome is used.
func (r *Recorder) RecordTranscription(backend, outcome string, err error) {
	if r == nil {
		return
	}
	if err != nil {
		outcome = string(errors.KindOf(err)) + "_error"
	}
	r.transcriptions.WithLabelValues(backend, outcome).Inc()
}

// SetStored sets the stored transcripts gauge
func (r *Recorder) SetStored(count int) {
	if r == nil {
		return
	}
	r.stored.Set(float64(count))
}

// RecordSearch counts one search as hit, miss or rejected
func (r *Recorder) RecordSearch(matches int, err error) {
	if r == nil {
		return
	}
	result := "hit"
	switch {
	case err != nil:
		result = "rejected"
	case matches == 0:
		result = "miss"
	}
	r.searches.WithLabelValues(result).Inc()
}
