package whisper

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"speech-search/internal/app/api/asr"
	"speech-search/internal/app/errors"
)

// Config configures the OpenAI Whisper recognizer
type Config struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
	// BaseURL overrides the API endpoint, mostly for tests and proxies
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Recognizer transcribes audio with the OpenAI audio transcription API
type Recognizer struct {
	client *openai.Client
	model  string
}

// languageCodes maps the free-form language names accepted by the service
// to the ISO-639-1 codes Whisper expects
var languageCodes = map[string]string{
	"english":   "en",
	"hindi":     "hi",
	"tamil":     "ta",
	"telugu":    "te",
	"kannada":   "kn",
	"malayalam": "ml",
	"marathi":   "mr",
	"bengali":   "bn",
	"gujarati":  "gu",
	"punjabi":   "pa",
	"odia":      "or",
	"urdu":      "ur",
}

// NewRecognizer creates a recognizer from config
func NewRecognizer(config Config) *Recognizer {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: config.Timeout}

	model := config.Model
	if model == "" {
		model = openai.Whisper1
	}

	return &Recognizer{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

// Name implements asr.Recognizer
func (r *Recognizer) Name() string {
	return "openai"
}

// Recognize implements asr.Recognizer
func (r *Recognizer) Recognize(ctx context.Context, audio asr.Audio) (*asr.Result, error) {
	filename := audio.Filename
	if filename == "" {
		filename = "audio.wav"
	}

	start := time.Now()
	resp, err := r.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    r.model,
		FilePath: filename,
		Reader:   bytes.NewReader(audio.Data),
		Language: LanguageCode(audio.Language),
	})
	if err != nil {
		return nil, classify(err)
	}

	return &asr.Result{
		Transcript: strings.TrimSpace(resp.Text),
		TimeTaken:  time.Since(start).Seconds(),
	}, nil
}

// LanguageCode converts a language name to an ISO-639-1 code.
// Unknown names pass through unchanged, lower-cased.
func LanguageCode(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if code, ok := languageCodes[language]; ok {
		return code
	}
	return language
}

func classify(err error) error {
	var apiErr *openai.APIError
	if stderrors.As(err, &apiErr) {
		return errors.Wrap(err, errors.KindTransport, httpErrorMessage(apiErr.HTTPStatusCode))
	}
	var reqErr *openai.RequestError
	if stderrors.As(err, &reqErr) {
		return errors.Wrap(err, errors.KindTransport, httpErrorMessage(reqErr.HTTPStatusCode))
	}
	return errors.Wrap(err, errors.KindTransport, "ASR service unreachable")
}

func httpErrorMessage(status int) string {
	if status == 0 {
		return "ASR service unreachable"
	}
	return fmt.Sprintf("HTTP Error: %d", status)
}

var _ asr.Recognizer = (*Recognizer)(nil)
