package asr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"speech-search/internal/app/errors"
)

// DefaultURL is the decode endpoint of the IIT Madras ASR service
const DefaultURL = "https://asr.iitm.ac.in/internal/asr/decode"

const (
	statusSuccess      = "success"
	defaultFilename    = "audio.wav"
	unknownErrorReason = "Unknown API error"
)

// ClientConfig configures the multipart ASR client
type ClientConfig struct {
	URL string `yaml:"url"`
	// Timeout of zero means the request waits until the service answers
	Timeout       time.Duration     `yaml:"timeout"`
	CustomHeaders map[string]string `yaml:"custom_headers"`
}

// Client posts audio as multipart form data and decodes a
// {status, transcript, time_taken, reason} JSON answer
type Client struct {
	config ClientConfig
	client *http.Client
}

// decodeResponse is the JSON body returned by the service
type decodeResponse struct {
	Status     string  `json:"status"`
	Transcript string  `json:"transcript"`
	TimeTaken  float64 `json:"time_taken"`
	Reason     string  `json:"reason"`
}

// NewClient creates a client for the configured endpoint
func NewClient(config ClientConfig) *Client {
	if config.URL == "" {
		config.URL = DefaultURL
	}
	if config.CustomHeaders == nil {
		config.CustomHeaders = make(map[string]string)
	}

	return &Client{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Name implements Recognizer
func (c *Client) Name() string {
	return "iitm"
}

// Recognize implements Recognizer
func (c *Client) Recognize(ctx context.Context, audio Audio) (*Result, error) {
	body, contentType, err := createMultipartForm(audio)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to build ASR request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, body)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "failed to build ASR request")
	}
	httpReq.Header.Set("Content-Type", contentType)
	for key, value := range c.config.CustomHeaders {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindTransport, "ASR service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errors.Newf(errors.KindTransport, "HTTP Error: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindTransport, "Failed to read ASR response")
	}

	var decoded decodeResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, errors.Wrap(err, errors.KindTransport, "Invalid response from ASR service")
	}

	if decoded.Status != statusSuccess {
		reason := decoded.Reason
		if reason == "" {
			reason = unknownErrorReason
		}
		return nil, errors.New(errors.KindCollaborator, reason)
	}

	return &Result{
		Transcript: decoded.Transcript,
		TimeTaken:  decoded.TimeTaken,
	}, nil
}

func createMultipartForm(audio Audio) (io.Reader, string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	filename := audio.Filename
	if filename == "" {
		filename = defaultFilename
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(audio.Data); err != nil {
		return nil, "", fmt.Errorf("failed to write audio: %w", err)
	}
	if err := writer.WriteField("language", audio.Language); err != nil {
		return nil, "", fmt.Errorf("failed to write language field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return &body, writer.FormDataContentType(), nil
}

var _ Recognizer = (*Client)(nil)
