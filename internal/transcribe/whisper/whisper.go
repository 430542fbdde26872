// Package whisper implements the Transcriber interface against
// Whisper-compatible HTTP endpoints.
//
// Two endpoint flavors are supported:
//   - "openai": OpenAI-compatible transcriptions API (api.openai.com,
//     whisper.cpp server, faster-whisper)
//   - "asr":    ahmetoner/whisper-asr-webservice (POST /asr with query params)
package whisper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/subrinSheikh/Medical-Language-System/internal/config"
	"github.com/subrinSheikh/Medical-Language-System/internal/transcribe"
)

// Transcriber sends audio to a Whisper-compatible HTTP endpoint.
type Transcriber struct {
	endpoint string
	flavor   string // "openai" or "asr"
	model    string
	client   *http.Client
}

// New creates a whisper transcriber from config.
func New(cfg config.TranscriberConfig) *Transcriber {
	flavor := cfg.Type
	if flavor == "" {
		flavor = "openai"
	}
	return &Transcriber{
		endpoint: cfg.Endpoint,
		flavor:   flavor,
		model:    cfg.Model,
		client:   &http.Client{},
	}
}

// Name returns the backend identifier.
func (t *Transcriber) Name() string { return "whisper" }

// Transcribe converts audio bytes to recognized text.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte, contentType string, opts transcribe.Opts) (string, error) {
	switch t.flavor {
	case "asr":
		return t.transcribeASR(ctx, audio, contentType, opts)
	default:
		return t.transcribeOpenAI(ctx, audio, contentType, opts)
	}
}

// transcribeASR handles the ahmetoner/whisper-asr-webservice format.
// API: POST /asr?task=transcribe&language=en&output=json
// Body: multipart/form-data with field "audio_file"
func (t *Transcriber) transcribeASR(ctx context.Context, audio []byte, contentType string, opts transcribe.Opts) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	ext := extFromContentType(contentType)
	part, err := writer.CreateFormFile("audio_file", "audio"+ext)
	if err != nil {
		return "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(audio)); err != nil {
		return "", fmt.Errorf("writing audio: %w", err)
	}
	writer.Close()

	q := make(url.Values)
	q.Set("task", "transcribe")
	q.Set("output", "json")
	q.Set("encode", "true")
	if opts.Language != "" {
		q.Set("language", opts.Language)
	}
	if opts.Prompt != "" {
		q.Set("initial_prompt", opts.Prompt)
	}

	reqURL := t.endpoint + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("asr transcription request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("asr transcription failed (status %d): %s", resp.StatusCode, respBody)
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding asr response: %w", err)
	}

	slog.Debug("asr transcription complete", "text_length", len(result.Text))
	return strings.TrimSpace(result.Text), nil
}

// transcribeOpenAI handles OpenAI-compatible whisper endpoints.
func (t *Transcriber) transcribeOpenAI(ctx context.Context, audio []byte, contentType string, opts transcribe.Opts) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	ext := extFromContentType(contentType)
	part, err := writer.CreateFormFile("file", "audio"+ext)
	if err != nil {
		return "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(audio)); err != nil {
		return "", fmt.Errorf("writing audio: %w", err)
	}

	if t.model != "" {
		_ = writer.WriteField("model", t.model)
	}
	if opts.Language != "" {
		_ = writer.WriteField("language", opts.Language)
	}
	if opts.Prompt != "" {
		_ = writer.WriteField("prompt", opts.Prompt)
	}
	_ = writer.WriteField("response_format", "json")
	writer.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("transcription failed (status %d): %s", resp.StatusCode, respBody)
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding transcription: %w", err)
	}

	slog.Debug("transcription complete", "text_length", len(result.Text))
	return strings.TrimSpace(result.Text), nil
}

func extFromContentType(ct string) string {
	switch {
	case strings.Contains(ct, "wav"):
		return ".wav"
	case strings.Contains(ct, "ogg"):
		return ".ogg"
	case strings.Contains(ct, "mp3"), strings.Contains(ct, "mpeg"):
		return ".mp3"
	case strings.Contains(ct, "flac"):
		return ".flac"
	case strings.Contains(ct, "webm"):
		return ".webm"
	case strings.Contains(ct, "m4a"):
		return ".m4a"
	default:
		return ".wav"
	}
}
