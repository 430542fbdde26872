// Package gtts implements the Synthesizer interface against the public
// Google Translate TTS endpoint (the one the gTTS clients use; no API key
// required).
//
// The endpoint caps the text length per request, so longer inputs are split
// into chunks and the returned MP3 frames are concatenated — an MP3 stream
// stays playable across frame boundaries.
package gtts

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/subrinSheikh/Medical-Language-System/internal/speech"
	"github.com/subrinSheikh/Medical-Language-System/internal/translate"
)

const (
	endpoint = "https://translate.google.com/translate_tts"

	// maxChunk is the per-request text limit accepted by the endpoint.
	maxChunk = 200

	// slowSpeed is the ttsspeed value for emergency framing.
	slowSpeed = 0.24
)

// Synthesizer calls the Google Translate TTS endpoint and writes the result
// to a single fixed artifact path.
type Synthesizer struct {
	outputPath string
	client     *http.Client
}

// New creates a gtts synthesizer writing to outputPath.
func New(outputPath string) *Synthesizer {
	return &Synthesizer{
		outputPath: outputPath,
		client:     &http.Client{},
	}
}

// Name returns the backend identifier.
func (s *Synthesizer) Name() string { return "gtts" }

// OutputPath returns the fixed artifact location.
func (s *Synthesizer) OutputPath() string { return s.outputPath }

// Synthesize renders the text as speech and overwrites the artifact.
func (s *Synthesizer) Synthesize(ctx context.Context, text string, opts speech.Opts) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("empty text for synthesis")
	}

	if opts.Urgent {
		text = speech.AlertPrefix + text
	}
	lang := translate.CodeForLabel(opts.Language)

	var audio []byte
	for _, chunk := range chunkText(text, maxChunk) {
		data, err := s.fetchChunk(ctx, chunk, lang, opts.Urgent)
		if err != nil {
			return err
		}
		audio = append(audio, data...)
	}

	if err := os.MkdirAll(filepath.Dir(s.outputPath), 0o755); err != nil {
		return fmt.Errorf("ensure output dir: %w", err)
	}
	if err := os.WriteFile(s.outputPath, audio, 0o644); err != nil {
		return fmt.Errorf("writing audio artifact: %w", err)
	}

	slog.Debug("synthesis complete", "language", lang, "urgent", opts.Urgent,
		"audio_bytes", len(audio), "path", s.outputPath)
	return nil
}

// fetchChunk requests one MP3 segment from the endpoint.
func (s *Synthesizer) fetchChunk(ctx context.Context, text, lang string, slow bool) ([]byte, error) {
	q := make(url.Values)
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", lang)
	q.Set("q", text)
	if slow {
		q.Set("ttsspeed", strconv.FormatFloat(slowSpeed, 'f', -1, 64))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("tts failed (status %d): %s", resp.StatusCode, respBody)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading tts audio: %w", err)
	}
	return data, nil
}

// chunkText splits text into pieces of at most max bytes, preferring to break
// on whitespace so words are not cut mid-syllable.
func chunkText(text string, max int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	var sb strings.Builder
	for _, w := range words {
		if sb.Len() > 0 && sb.Len()+1+len(w) > max {
			chunks = append(chunks, sb.String())
			sb.Reset()
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		// A single word longer than max is emitted as its own chunk.
		sb.WriteString(w)
	}
	if sb.Len() > 0 {
		chunks = append(chunks, sb.String())
	}
	return chunks
}
