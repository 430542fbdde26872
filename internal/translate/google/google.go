// Package google implements the Translator interface against the public
// Google Translate web endpoint (the same endpoint the gtx web client uses;
// no API key required).
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/subrinSheikh/Medical-Language-System/internal/translate"
)

const endpoint = "https://translate.googleapis.com/translate_a/single"

// Translator calls the Google Translate web endpoint.
type Translator struct {
	client *http.Client
}

// New creates a Google web translator.
func New() *Translator {
	return &Translator{client: &http.Client{}}
}

// Name returns the backend identifier.
func (t *Translator) Name() string { return "google" }

// Translate converts text to the target language, auto-detecting the source.
func (t *Translator) Translate(ctx context.Context, text, targetLabel string) (string, error) {
	q := make(url.Values)
	q.Set("client", "gtx")
	q.Set("sl", "auto")
	q.Set("tl", translate.CodeForLabel(targetLabel))
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("translation failed (status %d): %s", resp.StatusCode, respBody)
	}

	translated, err := parseResponse(resp.Body)
	if err != nil {
		return "", err
	}

	slog.Debug("translation complete", "target", targetLabel, "text_length", len(translated))
	return translated, nil
}

// parseResponse extracts the translated text from the endpoint's nested-array
// response: [[["translated","source",...],...],...]. Each element of the first
// array is one translated segment; segments are concatenated in order.
func parseResponse(r io.Reader) (string, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return "", fmt.Errorf("decoding translation: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("empty translation response")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(raw[0], &segments); err != nil {
		return "", fmt.Errorf("decoding translation segments: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var piece string
		if err := json.Unmarshal(seg[0], &piece); err != nil {
			continue
		}
		sb.WriteString(piece)
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("no translated segments in response")
	}
	return sb.String(), nil
}
