// Package gemini implements the assistant client against the Google
// Generative Language API.
//
// It calls the models/{model}:generateContent REST endpoint directly; no
// official Go SDK is pulled in for a single method.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const baseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Client talks to the Gemini generateContent API.
type Client struct {
	apiKey string
	model  string
	client *http.Client
}

// New creates a Gemini client for the given model.
func New(apiKey, model string) *Client {
	if model == "" {
		model = "gemini-flash-lite-latest"
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{},
	}
}

// Name returns the backend identifier.
func (c *Client) Name() string { return "gemini" }

// Generate sends the prompt to the generateContent endpoint and returns the
// first candidate's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshalling request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("generate failed (status %d): %s", resp.StatusCode, respBody)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}

	text := genResp.Candidates[0].Content.Parts[0].Text
	slog.Debug("gemini generation complete", "model", c.model, "text_length", len(text))
	return text, nil
}

// --- Internal wire types ---

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}
