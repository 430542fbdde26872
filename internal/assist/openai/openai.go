// Package openai implements the assistant client on the OpenAI chat
// completions API. A custom base URL makes it work against any
// OpenAI-compatible endpoint (OpenRouter, Ollama, vLLM).
package openai

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
)

// Client wraps the go-openai chat completions client.
type Client struct {
	client *openai.Client
	model  string
}

// New creates an OpenAI-backed assistant client.
func New(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Name returns the backend identifier.
func (c *Client) Name() string { return "openai" }

// Generate sends the prompt as a single user message and returns the
// assistant's reply.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	text := resp.Choices[0].Message.Content
	slog.Debug("openai generation complete", "model", c.model, "text_length", len(text))
	return text, nil
}
