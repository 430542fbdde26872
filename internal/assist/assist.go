// Package assist defines the interface to the generative-language capability.
//
// Every assistant-backed feature (tutor, condition explainer, emotion
// classifier) talks to a Client through the shared ratelimit.Gate. The daemon
// ships with two backends: Gemini (cloud) and an OpenAI-compatible client
// that also covers self-hosted chat endpoints.
package assist

import "context"

// Client generates a completion for a single prompt.
type Client interface {
	// Name returns the backend identifier (e.g. "gemini", "openai").
	Name() string

	// Generate sends the prompt and returns the raw response text.
	Generate(ctx context.Context, prompt string) (string, error)
}
