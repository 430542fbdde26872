// Package tutor answers free-form medical questions via the assistant.
//
// Answer never fails: configuration absence, rate-limit denial, and backend
// errors are all encoded as alternate text payloads so the downstream
// translation and synthesis steps always receive some string.
package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/subrinSheikh/Medical-Language-System/internal/assist"
	"github.com/subrinSheikh/Medical-Language-System/internal/ratelimit"
)

const (
	// NotConfigured is returned when no assistant credential is set.
	NotConfigured = "Error: assistant API key not configured. Please set GEMINI_API_KEY environment variable."

	// PleaseWait is returned on a rate-limit denial.
	PleaseWait = "Please wait a few seconds before asking again."
)

const promptTemplate = `
You are a medical AI tutor.
Answer clearly and simply.
DO NOT diagnose.
Question: %s
`

// Assistant answers questions through the gated generative capability.
type Assistant struct {
	client assist.Client // nil when the assistant is not configured
	gate   *ratelimit.Gate
}

// New creates a tutor assistant.
func New(client assist.Client, gate *ratelimit.Gate) *Assistant {
	return &Assistant{client: client, gate: gate}
}

// Answer responds to a medical question in plain English.
func (a *Assistant) Answer(ctx context.Context, question string) string {
	if a.client == nil {
		return NotConfigured
	}
	if !a.gate.TryAcquire() {
		return PleaseWait
	}

	resp, err := a.client.Generate(ctx, fmt.Sprintf(promptTemplate, question))
	if err != nil {
		return fmt.Sprintf("Error generating AI tutor response: %v", err)
	}
	return strings.TrimSpace(resp)
}
