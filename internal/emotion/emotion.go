// Package emotion classifies the coarse emotion of translator input.
//
// The label is used for two things only: deciding emergency framing for the
// spoken translation, and display. It shares the assistant capability and the
// process-wide cooldown gate with the tutor and explainer; any failure
// degrades to "neutral", a safe non-emergency default.
package emotion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/subrinSheikh/Medical-Language-System/internal/assist"
	"github.com/subrinSheikh/Medical-Language-System/internal/ratelimit"
)

// The documented label set. The model is instructed to reply with exactly
// one of these; off-list replies are recorded as-is and treated as
// non-urgent.
const (
	Happy   = "happy"
	Sad     = "sad"
	Anxious = "anxious"
	Urgent  = "urgent"
	Calm    = "calm"
	Excited = "excited"
	Neutral = "neutral"
)

const promptTemplate = `Detect the emotion of the following medical text.

Reply with ONLY one word from:
happy, sad, anxious, urgent, calm, excited, neutral

Text:
%s
`

// IsUrgent reports whether a label triggers emergency framing.
func IsUrgent(label string) bool {
	return label == Urgent || label == Anxious
}

// Classifier maps text to an emotion label via the assistant.
type Classifier struct {
	client assist.Client // nil when the assistant is not configured
	gate   *ratelimit.Gate
}

// New creates an emotion classifier. A nil client is allowed and makes every
// classification return Neutral.
func New(client assist.Client, gate *ratelimit.Gate) *Classifier {
	return &Classifier{client: client, gate: gate}
}

// Classify returns the emotion label for text. It never fails: an
// unconfigured assistant, a rate-limit denial, or an underlying error all
// yield Neutral.
func (c *Classifier) Classify(ctx context.Context, text string) string {
	if c.client == nil {
		return Neutral
	}
	if !c.gate.TryAcquire() {
		return Neutral
	}

	resp, err := c.client.Generate(ctx, fmt.Sprintf(promptTemplate, text))
	if err != nil {
		slog.Warn("emotion classification failed, defaulting to neutral", "error", err)
		return Neutral
	}

	return strings.ToLower(strings.TrimSpace(resp))
}
