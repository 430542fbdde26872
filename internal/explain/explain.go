// Package explain produces structured three-part explanations of medical
// conditions via the assistant.
//
// The assistant is prompted to emit three labeled sections in a fixed order;
// parsing is a best-effort ordered marker split with deliberately lossy
// fallbacks, so partial or malformed output still yields a renderable
// explanation instead of an error.
package explain

import (
	"context"
	"fmt"
	"strings"

	"github.com/subrinSheikh/Medical-Language-System/internal/assist"
	"github.com/subrinSheikh/Medical-Language-System/internal/message"
	"github.com/subrinSheikh/Medical-Language-System/internal/ratelimit"
)

// The section markers the assistant is instructed to emit, in order.
const (
	MarkerMeans   = "WHAT IT COULD MEAN:"
	MarkerDo      = "WHAT TO DO NOW:"
	MarkerDont    = "WHAT NOT TO DO:"
	notConfigured = "Error: assistant API key not configured."
)

const promptTemplate = `
You are a medical AI assistant. A user has described a medical condition: "%s"

Explain this in simple, clear language. Structure your response in three sections:

1. WHAT IT COULD MEAN: Explain what this condition/symptom might indicate in simple terms (2-3 sentences)

2. WHAT TO DO NOW: Provide immediate actionable steps the person should take (3-4 bullet points)

3. WHAT NOT TO DO: List things they should avoid doing (2-3 bullet points)

IMPORTANT:
- DO NOT diagnose or provide specific medical diagnosis
- Use simple, non-technical language
- Be empathetic and clear
- Focus on general guidance, not specific treatment

Format your response exactly as:
WHAT IT COULD MEAN: [explanation]
WHAT TO DO NOW: [steps]
WHAT NOT TO DO: [warnings]
`

// Explainer produces condition explanations through the gated assistant.
type Explainer struct {
	client assist.Client // nil when the assistant is not configured
	gate   *ratelimit.Gate
}

// New creates a condition explainer.
func New(client assist.Client, gate *ratelimit.Gate) *Explainer {
	return &Explainer{client: client, gate: gate}
}

// Explain describes the condition in three sections. It never fails: every
// degraded state is encoded in the WhatItMeans field with the other two
// sections left empty.
func (e *Explainer) Explain(ctx context.Context, condition string) message.Explanation {
	if e.client == nil {
		return message.Explanation{WhatItMeans: notConfigured}
	}
	if !e.gate.TryAcquire() {
		return message.Explanation{WhatItMeans: "Please wait a few seconds before asking again."}
	}

	resp, err := e.client.Generate(ctx, fmt.Sprintf(promptTemplate, condition))
	if err != nil {
		return message.Explanation{WhatItMeans: fmt.Sprintf("Error: %v", err)}
	}

	return Parse(strings.TrimSpace(resp))
}

// Parse splits the assistant's response into the three labeled sections.
//
// Each marker is located as a literal substring; the text between successive
// markers becomes the corresponding field. When a later marker is absent the
// remaining text is assigned entirely to the field in progress, and when the
// first marker is absent the whole response lands in WhatItMeans. Tests and
// fixtures depend on these exact fallbacks.
func Parse(text string) message.Explanation {
	var out message.Explanation

	_, rest, found := strings.Cut(text, MarkerMeans)
	if !found {
		out.WhatItMeans = text
		return out
	}

	means, rest, found := strings.Cut(rest, MarkerDo)
	if !found {
		out.WhatItMeans = strings.TrimSpace(means)
		return out
	}
	out.WhatItMeans = strings.TrimSpace(means)

	do, dont, found := strings.Cut(rest, MarkerDont)
	if !found {
		out.WhatToDo = strings.TrimSpace(do)
		return out
	}
	out.WhatToDo = strings.TrimSpace(do)
	out.WhatNotToDo = strings.TrimSpace(dont)
	return out
}
