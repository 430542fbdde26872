package explain_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/subrinSheikh/Medical-Language-System/internal/assist"
	"github.com/subrinSheikh/Medical-Language-System/internal/explain"
	"github.com/subrinSheikh/Medical-Language-System/internal/message"
	"github.com/subrinSheikh/Medical-Language-System/internal/ratelimit"
)

func TestParseWellFormed(t *testing.T) {
	got := explain.Parse("WHAT IT COULD MEAN: A\nWHAT TO DO NOW: B\nWHAT NOT TO DO: C")
	want := message.Explanation{WhatItMeans: "A", WhatToDo: "B", WhatNotToDo: "C"}
	if got != want {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestParseNoMarkers(t *testing.T) {
	input := "The model decided to answer free-form instead."
	got := explain.Parse(input)
	want := message.Explanation{WhatItMeans: input}
	if got != want {
		t.Errorf("Parse = %+v, want entire input in WhatItMeans", got)
	}
}

func TestParseMissingLastMarker(t *testing.T) {
	got := explain.Parse("WHAT IT COULD MEAN: A\nWHAT TO DO NOW: B and everything after")
	want := message.Explanation{WhatItMeans: "A", WhatToDo: "B and everything after"}
	if got != want {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestParseMissingMiddleMarker(t *testing.T) {
	// Without the second marker the rest belongs to WhatItMeans, even if
	// the third marker appears later.
	got := explain.Parse("WHAT IT COULD MEAN: A then WHAT NOT TO DO: C")
	want := message.Explanation{WhatItMeans: "A then WHAT NOT TO DO: C"}
	if got != want {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestParseTrimsSections(t *testing.T) {
	got := explain.Parse("WHAT IT COULD MEAN:\n  A  \nWHAT TO DO NOW:\n  B  \nWHAT NOT TO DO:\n  C  \n")
	want := message.Explanation{WhatItMeans: "A", WhatToDo: "B", WhatNotToDo: "C"}
	if got != want {
		t.Errorf("Parse = %+v, want trimmed sections %+v", got, want)
	}
}

func TestExplainParsesAssistantOutput(t *testing.T) {
	client := assist.NewMockClient(
		"WHAT IT COULD MEAN: Possibly dehydration.\n" +
			"WHAT TO DO NOW: Sip water slowly.\n" +
			"WHAT NOT TO DO: Do not take salt tablets.")
	e := explain.New(client, ratelimit.New(time.Millisecond))

	got := e.Explain(context.Background(), "dizzy after exercise")
	if got.WhatItMeans != "Possibly dehydration." ||
		got.WhatToDo != "Sip water slowly." ||
		got.WhatNotToDo != "Do not take salt tablets." {
		t.Errorf("Explain = %+v", got)
	}

	if len(client.Prompts) != 1 || !strings.Contains(client.Prompts[0], `"dizzy after exercise"`) {
		t.Error("prompt must embed the quoted condition text")
	}
}

func TestExplainNotConfigured(t *testing.T) {
	e := explain.New(nil, ratelimit.New(time.Millisecond))
	got := e.Explain(context.Background(), "anything")
	if !strings.Contains(got.WhatItMeans, "not configured") {
		t.Errorf("WhatItMeans = %q, want configuration error text", got.WhatItMeans)
	}
	if got.WhatToDo != "" || got.WhatNotToDo != "" {
		t.Error("degraded explanation must leave the other sections empty")
	}
}

func TestExplainRateLimited(t *testing.T) {
	client := assist.NewMockClient("unused")
	gate := ratelimit.New(time.Hour)
	if !gate.TryAcquire() {
		t.Fatal("priming acquire must be granted")
	}

	e := explain.New(client, gate)
	got := e.Explain(context.Background(), "anything")
	if !strings.Contains(got.WhatItMeans, "wait a few seconds") {
		t.Errorf("WhatItMeans = %q, want wait message", got.WhatItMeans)
	}
	if len(client.Prompts) != 0 {
		t.Error("rate-limited Explain must not call the assistant")
	}
}

func TestExplainBackendErrorEmbedded(t *testing.T) {
	client := &assist.MockClient{Err: errors.New("deadline exceeded")}
	e := explain.New(client, ratelimit.New(time.Millisecond))

	got := e.Explain(context.Background(), "anything")
	if !strings.Contains(got.WhatItMeans, "deadline exceeded") {
		t.Errorf("WhatItMeans = %q, want embedded error", got.WhatItMeans)
	}
}
