package tutor_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/subrinSheikh/Medical-Language-System/internal/assist"
	"github.com/subrinSheikh/Medical-Language-System/internal/ratelimit"
	"github.com/subrinSheikh/Medical-Language-System/internal/tutor"
)

func TestAnswerTrimsResponse(t *testing.T) {
	client := assist.NewMockClient("\n  Drink plenty of fluids and rest.  \n")
	a := tutor.New(client, ratelimit.New(time.Millisecond))

	got := a.Answer(context.Background(), "What helps with a mild fever?")
	if got != "Drink plenty of fluids and rest." {
		t.Errorf("Answer = %q, want trimmed response", got)
	}

	if len(client.Prompts) != 1 {
		t.Fatalf("expected one assistant call, got %d", len(client.Prompts))
	}
	prompt := client.Prompts[0]
	if !strings.Contains(prompt, "DO NOT diagnose") {
		t.Error("prompt must forbid diagnosing")
	}
	if !strings.Contains(prompt, "What helps with a mild fever?") {
		t.Error("prompt must embed the question")
	}
}

func TestAnswerNotConfigured(t *testing.T) {
	a := tutor.New(nil, ratelimit.New(time.Millisecond))
	if got := a.Answer(context.Background(), "anything"); got != tutor.NotConfigured {
		t.Errorf("Answer without a client = %q, want %q", got, tutor.NotConfigured)
	}
}

func TestAnswerRateLimited(t *testing.T) {
	client := assist.NewMockClient("unused")
	gate := ratelimit.New(time.Hour)
	if !gate.TryAcquire() {
		t.Fatal("priming acquire must be granted")
	}

	a := tutor.New(client, gate)
	if got := a.Answer(context.Background(), "anything"); got != tutor.PleaseWait {
		t.Errorf("rate-limited Answer = %q, want %q", got, tutor.PleaseWait)
	}
	if len(client.Prompts) != 0 {
		t.Error("rate-limited Answer must not call the assistant")
	}
}

func TestAnswerEmbedsBackendError(t *testing.T) {
	client := &assist.MockClient{Err: errors.New("model overloaded")}
	a := tutor.New(client, ratelimit.New(time.Millisecond))

	got := a.Answer(context.Background(), "anything")
	if !strings.Contains(got, "model overloaded") {
		t.Errorf("Answer = %q, want error embedded in text", got)
	}
	if !strings.HasPrefix(got, "Error generating AI tutor response:") {
		t.Errorf("Answer = %q, want tutor error prefix", got)
	}
}
