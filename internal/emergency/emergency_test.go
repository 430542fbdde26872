package emergency_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/subrinSheikh/Medical-Language-System/internal/emergency"
)

// fakeTranslator tags text so tests can tell translated output from the
// canonical English message.
type fakeTranslator struct {
	err   error
	calls int
}

func (f *fakeTranslator) Name() string { return "fake" }

func (f *fakeTranslator) Translate(_ context.Context, text, targetLabel string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "[" + targetLabel + "] " + text, nil
}

func TestLookupEnglishIsVerbatim(t *testing.T) {
	ft := &fakeTranslator{}
	c := emergency.New(ft)

	msg, ok := c.Lookup(context.Background(), "chest_pain", "English")
	if !ok {
		t.Fatal("chest_pain must be in the catalog")
	}
	want := "I am experiencing chest pain. This is a medical emergency. Please call an ambulance immediately."
	if msg != want {
		t.Errorf("Lookup = %q, want canonical English text", msg)
	}
	if ft.calls != 0 {
		t.Error("English lookup must not invoke the translator")
	}
}

func TestLookupTranslatesOtherLanguages(t *testing.T) {
	c := emergency.New(&fakeTranslator{})

	msg, ok := c.Lookup(context.Background(), "stroke", "Hindi")
	if !ok {
		t.Fatal("stroke must be in the catalog")
	}
	if !strings.HasPrefix(msg, "[Hindi] ") {
		t.Errorf("expected translated message, got %q", msg)
	}
}

func TestLookupUnknownKeyIsAbsent(t *testing.T) {
	ft := &fakeTranslator{}
	c := emergency.New(ft)

	if _, ok := c.Lookup(context.Background(), "papercut", "English"); ok {
		t.Error("unknown emergency type must be absent")
	}
	if ft.calls != 0 {
		t.Error("absent lookup must not invoke the translator")
	}
}

func TestLookupTranslationFailureDegradesToErrorText(t *testing.T) {
	c := emergency.New(&fakeTranslator{err: errors.New("upstream down")})

	msg, ok := c.Lookup(context.Background(), "choking", "Hindi")
	if !ok {
		t.Fatal("choking must be in the catalog")
	}
	if !strings.HasPrefix(msg, "Translation error:") {
		t.Errorf("expected inline translation error text, got %q", msg)
	}
}

func TestCatalogCoversAllEmergencyTypes(t *testing.T) {
	want := []string{"chest_pain", "head_injury", "dizziness", "breathing", "stroke", "choking", "abuse", "allergy"}
	for _, key := range want {
		def, ok := emergency.Get(key)
		if !ok {
			t.Errorf("missing catalog entry %q", key)
			continue
		}
		if def.Text == "" || def.Title == "" || def.Icon == "" {
			t.Errorf("catalog entry %q is incomplete: %+v", key, def)
		}
	}
	if got := len(emergency.Keys()); got != len(want) {
		t.Errorf("catalog has %d entries, want %d", got, len(want))
	}
}
