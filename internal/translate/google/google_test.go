package google

import (
	"strings"
	"testing"
)

func TestParseResponse(t *testing.T) {
	// Shape returned by the gtx endpoint for a two-segment input.
	body := `[[["Bonjour. ","Hello. ",null,null,10],["Comment allez-vous ?","How are you?",null,null,10]],null,"en"]`

	got, err := parseResponse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parseResponse failed: %v", err)
	}
	want := "Bonjour. Comment allez-vous ?"
	if got != want {
		t.Errorf("parseResponse = %q, want %q", got, want)
	}
}

func TestParseResponseEmpty(t *testing.T) {
	if _, err := parseResponse(strings.NewReader(`[[],null,"en"]`)); err == nil {
		t.Error("expected error for response with no segments")
	}
	if _, err := parseResponse(strings.NewReader(`not json`)); err == nil {
		t.Error("expected error for malformed response")
	}
}
