// Package translate defines the interface for machine translation.
//
// Targets are addressed by the human-readable labels the user picks in the
// interface ("English", "Hindi", ...); a fixed table maps them to ISO-639-1
// codes and unknown labels fall back to English.
package translate

import (
	"context"
	"fmt"
	"log/slog"
)

// Translator converts text to a target language.
type Translator interface {
	// Name returns the backend identifier.
	Name() string

	// Translate converts text to the language named by the given label.
	// The source language is auto-detected by the backend.
	Translate(ctx context.Context, text, targetLabel string) (string, error)
}

// BestEffort translates text to the target language, degrading a backend
// failure to an inline error string. Downstream synthesis and rendering
// always receive some text; translation errors never abort an interaction.
func BestEffort(ctx context.Context, t Translator, text, targetLabel string) string {
	out, err := t.Translate(ctx, text, targetLabel)
	if err != nil {
		slog.Error("translation failed", "target", targetLabel, "error", err)
		return fmt.Sprintf("Translation error: %v", err)
	}
	return out
}

// labelToCode maps supported language labels to ISO-639-1 codes.
var labelToCode = map[string]string{
	"English":  "en",
	"Hindi":    "hi",
	"Urdu":     "ur",
	"Arabic":   "ar",
	"Bengali":  "bn",
	"Nepali":   "ne",
	"Japanese": "ja",
	"Chinese":  "zh",
}

// CodeForLabel returns the ISO-639-1 code for a language label.
// Unknown labels default to English.
func CodeForLabel(label string) string {
	if code, ok := labelToCode[label]; ok {
		return code
	}
	return "en"
}

// Labels returns the supported language labels.
func Labels() []string {
	out := make([]string, 0, len(labelToCode))
	for label := range labelToCode {
		out = append(out, label)
	}
	return out
}
