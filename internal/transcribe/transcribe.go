// Package transcribe defines the interface for speech-to-text conversion.
//
// The translator pipeline hands audio uploads to a Transcriber and treats any
// error as "no recognized text" — transcription failures never abort an
// interaction.
package transcribe

import "context"

// Opts controls transcription behavior.
type Opts struct {
	// Language is the ISO-639-1 code (e.g. "en", "hi") to guide recognition.
	Language string

	// Prompt provides context to improve recognition of medical terms.
	Prompt string
}

// Transcriber converts audio bytes to text.
type Transcriber interface {
	// Name returns the backend identifier.
	Name() string

	// Transcribe converts audio bytes to recognized text.
	Transcribe(ctx context.Context, audio []byte, contentType string, opts Opts) (string, error)
}
