// Package speech defines the interface for text-to-speech synthesis.
//
// The pipeline speaks translated responses back to the listener. Synthesized
// audio is written to one fixed artifact path, overwritten on every call —
// only the most recent utterance is ever available for playback.
package speech

import "context"

// Opts controls synthesis behavior.
type Opts struct {
	// Language is the human-readable language label selecting the voice.
	Language string

	// Urgent requests emergency framing: a spoken alert prefix and a
	// slower speaking rate.
	Urgent bool
}

// AlertPrefix is spoken before the text when Opts.Urgent is set.
const AlertPrefix = "Emergency alert. "

// Synthesizer converts text to a persisted audio artifact.
type Synthesizer interface {
	// Name returns the backend identifier.
	Name() string

	// Synthesize renders the text as speech and overwrites the artifact.
	Synthesize(ctx context.Context, text string, opts Opts) error

	// OutputPath returns the fixed artifact location.
	OutputPath() string
}
