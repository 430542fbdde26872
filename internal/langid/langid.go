// Package langid identifies the language of recognized text.
//
// Identification is best-effort display metadata: the translator pipeline
// records the detected source language but never branches on it. Two
// fallback labels are distinguished: "Unknown" means detection succeeded but
// the language is outside the supported label set, "Auto Detect" means
// detection failed outright.
package langid

import (
	"github.com/pemistahl/lingua-go"
)

const (
	// LabelUnknown is returned when a language was detected but has no
	// supported label.
	LabelUnknown = "Unknown"

	// LabelAutoDetect is returned when detection failed; the translation
	// backend auto-detects the source on its own.
	LabelAutoDetect = "Auto Detect"
)

// Classifier maps text to a human-readable language label.
type Classifier interface {
	Classify(text string) string
}

// Detector implements Classifier on a lingua language detector.
type Detector struct {
	detector lingua.LanguageDetector
}

// candidates are the languages the detector can distinguish. The set is wider
// than the supported labels so that text in a neighboring language detects as
// "Unknown" instead of being misread as a supported one.
var candidates = []lingua.Language{
	lingua.English,
	lingua.Hindi,
	lingua.Urdu,
	lingua.Arabic,
	lingua.Bengali,
	lingua.Japanese,
	lingua.Chinese,
	lingua.French,
	lingua.Spanish,
	lingua.German,
	lingua.Portuguese,
	lingua.Russian,
	lingua.Korean,
}

// labels maps detected languages to the labels the rest of the system uses.
var labels = map[lingua.Language]string{
	lingua.English:  "English",
	lingua.Hindi:    "Hindi",
	lingua.Urdu:     "Urdu",
	lingua.Arabic:   "Arabic",
	lingua.Bengali:  "Bengali",
	lingua.Japanese: "Japanese",
	lingua.Chinese:  "Chinese",
}

// New builds a detector over the candidate languages.
func New() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build(),
	}
}

// Classify returns the label for the detected language of text.
func (d *Detector) Classify(text string) string {
	if text == "" {
		return LabelAutoDetect
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return LabelAutoDetect
	}

	label, ok := labels[lang]
	if !ok {
		return LabelUnknown
	}
	return label
}
