// Package emergency holds the fixed catalog of silent-emergency messages.
//
// Each entry carries a canonical English message plus display metadata. The
// catalog never touches the generative-language capability or its cooldown
// gate: emergency messages must be deliverable even when the assistant is
// exhausted or misconfigured.
package emergency

import (
	"context"

	"github.com/subrinSheikh/Medical-Language-System/internal/translate"
)

// Definition is one supported emergency type.
type Definition struct {
	Key   string `json:"key"`
	Text  string `json:"text"` // canonical English message
	Icon  string `json:"icon"`
	Title string `json:"title"`
}

// catalog is the static set of supported emergency types, loaded once at
// process start and read-only afterwards.
var catalog = map[string]Definition{
	"chest_pain": {
		Key:   "chest_pain",
		Text:  "I am experiencing chest pain. This is a medical emergency. Please call an ambulance immediately.",
		Icon:  "🫀",
		Title: "Chest Pain",
	},
	"head_injury": {
		Key:   "head_injury",
		Text:  "I have a head injury. I need immediate medical attention. Please help me get to a hospital.",
		Icon:  "🤕",
		Title: "Head Injury",
	},
	"dizziness": {
		Key:   "dizziness",
		Text:  "I am feeling dizzy and cannot speak clearly. I need medical help. Please assist me.",
		Icon:  "😵",
		Title: "Dizziness",
	},
	"breathing": {
		Key:   "breathing",
		Text:  "I am having difficulty breathing. This is an emergency. Please call for medical help immediately.",
		Icon:  "😮‍💨",
		Title: "Breathing Difficulty",
	},
	"stroke": {
		Key:   "stroke",
		Text:  "I think I am having a stroke. I cannot speak properly. Please call an ambulance right away.",
		Icon:  "🧠",
		Title: "Possible Stroke",
	},
	"choking": {
		Key:   "choking",
		Text:  "I am choking and cannot speak. I need immediate help. Please perform the Heimlich maneuver.",
		Icon:  "😰",
		Title: "Choking",
	},
	"abuse": {
		Key:   "abuse",
		Text:  "I am in danger and cannot speak. I need help. Please contact emergency services.",
		Icon:  "🆘",
		Title: "Emergency Help",
	},
	"allergy": {
		Key:   "allergy",
		Text:  "I am having a severe allergic reaction. I need an epinephrine injection and immediate medical care.",
		Icon:  "🤧",
		Title: "Allergic Reaction",
	},
}

// Get returns the catalog definition for a key.
func Get(key string) (Definition, bool) {
	def, ok := catalog[key]
	return def, ok
}

// Keys returns the supported emergency type keys.
func Keys() []string {
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	return out
}

// Catalog resolves emergency messages in the caller's language.
type Catalog struct {
	translator translate.Translator
}

// New creates a Catalog using the given translator for non-English targets.
func New(translator translate.Translator) *Catalog {
	return &Catalog{translator: translator}
}

// Lookup returns the emergency message for the given type in the target
// language. Unknown keys return ok=false. English targets get the canonical
// text verbatim; other targets are translated best-effort, so a translation
// failure yields an inline error string rather than an absent message.
func (c *Catalog) Lookup(ctx context.Context, key, language string) (string, bool) {
	def, ok := catalog[key]
	if !ok {
		return "", false
	}

	if language == "English" {
		return def.Text, true
	}
	return translate.BestEffort(ctx, c.translator, def.Text, language), true
}
