// Package message defines the core data types flowing through the medilang pipeline.
package message

import "time"

// Mode selects which interaction pipeline handles a request.
type Mode string

const (
	// ModeTutor answers a free-form medical question.
	ModeTutor Mode = "tutor"

	// ModeExplainCondition produces a structured three-part explanation
	// of a described condition.
	ModeExplainCondition Mode = "explain_condition"

	// ModeSilentEmergency speaks a canonical emergency message for a
	// user who cannot speak.
	ModeSilentEmergency Mode = "silent_emergency"

	// ModeTranslator translates typed or spoken input. This is the
	// default when no mode is given.
	ModeTranslator Mode = "translator"
)

// Request represents one incoming interaction from the transport layer.
type Request struct {
	// ID is a unique identifier for this interaction (UUID).
	ID string `json:"id"`

	// Mode selects the pipeline branch. Empty means translator.
	Mode Mode `json:"mode,omitempty"`

	// Language is the human-readable target language label
	// (e.g. "English", "Hindi"). Defaults to "English".
	Language string `json:"language,omitempty"`

	// TextInput is typed source text for the translator pipeline.
	// Non-blank typed text always wins over an attached audio payload.
	TextInput string `json:"text_input,omitempty"`

	// Audio is the raw audio payload for the translator pipeline.
	// Nil when the request is text-only.
	Audio []byte `json:"audio,omitempty"`

	// ContentType is the MIME type of the audio (e.g. "audio/wav").
	ContentType string `json:"content_type,omitempty"`

	// TutorQuery is the question for the tutor pipeline.
	TutorQuery string `json:"tutor_query,omitempty"`

	// ConditionText is the condition description for the explainer pipeline.
	ConditionText string `json:"condition_text,omitempty"`

	// EmergencyType is the catalog key for the silent emergency pipeline.
	EmergencyType string `json:"emergency_type,omitempty"`

	// Timestamp is when the request was received.
	Timestamp time.Time `json:"timestamp"`
}

// HasAudio returns true if the request carries an audio payload.
func (r *Request) HasAudio() bool {
	return len(r.Audio) > 0
}

// TargetLanguage returns the requested language label, defaulting to English.
func (r *Request) TargetLanguage() string {
	if r.Language == "" {
		return "English"
	}
	return r.Language
}

// Explanation is the structured output of the condition explainer.
// Any field may be empty when the assistant's response could not be
// parsed into all three sections.
type Explanation struct {
	WhatItMeans string `json:"what_it_means"`
	WhatToDo    string `json:"what_to_do"`
	WhatNotToDo string `json:"what_not_to_do"`
}

// RecordType tags a history record with the interaction kind that produced it.
type RecordType string

const (
	RecordTutor            RecordType = "tutor"
	RecordExplainCondition RecordType = "explain_condition"
	RecordSilentEmergency  RecordType = "silent_emergency"
	RecordTranslation      RecordType = "translation"
)

// Record is one completed interaction as persisted in the history log.
// Records are immutable once created; the store only inserts and truncates.
type Record struct {
	ID        string     `json:"id"`
	Type      RecordType `json:"type"`
	Timestamp time.Time  `json:"timestamp"`
	Language  string     `json:"language"`

	// Tutor fields.
	Question string `json:"question,omitempty"`
	Response string `json:"response,omitempty"`

	// Explain-condition fields. The structured, untranslated explanation
	// is persisted, not the translated concatenation.
	Condition   string       `json:"condition,omitempty"`
	Explanation *Explanation `json:"explanation,omitempty"`

	// Silent-emergency fields.
	EmergencyType string `json:"emergency_type,omitempty"`
	Message       string `json:"message,omitempty"`

	// Translation fields.
	SourceText     string `json:"source_text,omitempty"`
	TranslatedText string `json:"translated_text,omitempty"`
	SourceLanguage string `json:"source_language,omitempty"`
	TargetLanguage string `json:"target_language,omitempty"`
	Emotion        string `json:"emotion,omitempty"`
}

// EmergencyInfo carries the display metadata of a catalog entry back to
// the caller.
type EmergencyInfo struct {
	Title string `json:"title,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// Result is the outcome of running a request through the pipeline.
// Every failure mode inside the pipeline degrades to fallback text, so a
// Result is always renderable.
type Result struct {
	// ID is the original request ID.
	ID string `json:"id"`

	// Mode is the pipeline branch that handled the request.
	Mode Mode `json:"mode"`

	// Translator fields.
	Recognized     string `json:"recognized,omitempty"`
	Translated     string `json:"translated,omitempty"`
	Emotion        string `json:"emotion,omitempty"`
	SourceLanguage string `json:"source_language,omitempty"`

	// Tutor fields.
	TutorResponse string `json:"tutor_response,omitempty"`

	// Explain-condition fields.
	ConditionText string       `json:"condition_text,omitempty"`
	Explanation   *Explanation `json:"explanation,omitempty"`

	// Silent-emergency fields. EmergencyType is echoed back even when
	// the catalog had no entry for it.
	EmergencyType    string         `json:"emergency_type,omitempty"`
	EmergencyMessage string         `json:"emergency_message,omitempty"`
	EmergencyInfo    *EmergencyInfo `json:"emergency_info,omitempty"`

	// Urgent reports whether synthesis was requested with emergency framing.
	Urgent bool `json:"urgent,omitempty"`

	// AudioReady is true when a synthesized artifact was written for
	// this interaction.
	AudioReady bool `json:"audio_ready"`

	// History is the interaction log after this request, newest first.
	History []Record `json:"history"`
}
