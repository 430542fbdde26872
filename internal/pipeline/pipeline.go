// Package pipeline implements the core request orchestration.
//
// Each request selects exactly one mode branch (tutor, explain_condition,
// silent_emergency, or the default translator); every branch is a linear
// sequence of capability calls followed by at most one history append. No
// failure inside a branch ever escapes Handle — adapters degrade to fallback
// text, synthesis and history writes are best-effort, and the result is
// always renderable.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/subrinSheikh/Medical-Language-System/internal/emergency"
	"github.com/subrinSheikh/Medical-Language-System/internal/emotion"
	"github.com/subrinSheikh/Medical-Language-System/internal/explain"
	"github.com/subrinSheikh/Medical-Language-System/internal/history"
	"github.com/subrinSheikh/Medical-Language-System/internal/langid"
	"github.com/subrinSheikh/Medical-Language-System/internal/message"
	"github.com/subrinSheikh/Medical-Language-System/internal/speech"
	"github.com/subrinSheikh/Medical-Language-System/internal/transcribe"
	"github.com/subrinSheikh/Medical-Language-System/internal/translate"
	"github.com/subrinSheikh/Medical-Language-System/internal/tutor"
)

// uploadName is the fixed file the latest audio upload is saved under,
// overwritten per request like the synthesis artifact.
const uploadName = "input.wav"

// Deps wires the capabilities the pipeline sequences.
type Deps struct {
	Tutor       *tutor.Assistant
	Explainer   *explain.Explainer
	Emotions    *emotion.Classifier
	Emergencies *emergency.Catalog
	Transcriber transcribe.Transcriber
	Translator  translate.Translator
	Synthesizer speech.Synthesizer
	Languages   langid.Classifier
	Store       history.Store

	// UploadsDir is where incoming audio payloads are persisted before
	// transcription. Empty disables the save.
	UploadsDir string
}

// Pipeline is the central orchestrator.
type Pipeline struct {
	deps Deps
	now  func() time.Time
}

// New creates a Pipeline over the given dependencies.
func New(deps Deps) *Pipeline {
	return &Pipeline{deps: deps, now: time.Now}
}

// Handle processes a single request through its mode branch and returns the
// renderable result. It never returns an error.
func (p *Pipeline) Handle(ctx context.Context, req *message.Request) *message.Result {
	start := p.now()
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Timestamp.IsZero() {
		req.Timestamp = start
	}

	mode := req.Mode
	switch mode {
	case message.ModeTutor, message.ModeExplainCondition, message.ModeSilentEmergency:
	default:
		mode = message.ModeTranslator
	}

	logger := slog.With("interaction_id", req.ID, "mode", string(mode))
	logger.Info("interaction started", "language", req.TargetLanguage())

	result := &message.Result{ID: req.ID, Mode: mode}

	switch mode {
	case message.ModeTutor:
		p.handleTutor(ctx, logger, req, result)
	case message.ModeExplainCondition:
		p.handleExplainCondition(ctx, logger, req, result)
	case message.ModeSilentEmergency:
		p.handleSilentEmergency(ctx, logger, req, result)
	default:
		p.handleTranslator(ctx, logger, req, result)
	}

	result.History = p.loadHistory(ctx, logger)
	logger.Info("interaction complete",
		"duration", p.now().Sub(start), "audio_ready", result.AudioReady)
	return result
}

// handleTutor answers a question, translates the answer, and speaks it.
// A request without a question only re-renders the current history.
func (p *Pipeline) handleTutor(ctx context.Context, logger *slog.Logger, req *message.Request, res *message.Result) {
	if req.TutorQuery == "" {
		return
	}
	lang := req.TargetLanguage()

	answer := p.deps.Tutor.Answer(ctx, req.TutorQuery)
	translated := translate.BestEffort(ctx, p.deps.Translator, answer, lang)
	res.TutorResponse = translated
	res.AudioReady = p.synthesize(ctx, logger, translated, lang, false)

	p.append(ctx, logger, message.Record{
		ID:        req.ID,
		Type:      message.RecordTutor,
		Timestamp: req.Timestamp,
		Language:  lang,
		Question:  req.TutorQuery,
		Response:  translated,
	})
}

// handleExplainCondition produces the structured explanation and, when a
// usable first section came back, speaks the translated concatenation with
// emergency framing. An unusable explanation skips translation, synthesis,
// and the history write but is still returned for rendering.
func (p *Pipeline) handleExplainCondition(ctx context.Context, logger *slog.Logger, req *message.Request, res *message.Result) {
	if req.ConditionText == "" {
		return
	}
	lang := req.TargetLanguage()
	res.ConditionText = req.ConditionText

	expl := p.deps.Explainer.Explain(ctx, req.ConditionText)
	res.Explanation = &expl
	if expl.WhatItMeans == "" {
		logger.Warn("explanation has no usable first section, skipping downstream steps")
		return
	}

	block := fmt.Sprintf("What it could mean: %s\n\nWhat to do now: %s\n\nWhat not to do: %s",
		expl.WhatItMeans, expl.WhatToDo, expl.WhatNotToDo)
	translated := translate.BestEffort(ctx, p.deps.Translator, block, lang)
	res.Urgent = true
	res.AudioReady = p.synthesize(ctx, logger, translated, lang, true)

	p.append(ctx, logger, message.Record{
		ID:          req.ID,
		Type:        message.RecordExplainCondition,
		Timestamp:   req.Timestamp,
		Language:    lang,
		Condition:   req.ConditionText,
		Explanation: &expl,
	})
}

// handleSilentEmergency speaks the canonical message for a catalog entry.
// Unknown types are echoed back for display but produce no synthesis and no
// history write. The catalog path never touches the assistant, so it works
// even when the generative capability is exhausted or misconfigured.
func (p *Pipeline) handleSilentEmergency(ctx context.Context, logger *slog.Logger, req *message.Request, res *message.Result) {
	res.EmergencyType = req.EmergencyType
	if req.EmergencyType == "" {
		return
	}
	lang := req.TargetLanguage()

	if def, ok := emergency.Get(req.EmergencyType); ok {
		res.EmergencyInfo = &message.EmergencyInfo{Title: def.Title, Icon: def.Icon}
	}

	msg, ok := p.deps.Emergencies.Lookup(ctx, req.EmergencyType, lang)
	if !ok {
		logger.Warn("unknown emergency type", "emergency_type", req.EmergencyType)
		return
	}

	res.EmergencyMessage = msg
	res.Urgent = true
	res.AudioReady = p.synthesize(ctx, logger, msg, lang, true)

	p.append(ctx, logger, message.Record{
		ID:            req.ID,
		Type:          message.RecordSilentEmergency,
		Timestamp:     req.Timestamp,
		Language:      lang,
		EmergencyType: req.EmergencyType,
		Message:       msg,
	})
}

// handleTranslator runs the default pipeline: resolve source text, classify
// emotion, detect the source language, translate, and speak. Direct typed
// text always wins over an attached audio payload; blank typed text falls
// through to audio.
func (p *Pipeline) handleTranslator(ctx context.Context, logger *slog.Logger, req *message.Request, res *message.Result) {
	lang := req.TargetLanguage()

	recognized := p.resolveSourceText(ctx, logger, req)
	if recognized == "" {
		logger.Debug("no recognized text, nothing to translate")
		return
	}
	res.Recognized = recognized

	emotionLabel := p.deps.Emotions.Classify(ctx, recognized)
	urgent := emotion.IsUrgent(emotionLabel)
	res.Emotion = emotionLabel
	logger.Info("emotion classified", "emotion", emotionLabel, "urgent", urgent)

	sourceLang := p.deps.Languages.Classify(recognized)
	res.SourceLanguage = sourceLang

	translated := translate.BestEffort(ctx, p.deps.Translator, recognized, lang)
	res.Translated = translated
	res.Urgent = urgent
	res.AudioReady = p.synthesize(ctx, logger, translated, lang, urgent)

	p.append(ctx, logger, message.Record{
		ID:             req.ID,
		Type:           message.RecordTranslation,
		Timestamp:      req.Timestamp,
		Language:       lang,
		SourceText:     recognized,
		TranslatedText: translated,
		SourceLanguage: sourceLang,
		TargetLanguage: lang,
		Emotion:        emotionLabel,
	})
}

// resolveSourceText applies the tie-break policy: non-blank typed text first,
// then transcribed audio. Transcription failures count as "no recognized
// text" and never abort the request.
func (p *Pipeline) resolveSourceText(ctx context.Context, logger *slog.Logger, req *message.Request) string {
	if strings.TrimSpace(req.TextInput) != "" {
		return req.TextInput
	}
	if !req.HasAudio() {
		return ""
	}

	p.saveUpload(logger, req)

	text, err := p.deps.Transcriber.Transcribe(ctx, req.Audio, req.ContentType, transcribe.Opts{})
	if err != nil {
		logger.Error("transcription failed, treating as no recognized text", "error", err)
		return ""
	}
	logger.Info("transcription complete", "text_length", len(text))
	return text
}

// saveUpload persists the raw audio payload under the uploads dir,
// overwriting the previous one. Best-effort only.
func (p *Pipeline) saveUpload(logger *slog.Logger, req *message.Request) {
	if p.deps.UploadsDir == "" {
		return
	}
	if err := os.MkdirAll(p.deps.UploadsDir, 0o755); err != nil {
		logger.Warn("failed to ensure uploads dir", "error", err)
		return
	}
	path := filepath.Join(p.deps.UploadsDir, uploadName)
	if err := os.WriteFile(path, req.Audio, 0o644); err != nil {
		logger.Warn("failed to save audio upload", "path", path, "error", err)
	}
}

// synthesize speaks text and reports whether the artifact was written.
// Failures are logged, never raised.
func (p *Pipeline) synthesize(ctx context.Context, logger *slog.Logger, text, language string, urgent bool) bool {
	err := p.deps.Synthesizer.Synthesize(ctx, text, speech.Opts{
		Language: language,
		Urgent:   urgent,
	})
	if err != nil {
		logger.Error("speech synthesis failed", "error", err)
		return false
	}
	logger.Debug("speech synthesis complete", "language", language, "urgent", urgent)
	return true
}

// append writes one record to the history store. Persistence failures are
// logged and never abort the interaction that triggered them.
func (p *Pipeline) append(ctx context.Context, logger *slog.Logger, rec message.Record) {
	if err := p.deps.Store.Append(ctx, rec); err != nil {
		logger.Error("failed to persist history record", "type", string(rec.Type), "error", err)
	}
}

// loadHistory returns the current log, degrading load failures to an empty
// log.
func (p *Pipeline) loadHistory(ctx context.Context, logger *slog.Logger) []message.Record {
	records, err := p.deps.Store.Load(ctx)
	if err != nil {
		logger.Error("failed to load history, rendering empty log", "error", err)
		return []message.Record{}
	}
	return records
}
