// Package http implements the HTTP transport for medilang.
//
// This transport exposes a REST API for interaction requests, the rolling
// history log, and the most recent speech artifact. It is best suited for
// web clients and phones.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/subrinSheikh/Medical-Language-System/internal/history"
	"github.com/subrinSheikh/Medical-Language-System/internal/message"
	"github.com/subrinSheikh/Medical-Language-System/internal/transport"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// maxAudioBytes caps uploaded audio payloads at 25 MB.
const maxAudioBytes = 25 << 20

// Transport implements transport.Transport over HTTP.
type Transport struct {
	port      int
	store     history.Store
	audioPath string
	server    *http.Server
}

// New creates a new HTTP transport on the given port. audioPath is the
// location of the speech artifact served by GET /audio.
func New(port int, store history.Store, audioPath string) *Transport {
	return &Transport{port: port, store: store, audioPath: audioPath}
}

// Name returns the transport identifier.
func (t *Transport) Name() string { return "http" }

// Listen starts the HTTP server and routes incoming requests to the handler.
func (t *Transport) Listen(ctx context.Context, handler transport.Handler) error {
	mux := http.NewServeMux()

	// POST /interact — the single entry point for all four modes.
	mux.HandleFunc("POST /interact", func(w http.ResponseWriter, r *http.Request) {
		t.handleInteract(w, r, handler)
	})

	// GET /history — the rolling interaction log, newest first.
	mux.HandleFunc("GET /history", t.handleHistory)

	// GET /audio — the most recent speech artifact.
	mux.HandleFunc("GET /audio", t.handleAudio)

	// Swagger UI — serves the generated OpenAPI docs.
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	t.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", t.port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("http transport listening", "port", t.port)

	go func() {
		<-ctx.Done()
		slog.Info("http transport shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = t.server.Shutdown(shutdownCtx)
	}()

	if err := t.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("http listen: %w", err)
	}
	return nil
}

// handleInteract processes a POST /interact request.
//
// @Summary     Run one interaction through the pipeline
// @Description Accepts a JSON request or a multipart form with an optional audio file.
// @Description The request is routed by mode (translator, tutor, explain_condition,
// @Description silent_emergency); an unknown or missing mode falls back to translator.
// @Description Degraded paths (missing API key, rate limiting, transcription failure)
// @Description are reported inside the result, never as an error status.
// @Tags        interact
// @Accept      json
// @Accept      mpfd
// @Produce     json
// @Param       request  body      message.Request  true  "Interaction request (JSON). Multipart forms use the fields mode, language, text_input, tutor_query, condition_text, emergency_type and an audio file part."
// @Success     200  {object}  message.Result  "Interaction result with the refreshed history log"
// @Failure     400  {string}  string  "Malformed request body"
// @Router      /interact [post]
func (t *Transport) handleInteract(w http.ResponseWriter, r *http.Request, handler transport.Handler) {
	req, err := decodeRequest(r)
	if err != nil {
		http.Error(w, "invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	result := handler(r.Context(), req)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

// handleHistory serves the rolling interaction log.
//
// @Summary     Read the interaction history
// @Description Returns the rolling log of completed interactions, newest first,
// @Description capped at the retention limit. An unreadable store degrades to an
// @Description empty log rather than an error.
// @Tags        history
// @Produce     json
// @Success     200  {array}  message.Record  "Interaction records, newest first"
// @Router      /history [get]
func (t *Transport) handleHistory(w http.ResponseWriter, r *http.Request) {
	records, err := t.store.Load(r.Context())
	if err != nil {
		slog.Error("failed to load history", "error", err)
		records = nil
	}
	if records == nil {
		records = []message.Record{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(records)
}

// handleAudio serves the most recent speech artifact.
//
// @Summary     Fetch the most recent spoken output
// @Description Serves the MP3 produced by the last synthesis. Returns 404 until
// @Description the first synthesis has completed. The artifact is overwritten on
// @Description every synthesis, so clients should cache-bust between plays.
// @Tags        audio
// @Produce     audio/mpeg
// @Success     200  {file}    file    "MP3 audio"
// @Failure     404  {string}  string  "No audio has been synthesized yet"
// @Router      /audio [get]
func (t *Transport) handleAudio(w http.ResponseWriter, r *http.Request) {
	f, err := os.Open(t.audioPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			http.Error(w, "no audio available", http.StatusNotFound)
			return
		}
		slog.Error("failed to open audio artifact", "path", t.audioPath, "error", err)
		http.Error(w, "audio unavailable", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = io.Copy(w, f)
}

// decodeRequest builds a message.Request from either a JSON body or a
// form submission with an optional audio file part.
func decodeRequest(r *http.Request) (*message.Request, error) {
	mediaType := r.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(mediaType); err == nil {
		mediaType = mt
	}

	if mediaType == "application/json" {
		var req message.Request
		if err := json.NewDecoder(io.LimitReader(r.Body, maxAudioBytes)).Decode(&req); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return &req, nil
	}

	multipart := strings.HasPrefix(mediaType, "multipart/")
	if multipart {
		if err := r.ParseMultipartForm(maxAudioBytes); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}

	req := &message.Request{
		Mode:          message.Mode(r.FormValue("mode")),
		Language:      r.FormValue("language"),
		TextInput:     r.FormValue("text_input"),
		TutorQuery:    r.FormValue("tutor_query"),
		ConditionText: r.FormValue("condition_text"),
		EmergencyType: r.FormValue("emergency_type"),
	}

	if multipart {
		file, header, err := r.FormFile("audio")
		switch {
		case err == nil:
			defer file.Close()
			audio, readErr := io.ReadAll(io.LimitReader(file, maxAudioBytes))
			if readErr != nil {
				return nil, fmt.Errorf("read audio part: %w", readErr)
			}
			req.Audio = audio
			req.ContentType = header.Header.Get("Content-Type")
		case !errors.Is(err, http.ErrMissingFile):
			return nil, fmt.Errorf("audio part: %w", err)
		}
	}

	return req, nil
}

// Close gracefully shuts down the HTTP server.
func (t *Transport) Close() error {
	if t.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return t.server.Shutdown(ctx)
	}
	return nil
}
