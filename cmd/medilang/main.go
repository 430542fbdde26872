// Medilang is a voice-first medical language daemon that translates typed or
// spoken input, answers health questions, explains conditions, and signals
// emergencies for users who cannot speak.
//
// Usage:
//
//	medilang [flags]
//	medilang --config /path/to/medilang.yaml
//
// @title       Medical Language System API
// @version     1.0
// @description Voice-first medical language assistant: translation, tutoring, condition explanation, and silent emergency signaling.
// @BasePath    /
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	_ "github.com/subrinSheikh/Medical-Language-System/docs"
	"github.com/subrinSheikh/Medical-Language-System/internal/assist"
	"github.com/subrinSheikh/Medical-Language-System/internal/config"
	"github.com/subrinSheikh/Medical-Language-System/internal/emergency"
	"github.com/subrinSheikh/Medical-Language-System/internal/emotion"
	"github.com/subrinSheikh/Medical-Language-System/internal/explain"
	"github.com/subrinSheikh/Medical-Language-System/internal/health"
	"github.com/subrinSheikh/Medical-Language-System/internal/history"
	filehistory "github.com/subrinSheikh/Medical-Language-System/internal/history/file"
	pghistory "github.com/subrinSheikh/Medical-Language-System/internal/history/postgres"
	"github.com/subrinSheikh/Medical-Language-System/internal/langid"
	"github.com/subrinSheikh/Medical-Language-System/internal/pipeline"
	"github.com/subrinSheikh/Medical-Language-System/internal/ratelimit"
	"github.com/subrinSheikh/Medical-Language-System/internal/speech/gtts"
	"github.com/subrinSheikh/Medical-Language-System/internal/transcribe/whisper"
	"github.com/subrinSheikh/Medical-Language-System/internal/translate/google"
	httptransport "github.com/subrinSheikh/Medical-Language-System/internal/transport/http"
	"github.com/subrinSheikh/Medical-Language-System/internal/tutor"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to config file (e.g. configs/medilang.local.yaml)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("medilang %s\n", version)
		os.Exit(0)
	}

	// Local development credentials. The file is optional.
	_ = godotenv.Load()

	// Load configuration.
	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging.
	config.SetupLogging(cfg.Logging)
	slog.Info("medilang starting", "version", version)

	// Create root context with signal handling for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize the assistant backend. A nil client is valid: every
	// assistant-backed feature degrades to its "not configured" text.
	client, err := assist.NewClient(cfg.Assistant)
	if err != nil {
		slog.Error("failed to initialize assistant", "error", err)
		os.Exit(1)
	}
	if client == nil {
		slog.Warn("assistant API key not configured, tutor/explain/emotion features degraded")
	} else {
		slog.Info("using assistant backend",
			"provider", client.Name(), "model", cfg.Assistant.Model)
	}
	gate := ratelimit.New(cfg.Assistant.Cooldown)

	// Initialize the history backend.
	var store history.Store
	switch cfg.History.Backend {
	case "postgres":
		pg, err := pghistory.New(ctx, cfg.History.Postgres.DSN)
		if err != nil {
			slog.Error("failed to open postgres history store", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		store = pg
	case "file", "":
		fs, err := filehistory.New(cfg.History.File.Path)
		if err != nil {
			slog.Error("failed to open file history store", "error", err)
			os.Exit(1)
		}
		store = fs
	default:
		slog.Error("unknown history backend", "backend", cfg.History.Backend)
		os.Exit(1)
	}
	slog.Info("using history backend", "backend", store.Name())

	// Wire the interaction pipeline.
	translator := google.New()
	pipe := pipeline.New(pipeline.Deps{
		Tutor:       tutor.New(client, gate),
		Explainer:   explain.New(client, gate),
		Emotions:    emotion.New(client, gate),
		Emergencies: emergency.New(translator),
		Transcriber: whisper.New(cfg.Transcriber),
		Translator:  translator,
		Synthesizer: gtts.New(cfg.Speech.OutputPath),
		Languages:   langid.New(),
		Store:       store,
		UploadsDir:  cfg.Server.UploadsDir,
	})

	// Start health check server.
	healthServer := health.New(cfg.Server.HealthPort)
	go func() {
		if err := healthServer.ListenAndServe(ctx); err != nil {
			slog.Error("health server failed", "error", err)
		}
	}()

	// Start the HTTP transport.
	trans := httptransport.New(cfg.Server.Port, store, cfg.Speech.OutputPath)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting transport", "name", trans.Name())
		errCh <- trans.Listen(ctx, pipe.Handle)
	}()

	healthServer.SetReady(true)
	slog.Info("medilang ready",
		"port", cfg.Server.Port,
		"health_port", cfg.Server.HealthPort)

	// Block until shutdown signal or transport failure.
	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining...")
	case err := <-errCh:
		if err != nil {
			slog.Error("transport failed", "name", trans.Name(), "error", err)
		}
	}

	if err := trans.Close(); err != nil {
		slog.Error("transport close error", "name", trans.Name(), "error", err)
	}
	slog.Info("medilang stopped")
}
