// Package config handles loading and validating the medilang configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration for the medilang daemon.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Assistant   AssistantConfig   `mapstructure:"assistant"`
	Transcriber TranscriberConfig `mapstructure:"transcriber"`
	Speech      SpeechConfig      `mapstructure:"speech"`
	History     HistoryConfig     `mapstructure:"history"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// ServerConfig holds the HTTP and health server settings.
type ServerConfig struct {
	Port       int    `mapstructure:"port"`
	HealthPort int    `mapstructure:"health_port"`
	UploadsDir string `mapstructure:"uploads_dir"`
}

// AssistantConfig selects and configures the generative-language backend.
// An empty API key is not an error: every assistant-backed feature then
// degrades to its fixed "not configured" text.
type AssistantConfig struct {
	Provider string        `mapstructure:"provider"` // "gemini" or "openai"
	APIKey   string        `mapstructure:"api_key"`
	Model    string        `mapstructure:"model"`
	BaseURL  string        `mapstructure:"base_url"` // openai-compatible endpoints only
	Cooldown time.Duration `mapstructure:"cooldown"`
}

// TranscriberConfig holds the Whisper-compatible speech-to-text settings.
type TranscriberConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Type     string `mapstructure:"type"` // "openai" (default) or "asr" (ahmetoner/whisper-asr-webservice)
	Model    string `mapstructure:"model"`
}

// SpeechConfig holds text-to-speech settings. OutputPath is the single
// artifact location, overwritten on every synthesis call.
type SpeechConfig struct {
	OutputPath string `mapstructure:"output_path"`
}

// HistoryConfig selects and configures the interaction-log backend.
type HistoryConfig struct {
	Backend  string         `mapstructure:"backend"` // "file" or "postgres"
	File     FileConfig     `mapstructure:"file"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// FileConfig holds the JSON-file history settings.
type FileConfig struct {
	Path string `mapstructure:"path"`
}

// PostgresConfig holds the SQL history settings.
type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// Load reads the configuration from file, environment variables, and defaults.
// If configFile is non-empty it is used directly; otherwise the standard
// search order applies: ./medilang.yaml, ./configs/medilang.yaml, /etc/medilang/medilang.yaml.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.health_port", 8081)
	v.SetDefault("server.uploads_dir", "uploads")
	v.SetDefault("assistant.provider", "gemini")
	v.SetDefault("assistant.api_key", "${GEMINI_API_KEY}")
	v.SetDefault("assistant.model", "gemini-flash-lite-latest")
	v.SetDefault("assistant.cooldown", "2s")
	v.SetDefault("transcriber.endpoint", "http://localhost:8000/v1/audio/transcriptions")
	v.SetDefault("transcriber.type", "openai")
	v.SetDefault("transcriber.model", "whisper-1")
	v.SetDefault("speech.output_path", "static/output.mp3")
	v.SetDefault("history.backend", "file")
	v.SetDefault("history.file.path", "history.json")
	v.SetDefault("history.postgres.dsn", "${MEDILANG_POSTGRES_DSN}")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("medilang")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/medilang")
	}

	// Environment variables: MEDILANG_SERVER_PORT, MEDILANG_ASSISTANT_PROVIDER, etc.
	v.SetEnvPrefix("MEDILANG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional — env vars and defaults are sufficient)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Info("no config file found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Resolve env var references in sensitive fields (e.g. "${GEMINI_API_KEY}")
	cfg.Assistant.APIKey = resolveEnvRef(cfg.Assistant.APIKey)
	cfg.History.Postgres.DSN = resolveEnvRef(cfg.History.Postgres.DSN)

	return &cfg, nil
}

// resolveEnvRef replaces "${VAR_NAME}" patterns with the corresponding env var
// value. An unset variable resolves to the empty string so that a missing
// credential degrades features instead of leaking the placeholder downstream.
func resolveEnvRef(val string) string {
	if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
		return os.Getenv(val[2 : len(val)-1])
	}
	return val
}

// SetupLogging configures the global slog logger based on config.
func SetupLogging(cfg LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
