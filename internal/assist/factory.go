package assist

import (
	"fmt"
	"strings"

	"github.com/subrinSheikh/Medical-Language-System/internal/assist/gemini"
	openaiassist "github.com/subrinSheikh/Medical-Language-System/internal/assist/openai"
	"github.com/subrinSheikh/Medical-Language-System/internal/config"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// NewClient creates the configured assistant backend. It returns (nil, nil)
// when no API key is configured: callers treat a nil client as "assistant not
// configured" and degrade to their fixed fallback text instead of failing.
func NewClient(cfg config.AssistantConfig) (Client, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	switch strings.ToLower(cfg.Provider) {
	case ProviderGemini, "":
		return gemini.New(cfg.APIKey, cfg.Model), nil
	case ProviderOpenAI:
		return openaiassist.New(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown assistant provider: %s", cfg.Provider)
	}
}
