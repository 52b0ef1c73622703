package translation

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/snonux/dailyread/internal/config"
)

// Provider is a single-text-in, single-text-out translation capability
type Provider interface {
	// Translate translates text from the source to the target language
	Translate(ctx context.Context, text, source, target string) (string, error)

	// Name returns the provider name
	Name() string
}

// APIError is returned when a provider answers with a non-success status
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", e.Provider, e.StatusCode, e.Message)
}

// NewProvider creates the provider named in cfg.Provider. It returns a nil
// Provider for "none".
func NewProvider(cfg config.TranslationConfig, timeout time.Duration) (Provider, error) {
	switch cfg.Provider {
	case "google", "":
		return NewGoogleProvider(cfg.Endpoint, timeout), nil
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key not found")
		}
		return NewOpenAIProvider(cfg.APIKey, cfg.Model), nil
	case "gemini":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("Gemini API key not found")
		}
		p, err := NewGeminiProvider(context.Background(), cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "anthropic":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("Anthropic API key not found")
		}
		return NewAnthropicProvider(cfg.APIKey, cfg.Model), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", cfg.Provider)
	}
}

// prompt is shared by the LLM backed providers
func prompt(text, source, target string) string {
	return fmt.Sprintf("Translate the following text from language code '%s' to language code '%s'. "+
		"Respond with only the translation, nothing else.\n\n%s", source, target, text)
}
