package phonetic

import (
	"context"
	"fmt"

	"codeberg.org/snonux/dailyread/internal/config"
)

// Transcriber produces an IPA transcription for a single lower-case word
type Transcriber interface {
	Transcribe(ctx context.Context, word string) (string, error)
}

// NewTranscriber creates the transcriber named in cfg.Provider.
// It returns a nil Transcriber for "none".
func NewTranscriber(cfg config.PhoneticConfig) (Transcriber, error) {
	switch cfg.Provider {
	case "espeak", "":
		return NewESpeakTranscriber(cfg.Voice), nil
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key not configured")
		}
		return NewOpenAITranscriber(cfg.APIKey, cfg.Model), nil
	case "dict":
		dict, err := LoadDictionary(cfg.Dictionary)
		if err != nil {
			return nil, err
		}
		return dict, nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown phonetic provider: %s", cfg.Provider)
	}
}
