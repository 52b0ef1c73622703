package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiProvider translates with a Gemini model
type GeminiProvider struct {
	model  string
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini translation provider
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	return NewGeminiProviderWithConfig(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model)
}

// NewGeminiProviderWithConfig creates a Gemini provider from a full client
// configuration, e.g. one pointing HTTPOptions.BaseURL at another host.
func NewGeminiProviderWithConfig(ctx context.Context, cc *genai.ClientConfig, model string) (*GeminiProvider, error) {
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{model: model, client: client}, nil
}

// Translate translates text from source to target
func (p *GeminiProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.3)),
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt(text, source, target)), config)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", fmt.Errorf("no translation returned")
	}
	return translation, nil
}

// Name returns the name of the provider
func (p *GeminiProvider) Name() string {
	return "gemini"
}
