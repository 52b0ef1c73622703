package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider translates with an OpenAI chat model
type OpenAIProvider struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI translation provider
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return NewOpenAIProviderWithConfig(openai.DefaultConfig(apiKey), apiKey, model)
}

// NewOpenAIProviderWithConfig creates a provider from a client config, e.g.
// one pointing at a compatible server.
func NewOpenAIProviderWithConfig(cfg openai.ClientConfig, apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIProvider{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}
}

// Translate translates text from source to target
func (p *OpenAIProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt(text, source, target),
			},
		},
		Temperature: 0.3,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the name of the provider
func (p *OpenAIProvider) Name() string {
	return "openai"
}
