package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	defaultAnthropicModel = "claude-3-5-haiku-latest"
	anthropicMaxTokens    = 8192
)

// AnthropicProvider translates with a Claude model
type AnthropicProvider struct {
	model  string
	client anthropic.Client
}

// NewAnthropicProvider creates a new Anthropic translation provider. Extra
// request options (e.g. option.WithBaseURL) are appended to the defaults.
func NewAnthropicProvider(apiKey, model string, opts ...option.RequestOption) *AnthropicProvider {
	if model == "" {
		model = defaultAnthropicModel
	}

	// One attempt per text; the SDK would otherwise retry on its own.
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)

	return &AnthropicProvider{
		model:  model,
		client: anthropic.NewClient(opts...),
	}
}

// Translate translates text from source to target
func (p *AnthropicProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt(text, source, target))),
		},
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("Anthropic API error: %w", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	translation := strings.TrimSpace(b.String())
	if translation == "" {
		return "", fmt.Errorf("no translation returned")
	}
	return translation, nil
}

// Name returns the name of the provider
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}
