package phonetic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAITranscriber asks a chat model for IPA transcriptions
type OpenAITranscriber struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAITranscriber creates a new OpenAI backed transcriber
func NewOpenAITranscriber(apiKey, model string) *OpenAITranscriber {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITranscriber{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

// Transcribe returns the bare IPA transcription of an English word
func (o *OpenAITranscriber) Transcribe(ctx context.Context, word string) (string, error) {
	if o.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a phonetics expert. Reply with the General American IPA transcription of the given English word only, without slashes, brackets or explanations.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: word,
			},
		},
		Temperature: 0,
		MaxTokens:   40,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.Trim(strings.TrimSpace(resp.Choices[0].Message.Content), "/[]"), nil
}
