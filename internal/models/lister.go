package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return NewListerWithConfig(openai.DefaultConfig(apiKey), apiKey)
}

// NewListerWithConfig creates a lister from a client config, e.g. one
// pointing at a compatible server.
func NewListerWithConfig(cfg openai.ClientConfig, apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(cfg),
	}
}

// Groups holds model IDs by intended use, each sorted
type Groups struct {
	Chat  []string
	Audio []string
	Other []string
}

// ListAvailableModels writes all available OpenAI models to w, chat models
// first
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	groups, err := l.Fetch(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available OpenAI Models:")

	fmt.Fprintln(w, "\nChat Models (for --translation-model and the openai phonetic provider):")
	printGroup(w, groups.Chat, "No chat models found")

	fmt.Fprintln(w, "\nAudio Models (not used by dailyread):")
	printGroup(w, groups.Audio, "No audio models found")

	if len(groups.Other) > 0 {
		fmt.Fprintf(w, "\nOther Models: %d (embeddings, images, moderation)\n", len(groups.Other))
	}

	return nil
}

// Fetch retrieves and categorizes the models
func (l *Lister) Fetch(ctx context.Context) (Groups, error) {
	if l.apiKey == "" {
		return Groups{}, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .dailyread.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return Groups{}, fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}
	return Categorize(ids), nil
}

// Categorize sorts model IDs into groups by name
func Categorize(ids []string) Groups {
	var g Groups
	for _, id := range ids {
		switch {
		case strings.Contains(id, "tts"), strings.Contains(id, "audio"),
			strings.Contains(id, "realtime"), strings.Contains(id, "whisper"),
			strings.Contains(id, "transcribe"):
			g.Audio = append(g.Audio, id)
		case strings.HasPrefix(id, "gpt-"), strings.HasPrefix(id, "chatgpt"),
			strings.HasPrefix(id, "o1"), strings.HasPrefix(id, "o3"), strings.HasPrefix(id, "o4"):
			g.Chat = append(g.Chat, id)
		default:
			g.Other = append(g.Other, id)
		}
	}

	sort.Strings(g.Chat)
	sort.Strings(g.Audio)
	sort.Strings(g.Other)
	return g
}

func printGroup(w io.Writer, ids []string, empty string) {
	if len(ids) == 0 {
		fmt.Fprintf(w, "  %s\n", empty)
		return
	}
	for _, id := range ids {
		fmt.Fprintf(w, "  %s\n", id)
	}
}
