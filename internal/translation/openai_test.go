package translation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIProvider_Translate(t *testing.T) {
	var gotModel, gotPrompt string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		var req openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotModel = req.Model
		if len(req.Messages) > 0 {
			gotPrompt = req.Messages[0].Content
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "  你好  "}, "finish_reason": "stop"}]
		}`))
	}))
	defer server.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	p := NewOpenAIProviderWithConfig(cfg, "test-key", "")

	got, err := p.Translate(context.Background(), "Hello", "en", "zh-CN")

	require.NoError(t, err)
	assert.Equal(t, "你好", got)
	assert.Equal(t, openai.GPT4oMini, gotModel)
	assert.Contains(t, gotPrompt, "'zh-CN'")
	assert.True(t, strings.HasSuffix(gotPrompt, "Hello"))
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-1", "object": "chat.completion", "choices": []}`))
	}))
	defer server.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	p := NewOpenAIProviderWithConfig(cfg, "test-key", "gpt-4o")

	_, err := p.Translate(context.Background(), "Hello", "en", "de")
	assert.Error(t, err)
}

func TestOpenAIProvider_MissingKey(t *testing.T) {
	p := NewOpenAIProvider("", "")

	_, err := p.Translate(context.Background(), "Hello", "en", "de")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not found")
	assert.Equal(t, "openai", p.Name())
}
