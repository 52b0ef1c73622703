package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const googleEndpoint = "https://translate.googleapis.com/translate_a/single"

// GoogleProvider uses the keyless Google Translate web endpoint
type GoogleProvider struct {
	endpoint   string
	httpClient *http.Client
}

// NewGoogleProvider creates a provider for endpoint (the public endpoint
// when empty).
func NewGoogleProvider(endpoint string, timeout time.Duration) *GoogleProvider {
	if endpoint == "" {
		endpoint = googleEndpoint
	}
	return &GoogleProvider{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Translate translates text in a single request
func (g *GoogleProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", source)
	params.Set("tl", target)
	params.Set("dt", "t")
	params.Set("q", text)

	reqURL := g.endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) dailyread")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &APIError{
			Provider:   g.Name(),
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	// The response is a nested array; the first element lists
	// [translated, original, ...] segments.
	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty response")
	}

	var segments [][]any
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("unexpected response shape: %w", err)
	}

	var b strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		if s, ok := segment[0].(string); ok {
			b.WriteString(s)
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("no translation returned")
	}
	return b.String(), nil
}

// Name returns the name of the provider
func (g *GoogleProvider) Name() string {
	return "google"
}
