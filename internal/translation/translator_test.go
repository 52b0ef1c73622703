package translation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/dailyread/internal/config"
	"codeberg.org/snonux/dailyread/internal/testutil"
)

func longText(sentences int) string {
	sentence := "Large language models are trained on vast corpora of text."
	return strings.TrimSpace(strings.Repeat(sentence+" ", sentences))
}

func TestTranslate_EmptyInputMakesNoCall(t *testing.T) {
	mock := &testutil.MockTranslator{}
	tr := New(mock)

	for _, text := range []string{"", "   ", "\n\t "} {
		assert.Equal(t, "", tr.Translate(context.Background(), text, "en", "zh-CN"))
	}
	assert.Equal(t, 0, mock.CallCount())
}

func TestTranslate_ShortInputSingleCall(t *testing.T) {
	mock := &testutil.MockTranslator{
		Translations: map[string]string{"Hello world.": "你好，世界。"},
	}
	tr := New(mock)

	got := tr.Translate(context.Background(), "Hello world.", "en", "zh-CN")

	assert.Equal(t, "你好，世界。", got)
	assert.Equal(t, 1, mock.CallCount())
}

func TestTranslate_ExactlyAtLimitSingleCall(t *testing.T) {
	mock := &testutil.MockTranslator{}
	tr := New(mock)

	text := strings.Repeat("x", DefaultMaxChars)
	got := tr.Translate(context.Background(), text, "en", "zh-CN")

	assert.NotEmpty(t, got)
	assert.Equal(t, 1, mock.CallCount())
	assert.Equal(t, text, mock.Calls[0])
}

func TestTranslate_LongInputIsChunked(t *testing.T) {
	mock := &testutil.MockTranslator{}
	tr := New(mock)

	text := longText(120) // ~7000 runes
	got := tr.Translate(context.Background(), text, "en", "zh-CN")

	require.GreaterOrEqual(t, mock.CallCount(), 2)
	for _, chunk := range mock.Calls {
		assert.Less(t, len([]rune(chunk)), DefaultMaxChars)
	}

	// Results are joined with single spaces in chunk order
	parts := make([]string, 0, len(mock.Calls))
	for _, chunk := range mock.Calls {
		parts = append(parts, "[zh-CN] "+strings.ToUpper(chunk))
	}
	assert.Equal(t, strings.Join(parts, " "), got)
	assert.Equal(t, text, strings.Join(mock.Calls, " "))
}

func TestTranslate_ChunkFailureDiscardsEverything(t *testing.T) {
	text := longText(120)
	chunks := Chunk(text, DefaultMaxChars)
	require.GreaterOrEqual(t, len(chunks), 2)

	mock := &testutil.MockTranslator{
		Errors: map[string]error{chunks[1]: errors.New("quota exceeded")},
	}
	tr := New(mock)

	got := tr.Translate(context.Background(), text, "en", "zh-CN")

	assert.Equal(t, "", got)
	assert.Equal(t, 2, mock.CallCount(), "translation stops at the failing chunk")
}

func TestTranslate_ProviderErrorReturnsEmpty(t *testing.T) {
	mock := &testutil.MockTranslator{Err: errors.New("connection refused")}
	tr := New(mock)

	assert.Equal(t, "", tr.Translate(context.Background(), "Hello.", "en", "zh-CN"))
	assert.Equal(t, 1, mock.CallCount())
}

func TestTranslate_NilProviderAndNilTranslator(t *testing.T) {
	assert.Equal(t, "", New(nil).Translate(context.Background(), "Hello.", "en", "zh-CN"))

	var tr *Translator
	assert.Equal(t, "", tr.Translate(context.Background(), "Hello.", "en", "zh-CN"))
	assert.Equal(t, "", tr.TranslateEnglish(context.Background(), "Hello."))
	assert.Equal(t, "", tr.Target())
}

func TestTranslateEnglish_UsesConfiguredPair(t *testing.T) {
	mock := &testutil.MockTranslator{}
	tr := New(mock, WithLanguages("en", "ja"))

	got := tr.TranslateEnglish(context.Background(), "cat")

	assert.Equal(t, "[ja] CAT", got)
	assert.Equal(t, "ja", tr.Target())
}

func TestWithMaxChars(t *testing.T) {
	mock := &testutil.MockTranslator{}
	tr := New(mock, WithMaxChars(25))

	tr.Translate(context.Background(), "One sentence here. Another sentence here.", "en", "de")

	assert.Equal(t, 2, mock.CallCount())
	assert.Equal(t, []string{"One sentence here.", "Another sentence here."}, mock.Calls)
}

func TestWithBreaker_FailsFastAfterConsecutiveFailures(t *testing.T) {
	mock := &testutil.MockTranslator{Err: errors.New("503")}
	tr := New(mock, WithBreaker(2))

	for i := 0; i < 5; i++ {
		assert.Equal(t, "", tr.Translate(context.Background(), "Hello.", "en", "zh-CN"))
	}

	assert.Equal(t, 2, mock.CallCount(), "open breaker should stop provider calls")
}

func TestWithBreaker_ZeroDisables(t *testing.T) {
	mock := &testutil.MockTranslator{Err: errors.New("503")}
	tr := New(mock, WithBreaker(2), WithBreaker(0))

	for i := 0; i < 4; i++ {
		tr.Translate(context.Background(), "Hello.", "en", "zh-CN")
	}

	assert.Equal(t, 4, mock.CallCount())
}

func TestWithRateLimit_CancelledContext(t *testing.T) {
	mock := &testutil.MockTranslator{}
	tr := New(mock, WithRateLimit(0.001))

	// The first call consumes the only token
	assert.NotEmpty(t, tr.Translate(context.Background(), "first", "en", "de"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Equal(t, "", tr.Translate(ctx, "second", "en", "de"))
	assert.Equal(t, 1, mock.CallCount())
}

type slowProvider struct{}

func (slowProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (slowProvider) Name() string { return "slow" }

func TestWithTimeout_BoundsProviderCall(t *testing.T) {
	tr := New(slowProvider{}, WithTimeout(20*time.Millisecond))

	start := time.Now()
	got := tr.Translate(context.Background(), "Hello.", "en", "de")

	assert.Equal(t, "", got)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default().Translation

	tr, err := NewFromConfig(cfg, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "google", tr.provider.Name())
	assert.Equal(t, 4500, tr.maxChars)
	assert.Equal(t, "zh-CN", tr.Target())
	assert.NotNil(t, tr.breaker)

	cfg.Provider = "none"
	tr, err = NewFromConfig(cfg, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "", tr.TranslateEnglish(context.Background(), "Hello."))

	cfg.Provider = "babelfish"
	_, err = NewFromConfig(cfg, time.Second)
	assert.Error(t, err)
}
