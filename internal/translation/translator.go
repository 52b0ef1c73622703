package translation

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/phuslu/log"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"codeberg.org/snonux/dailyread/internal/config"
)

const (
	// DefaultMaxChars is the per-call input limit providers are assumed to enforce
	DefaultMaxChars = 4500

	// DefaultTimeout bounds a single provider call
	DefaultTimeout = 30 * time.Second

	breakerOpenTimeout = time.Minute
)

// Translator translates arbitrarily long text through a Provider
type Translator struct {
	provider Provider
	maxChars int
	timeout  time.Duration
	source   string
	target   string
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker
}

// Option configures a Translator
type Option func(*Translator)

// WithMaxChars sets the per-call character limit
func WithMaxChars(n int) Option {
	return func(t *Translator) {
		if n > 0 {
			t.maxChars = n
		}
	}
}

// WithTimeout sets the timeout of a single provider call
func WithTimeout(d time.Duration) Option {
	return func(t *Translator) {
		if d > 0 {
			t.timeout = d
		}
	}
}

// WithLanguages sets the language pair used by TranslateEnglish
func WithLanguages(source, target string) Option {
	return func(t *Translator) {
		if source != "" {
			t.source = source
		}
		if target != "" {
			t.target = target
		}
	}
}

// WithRateLimit spaces provider calls to at most rps per second
func WithRateLimit(rps float64) Option {
	return func(t *Translator) {
		if rps > 0 {
			t.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithBreaker stops calling the provider for a minute after the given
// number of consecutive failures. Zero disables the breaker.
func WithBreaker(failures int) Option {
	return func(t *Translator) {
		if failures <= 0 {
			t.breaker = nil
			return
		}
		name := "translation"
		if t.provider != nil {
			name += "-" + t.provider.Name()
		}
		t.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     breakerOpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= uint32(failures)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("translation breaker changed state")
			},
		})
	}
}

// New creates a Translator for provider. A nil provider yields a
// Translator that always returns "".
func New(provider Provider, opts ...Option) *Translator {
	t := &Translator{
		provider: provider,
		maxChars: DefaultMaxChars,
		timeout:  DefaultTimeout,
		source:   "en",
		target:   "zh-CN",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewFromConfig creates the provider named in cfg and wraps it
func NewFromConfig(cfg config.TranslationConfig, timeout time.Duration) (*Translator, error) {
	provider, err := NewProvider(cfg, timeout)
	if err != nil {
		return nil, err
	}

	return New(provider,
		WithMaxChars(cfg.MaxChars),
		WithTimeout(timeout),
		WithLanguages(cfg.SourceLang, cfg.TargetLang),
		WithRateLimit(cfg.RequestsPerSecond),
		WithBreaker(cfg.BreakerFailures),
	), nil
}

// Translate translates text from source to target. It never fails: empty
// input, a missing provider or any provider error on any chunk yields "".
func (t *Translator) Translate(ctx context.Context, text, source, target string) string {
	if t == nil || t.provider == nil || strings.TrimSpace(text) == "" {
		return ""
	}

	chunks := []string{text}
	if utf8.RuneCountInString(text) > t.maxChars {
		chunks = Chunk(text, t.maxChars)
		log.Debug().Int("chars", utf8.RuneCountInString(text)).Int("chunks", len(chunks)).Msg("splitting text for translation")
	}

	results := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		translated, err := t.call(ctx, chunk, source, target)
		if err != nil {
			log.Warn().
				Str("provider", t.provider.Name()).
				Int("chunk", i+1).
				Int("chunks", len(chunks)).
				Err(err).
				Msg("translation failed")
			return ""
		}
		results = append(results, translated)
	}

	return strings.Join(results, " ")
}

// TranslateEnglish translates text using the configured language pair
func (t *Translator) TranslateEnglish(ctx context.Context, text string) string {
	if t == nil {
		return ""
	}
	return t.Translate(ctx, text, t.source, t.target)
}

// Target returns the configured target language
func (t *Translator) Target() string {
	if t == nil {
		return ""
	}
	return t.target
}

func (t *Translator) call(ctx context.Context, text, source, target string) (string, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	if t.breaker == nil {
		return t.provider.Translate(ctx, text, source, target)
	}

	out, err := t.breaker.Execute(func() (interface{}, error) {
		translated, err := t.provider.Translate(ctx, text, source, target)
		return translated, err
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}
