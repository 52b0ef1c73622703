package config

import (
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// DefaultTimeout bounds every network call made during a run
const DefaultTimeout = 30 * time.Second

// PaperConfig configures the arXiv paper feed
type PaperConfig struct {
	Categories []string
	MaxResults int
	Endpoint   string
}

// RepoConfig configures the GitHub repository search
type RepoConfig struct {
	Topic      string
	Days       int
	MaxResults int
	BaseURL    string // empty means api.github.com
	UserAgent  string
}

// TranslationConfig configures the remote translation capability
type TranslationConfig struct {
	Provider          string // "google", "openai", "gemini", "anthropic" or "none"
	SourceLang        string
	TargetLang        string
	MaxChars          int
	Model             string
	APIKey            string
	Endpoint          string // google provider only
	RequestsPerSecond float64
	BreakerFailures   int
}

// PhoneticConfig configures the IPA annotator
type PhoneticConfig struct {
	Provider   string // "espeak", "openai", "dict" or "none"
	MinLength  int
	Voice      string
	Dictionary string
	Model      string
	APIKey     string
}

// Config holds everything a run needs. It is built once and passed by value.
type Config struct {
	DataDir           string
	OutputDir         string
	TemplateDir       string
	KindleStylesheet  string
	DesktopStylesheet string
	Timeout           time.Duration
	LogLevel          string

	SkipPapers bool
	SkipRepos  bool

	Papers      PaperConfig
	Repos       RepoConfig
	Translation TranslationConfig
	Phonetic    PhoneticConfig
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		DataDir:           "data",
		OutputDir:         "output",
		KindleStylesheet:  filepath.Join("static", "kindle.css"),
		DesktopStylesheet: filepath.Join("static", "desktop.css"),
		Timeout:           DefaultTimeout,
		LogLevel:          "info",
		Papers: PaperConfig{
			Categories: []string{"cs.AI", "cs.CL", "cs.LG"},
			MaxResults: 10,
			Endpoint:   "https://export.arxiv.org/api/query",
		},
		Repos: RepoConfig{
			Topic:      "llm",
			Days:       7,
			MaxResults: 10,
			UserAgent:  "dailyread",
		},
		Translation: TranslationConfig{
			Provider:        "google",
			SourceLang:      "en",
			TargetLang:      "zh-CN",
			MaxChars:        4500,
			Endpoint:        "https://translate.googleapis.com/translate_a/single",
			BreakerFailures: 3,
		},
		Phonetic: PhoneticConfig{
			Provider:  "espeak",
			MinLength: 7,
			Voice:     "en-us",
		},
	}
}

// SetDefaults registers Default() with v so config files and env vars only
// need to name what they change.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("data.directory", d.DataDir)
	v.SetDefault("output.directory", d.OutputDir)
	v.SetDefault("output.templates", d.TemplateDir)
	v.SetDefault("style.kindle", d.KindleStylesheet)
	v.SetDefault("style.desktop", d.DesktopStylesheet)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("log.level", d.LogLevel)

	v.SetDefault("papers.skip", false)
	v.SetDefault("papers.categories", d.Papers.Categories)
	v.SetDefault("papers.max_results", d.Papers.MaxResults)
	v.SetDefault("papers.endpoint", d.Papers.Endpoint)

	v.SetDefault("repos.skip", false)
	v.SetDefault("repos.topic", d.Repos.Topic)
	v.SetDefault("repos.days", d.Repos.Days)
	v.SetDefault("repos.max_results", d.Repos.MaxResults)
	v.SetDefault("repos.base_url", d.Repos.BaseURL)
	v.SetDefault("repos.user_agent", d.Repos.UserAgent)

	v.SetDefault("translation.provider", d.Translation.Provider)
	v.SetDefault("translation.source_lang", d.Translation.SourceLang)
	v.SetDefault("translation.target_lang", d.Translation.TargetLang)
	v.SetDefault("translation.max_chars", d.Translation.MaxChars)
	v.SetDefault("translation.model", d.Translation.Model)
	v.SetDefault("translation.endpoint", d.Translation.Endpoint)
	v.SetDefault("translation.requests_per_second", d.Translation.RequestsPerSecond)
	v.SetDefault("translation.breaker_failures", d.Translation.BreakerFailures)

	v.SetDefault("phonetic.provider", d.Phonetic.Provider)
	v.SetDefault("phonetic.min_length", d.Phonetic.MinLength)
	v.SetDefault("phonetic.voice", d.Phonetic.Voice)
	v.SetDefault("phonetic.dictionary", d.Phonetic.Dictionary)
	v.SetDefault("phonetic.model", d.Phonetic.Model)
}

// FromViper builds a Config from v. Call SetDefaults first.
func FromViper(v *viper.Viper) Config {
	cfg := Config{
		DataDir:           v.GetString("data.directory"),
		OutputDir:         v.GetString("output.directory"),
		TemplateDir:       v.GetString("output.templates"),
		KindleStylesheet:  v.GetString("style.kindle"),
		DesktopStylesheet: v.GetString("style.desktop"),
		Timeout:           v.GetDuration("timeout"),
		LogLevel:          v.GetString("log.level"),
		SkipPapers:        v.GetBool("papers.skip"),
		SkipRepos:         v.GetBool("repos.skip"),
		Papers: PaperConfig{
			Categories: v.GetStringSlice("papers.categories"),
			MaxResults: v.GetInt("papers.max_results"),
			Endpoint:   v.GetString("papers.endpoint"),
		},
		Repos: RepoConfig{
			Topic:      v.GetString("repos.topic"),
			Days:       v.GetInt("repos.days"),
			MaxResults: v.GetInt("repos.max_results"),
			BaseURL:    v.GetString("repos.base_url"),
			UserAgent:  v.GetString("repos.user_agent"),
		},
		Translation: TranslationConfig{
			Provider:          v.GetString("translation.provider"),
			SourceLang:        v.GetString("translation.source_lang"),
			TargetLang:        v.GetString("translation.target_lang"),
			MaxChars:          v.GetInt("translation.max_chars"),
			Model:             v.GetString("translation.model"),
			APIKey:            v.GetString("translation.api_key"),
			Endpoint:          v.GetString("translation.endpoint"),
			RequestsPerSecond: v.GetFloat64("translation.requests_per_second"),
			BreakerFailures:   v.GetInt("translation.breaker_failures"),
		},
		Phonetic: PhoneticConfig{
			Provider:   v.GetString("phonetic.provider"),
			MinLength:  v.GetInt("phonetic.min_length"),
			Voice:      v.GetString("phonetic.voice"),
			Dictionary: v.GetString("phonetic.dictionary"),
			Model:      v.GetString("phonetic.model"),
			APIKey:     v.GetString("phonetic.api_key"),
		},
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Translation.MaxChars <= 0 {
		cfg.Translation.MaxChars = Default().Translation.MaxChars
	}

	return cfg
}

// MentalModelsFile is the JSON array of mental models
func (c Config) MentalModelsFile() string {
	return filepath.Join(c.DataDir, "mental_models.json")
}

// QuotesFile is the JSON array of quotes
func (c Config) QuotesFile() string {
	return filepath.Join(c.DataDir, "quotes.json")
}

// VocabularyFile is the JSON array of vocabulary words
func (c Config) VocabularyFile() string {
	return filepath.Join(c.DataDir, "words.json")
}

// LyricsDir holds one plain-text file per song
func (c Config) LyricsDir() string {
	return filepath.Join(c.DataDir, "lyrics")
}
