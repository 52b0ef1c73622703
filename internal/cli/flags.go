package cli

import "codeberg.org/snonux/dailyread/internal/config"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	OutputDir   string
	DataDir     string
	TemplateDir string
	LogLevel    string
	Watch       bool
	Archive     bool
	ListModels  bool

	// Translation flags
	Translator       string
	SourceLang       string
	TargetLang       string
	TranslationModel string

	// Phonetic flags
	Phonetic string

	// Source flags
	PaperCategories []string
	MaxPapers       int
	Topic           string
	Days            int
	MaxRepos        int
	SkipPapers      bool
	SkipRepos       bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	d := config.Default()
	return &Flags{
		OutputDir:       d.OutputDir,
		DataDir:         d.DataDir,
		LogLevel:        d.LogLevel,
		Translator:      d.Translation.Provider,
		SourceLang:      d.Translation.SourceLang,
		TargetLang:      d.Translation.TargetLang,
		Phonetic:        d.Phonetic.Provider,
		PaperCategories: d.Papers.Categories,
		MaxPapers:       d.Papers.MaxResults,
		Topic:           d.Repos.Topic,
		Days:            d.Repos.Days,
		MaxRepos:        d.Repos.MaxResults,
	}
}
