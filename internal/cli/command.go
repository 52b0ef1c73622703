package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/dailyread/internal"
	"codeberg.org/snonux/dailyread/internal/config"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dailyread",
		Short: "Daily reading digest for e-reader and desktop",
		Long: `dailyread collects the newest arXiv papers, trending GitHub repositories,
mental models, quotes, vocabulary and song lyrics and renders them into two
static HTML pages: kindle.html for an e-ink reader and desktop.html for a
desktop browser.

Long English words in paper titles get IPA annotations; abstracts,
repository descriptions and English quotes get a translation.

Examples:
  dailyread                          # Regenerate output/kindle.html and output/desktop.html
  dailyread --skip-papers --watch    # Local data only, regenerate on every change
  dailyread --translator openai      # Translate with OpenAI (needs OPENAI_API_KEY)
  dailyread --archive                # Keep the previous output under archive/`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.dailyread.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Output directory")
	cmd.Flags().StringVarP(&flags.DataDir, "data", "d", flags.DataDir, "Data directory (mental_models.json, quotes.json, words.json, lyrics/)")
	cmd.Flags().StringVar(&flags.TemplateDir, "templates", "", "Directory with kindle.html/desktop.html overriding the built-in templates")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&flags.Watch, "watch", false, "Keep running and regenerate when data files or stylesheets change (directories created later are picked up inside the data directory)")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the existing output directory to archive/ before rendering")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")

	// Translation flags
	cmd.Flags().StringVar(&flags.Translator, "translator", flags.Translator, "Translation provider: google, openai, gemini, anthropic or none")
	cmd.Flags().StringVar(&flags.SourceLang, "source-lang", flags.SourceLang, "Language code of the source text")
	cmd.Flags().StringVar(&flags.TargetLang, "target-lang", flags.TargetLang, "Language code translations are made into")
	cmd.Flags().StringVar(&flags.TranslationModel, "translation-model", "", "Model for the openai, gemini and anthropic translators (default: provider specific)")

	// Phonetic flags
	cmd.Flags().StringVar(&flags.Phonetic, "phonetic", flags.Phonetic, "IPA provider for paper titles: espeak, openai, dict or none")

	// Source flags
	cmd.Flags().StringSliceVar(&flags.PaperCategories, "paper-categories", flags.PaperCategories, "arXiv categories to follow")
	cmd.Flags().IntVar(&flags.MaxPapers, "max-papers", flags.MaxPapers, "Maximum number of papers")
	cmd.Flags().StringVar(&flags.Topic, "topic", flags.Topic, "GitHub topic for trending repositories")
	cmd.Flags().IntVar(&flags.Days, "days", flags.Days, "Only repositories created within this many days")
	cmd.Flags().IntVar(&flags.MaxRepos, "max-repos", flags.MaxRepos, "Maximum number of repositories")
	cmd.Flags().BoolVar(&flags.SkipPapers, "skip-papers", false, "Skip the arXiv paper feed")
	cmd.Flags().BoolVar(&flags.SkipRepos, "skip-repos", false, "Skip the GitHub repository search")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

// flagKeys maps flag names to configuration keys
var flagKeys = map[string]string{
	"output":            "output.directory",
	"data":              "data.directory",
	"templates":         "output.templates",
	"log-level":         "log.level",
	"translator":        "translation.provider",
	"source-lang":       "translation.source_lang",
	"target-lang":       "translation.target_lang",
	"translation-model": "translation.model",
	"phonetic":          "phonetic.provider",
	"paper-categories":  "papers.categories",
	"max-papers":        "papers.max_results",
	"topic":             "repos.topic",
	"days":              "repos.days",
	"max-repos":         "repos.max_results",
	"skip-papers":       "papers.skip",
	"skip-repos":        "repos.skip",
}

func bindFlagsToViper(cmd *cobra.Command) {
	for name, key := range flagKeys {
		_ = viper.BindPFlag(key, cmd.Flags().Lookup(name))
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".dailyread" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dailyread")
	}

	// Environment variables, e.g. DAILYREAD_TRANSLATION_PROVIDER
	viper.SetEnvPrefix("DAILYREAD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// BuildConfig assembles the run configuration from flags, config file and
// environment, filling in API keys for the selected providers
func BuildConfig() config.Config {
	cfg := config.FromViper(viper.GetViper())

	if cfg.Translation.APIKey == "" {
		cfg.Translation.APIKey = GetAPIKey(cfg.Translation.Provider)
	}
	if cfg.Phonetic.APIKey == "" && cfg.Phonetic.Provider == "openai" {
		cfg.Phonetic.APIKey = GetOpenAIKey()
	}

	return cfg
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	return GetAPIKey("openai")
}

// apiKeyEnv names the environment variable holding each provider's key
var apiKeyEnv = map[string]string{
	"openai":    "OPENAI_API_KEY",
	"gemini":    "GEMINI_API_KEY",
	"anthropic": "ANTHROPIC_API_KEY",
}

// GetAPIKey retrieves the API key of provider from environment or config
func GetAPIKey(provider string) string {
	// First check environment variable
	if env, ok := apiKeyEnv[provider]; ok {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}

	// Then check config file
	return viper.GetString("keys." + provider)
}
