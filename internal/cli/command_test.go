package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestCreateRootCommand(t *testing.T) {
	resetViper(t)

	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "dailyread" {
		t.Errorf("Expected Use to be 'dailyread', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Daily reading digest") {
		t.Errorf("Expected Short description to contain 'Daily reading digest'")
	}

	// Test that flags are set up
	flagNames := []string{
		"config", "output", "data", "templates", "log-level", "watch", "archive",
		"list-models", "translator", "source-lang", "target-lang", "translation-model",
		"phonetic", "paper-categories", "max-papers", "topic", "days", "max-repos",
		"skip-papers", "skip-repos",
	}

	for _, name := range flagNames {
		t.Run("flag_"+name, func(t *testing.T) {
			var flag *pflag.Flag
			if name == "config" {
				flag = cmd.PersistentFlags().Lookup(name)
			} else {
				flag = cmd.Flags().Lookup(name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}

	// Every bound flag must exist
	for name := range flagKeys {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flagKeys names unknown flag %s", name)
		}
	}
}

func TestSetupFlags(t *testing.T) {
	resetViper(t)

	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	outputFlag := cmd.Flags().Lookup("output")
	if outputFlag == nil {
		t.Fatal("output flag not found")
	}
	if outputFlag.DefValue != "output" {
		t.Errorf("Expected default output dir to be output, got %s", outputFlag.DefValue)
	}
	if outputFlag.Shorthand != "o" {
		t.Errorf("Expected output shorthand o, got %s", outputFlag.Shorthand)
	}

	translatorFlag := cmd.Flags().Lookup("translator")
	if translatorFlag == nil {
		t.Fatal("translator flag not found")
	}
	if translatorFlag.DefValue != "google" {
		t.Errorf("Expected default translator to be google, got %s", translatorFlag.DefValue)
	}
}

func TestInitConfig(t *testing.T) {
	resetViper(t)

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "test-config.yaml")
	content := `output:
  directory: /test/output
translation:
  provider: anthropic
  max_chars: 2000
papers:
  categories: [math.CO, cs.DS]
timeout: 10s
keys:
  anthropic: file-key`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	t.Setenv("ANTHROPIC_API_KEY", "")
	InitConfig(cfgPath)

	cfg := BuildConfig()

	if cfg.OutputDir != "/test/output" {
		t.Errorf("Expected OutputDir /test/output, got %s", cfg.OutputDir)
	}
	if cfg.Translation.Provider != "anthropic" {
		t.Errorf("Expected provider anthropic, got %s", cfg.Translation.Provider)
	}
	if cfg.Translation.MaxChars != 2000 {
		t.Errorf("Expected max_chars 2000, got %d", cfg.Translation.MaxChars)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Expected timeout 10s, got %v", cfg.Timeout)
	}
	if strings.Join(cfg.Papers.Categories, ",") != "math.CO,cs.DS" {
		t.Errorf("Expected categories math.CO,cs.DS, got %v", cfg.Papers.Categories)
	}
	if cfg.Translation.APIKey != "file-key" {
		t.Errorf("Expected API key from config file, got %q", cfg.Translation.APIKey)
	}

	// Untouched values keep their defaults
	if cfg.DataDir != "data" {
		t.Errorf("Expected default DataDir data, got %s", cfg.DataDir)
	}
	if cfg.Phonetic.MinLength != 7 {
		t.Errorf("Expected default MinLength 7, got %d", cfg.Phonetic.MinLength)
	}
}

func TestInitConfig_Environment(t *testing.T) {
	resetViper(t)

	t.Setenv("DAILYREAD_REPOS_TOPIC", "rust")
	InitConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := BuildConfig()
	if cfg.Repos.Topic != "rust" {
		t.Errorf("Expected topic from environment, got %s", cfg.Repos.Topic)
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	resetViper(t)

	flags := NewFlags()
	cmd := CreateRootCommand(flags)
	InitConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	if err := cmd.ParseFlags([]string{"--output", "/tmp/x", "--skip-papers", "--max-repos", "3", "--paper-categories", "cs.RO"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	cfg := BuildConfig()
	if cfg.OutputDir != "/tmp/x" {
		t.Errorf("Expected OutputDir /tmp/x, got %s", cfg.OutputDir)
	}
	if !cfg.SkipPapers {
		t.Error("Expected SkipPapers to be set")
	}
	if cfg.Repos.MaxResults != 3 {
		t.Errorf("Expected MaxResults 3, got %d", cfg.Repos.MaxResults)
	}
	if len(cfg.Papers.Categories) != 1 || cfg.Papers.Categories[0] != "cs.RO" {
		t.Errorf("Expected categories [cs.RO], got %v", cfg.Papers.Categories)
	}
}

func TestGetAPIKey(t *testing.T) {
	resetViper(t)

	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("GEMINI_API_KEY", "")
	viper.Set("keys.openai", "config-key")
	viper.Set("keys.gemini", "gemini-config-key")

	if got := GetOpenAIKey(); got != "env-key" {
		t.Errorf("Expected environment key first, got %q", got)
	}
	if got := GetAPIKey("gemini"); got != "gemini-config-key" {
		t.Errorf("Expected config key fallback, got %q", got)
	}
	if got := GetAPIKey("google"); got != "" {
		t.Errorf("Expected no key for google, got %q", got)
	}
}

func TestBuildConfig_PhoneticKey(t *testing.T) {
	resetViper(t)
	InitConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	t.Setenv("OPENAI_API_KEY", "env-key")
	viper.Set("phonetic.provider", "openai")

	cfg := BuildConfig()
	if cfg.Phonetic.APIKey != "env-key" {
		t.Errorf("Expected phonetic key from environment, got %q", cfg.Phonetic.APIKey)
	}
	if cfg.Translation.APIKey != "" {
		t.Errorf("google translation needs no key, got %q", cfg.Translation.APIKey)
	}
}
