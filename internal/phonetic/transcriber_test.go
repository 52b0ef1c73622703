package phonetic

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/dailyread/internal/config"
	"codeberg.org/snonux/dailyread/internal/testutil"
)

func TestNewTranscriber(t *testing.T) {
	dictPath := filepath.Join(t.TempDir(), "ipa.json")
	testutil.CreateTestFile(t, dictPath, []byte(`{"Algorithm": "ˈælɡəˌrɪðəm"}`))

	tests := []struct {
		name    string
		cfg     config.PhoneticConfig
		wantErr bool
		wantNil bool
	}{
		{"espeak", config.PhoneticConfig{Provider: "espeak"}, false, false},
		{"default is espeak", config.PhoneticConfig{}, false, false},
		{"openai without key", config.PhoneticConfig{Provider: "openai"}, true, true},
		{"openai with key", config.PhoneticConfig{Provider: "openai", APIKey: "test-key"}, false, false},
		{"dict", config.PhoneticConfig{Provider: "dict", Dictionary: dictPath}, false, false},
		{"dict missing file", config.PhoneticConfig{Provider: "dict", Dictionary: "/nonexistent/ipa.json"}, true, true},
		{"none", config.PhoneticConfig{Provider: "none"}, false, true},
		{"unknown", config.PhoneticConfig{Provider: "festival"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewTranscriber(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewTranscriber() error = %v, wantErr %v", err, tt.wantErr)
			}
			if (tr == nil) != tt.wantNil {
				t.Errorf("NewTranscriber() = %v, wantNil %v", tr, tt.wantNil)
			}
		})
	}
}

func TestDictionaryTranscriber(t *testing.T) {
	dictPath := filepath.Join(t.TempDir(), "ipa.json")
	testutil.CreateTestFile(t, dictPath, []byte(`{"Algorithm": "ˈælɡəˌrɪðəm", "network": "ˈnɛtˌwɝk"}`))

	dict, err := LoadDictionary(dictPath)
	if err != nil {
		t.Fatalf("LoadDictionary failed: %v", err)
	}

	if dict.Len() != 2 {
		t.Errorf("Len() = %d, want 2", dict.Len())
	}

	ipa, err := dict.Transcribe(context.Background(), "algorithm")
	if err != nil || ipa != "ˈælɡəˌrɪðəm" {
		t.Errorf("Transcribe(algorithm) = %q, %v", ipa, err)
	}

	if _, err := dict.Transcribe(context.Background(), "missing"); err == nil {
		t.Error("expected error for unknown word")
	}
}

func TestLoadDictionary_Errors(t *testing.T) {
	corrupt := filepath.Join(t.TempDir(), "corrupt.json")
	testutil.CreateTestFile(t, corrupt, []byte(`{"algorithm": `))

	for _, path := range []string{"", "/nonexistent/ipa.json", corrupt} {
		if _, err := LoadDictionary(path); err == nil {
			t.Errorf("LoadDictionary(%q) expected error", path)
		}
	}
}

func TestESpeakTranscriber_MissingBinary(t *testing.T) {
	e := NewESpeakTranscriber("")
	e.command = "espeak-ng-does-not-exist"

	if _, err := e.Transcribe(context.Background(), "algorithm"); err == nil {
		t.Error("expected error when espeak-ng is missing")
	}
}

func TestESpeakTranscriber_EmptyWord(t *testing.T) {
	if _, err := NewESpeakTranscriber("en-us").Transcribe(context.Background(), ""); err == nil {
		t.Error("expected error for empty word")
	}
}

func TestESpeakTranscriber_Integration(t *testing.T) {
	if _, err := exec.LookPath("espeak-ng"); err != nil {
		t.Skip("Skipping integration test: espeak-ng not installed")
	}

	ipa, err := NewESpeakTranscriber("en-us").Transcribe(context.Background(), "algorithm")
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if ipa == "" || ipa == "algorithm" {
		t.Errorf("unexpected transcription %q", ipa)
	}
}

func TestOpenAITranscriber_NoAPIKey(t *testing.T) {
	tr := NewOpenAITranscriber("", "")

	_, err := tr.Transcribe(context.Background(), "algorithm")
	if err == nil || err.Error() != "OpenAI API key not configured" {
		t.Errorf("Expected 'OpenAI API key not configured' error, got: %v", err)
	}
}

func TestOpenAITranscriber_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	ipa, err := NewOpenAITranscriber(apiKey, "").Transcribe(context.Background(), "algorithm")
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	t.Logf("IPA for 'algorithm': %s", ipa)
}
