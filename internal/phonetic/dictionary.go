package phonetic

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// DictionaryTranscriber looks words up in a fixed word -> IPA table
type DictionaryTranscriber struct {
	entries map[string]string
}

// NewDictionaryTranscriber creates a transcriber over entries. Keys are
// matched case-insensitively.
func NewDictionaryTranscriber(entries map[string]string) *DictionaryTranscriber {
	d := &DictionaryTranscriber{entries: make(map[string]string, len(entries))}
	for word, ipa := range entries {
		d.entries[strings.ToLower(word)] = ipa
	}
	return d
}

// LoadDictionary reads a JSON object of word -> IPA pairs
func LoadDictionary(path string) (*DictionaryTranscriber, error) {
	if path == "" {
		return nil, fmt.Errorf("phonetic dictionary path not configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read phonetic dictionary: %w", err)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse phonetic dictionary: %w", err)
	}

	return NewDictionaryTranscriber(entries), nil
}

// Transcribe returns the stored transcription for word
func (d *DictionaryTranscriber) Transcribe(_ context.Context, word string) (string, error) {
	ipa, ok := d.entries[strings.ToLower(word)]
	if !ok {
		return "", fmt.Errorf("no transcription for %q", word)
	}
	return ipa, nil
}

// Len returns the number of known words
func (d *DictionaryTranscriber) Len() int {
	return len(d.entries)
}
