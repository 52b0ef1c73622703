package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockTranslator is a translation provider double that records every call
type MockTranslator struct {
	Translations map[string]string
	Errors       map[string]error
	// Err fails every call when set
	Err error

	mu    sync.Mutex
	Calls []string
}

// Translate mocks translating text
func (m *MockTranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, text)
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	// Default mock translation
	return fmt.Sprintf("[%s] %s", toLang, strings.ToUpper(text)), nil
}

// Name returns the provider name
func (m *MockTranslator) Name() string {
	return "mock"
}

// CallCount returns how many times Translate was invoked
func (m *MockTranslator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockTranscriber returns canned IPA transcriptions
type MockTranscriber struct {
	Transcriptions map[string]string
	Err            error
	Calls          []string
}

// Transcribe mocks a phonetic lookup
func (m *MockTranscriber) Transcribe(ctx context.Context, word string) (string, error) {
	m.Calls = append(m.Calls, word)

	if m.Err != nil {
		return "", m.Err
	}

	if ipa, ok := m.Transcriptions[word]; ok {
		return ipa, nil
	}

	return "", fmt.Errorf("no transcription for %q", word)
}
