package phonetic

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ESpeakTranscriber shells out to espeak-ng for IPA output
type ESpeakTranscriber struct {
	voice   string
	command string
}

// NewESpeakTranscriber creates a transcriber for the given espeak voice
func NewESpeakTranscriber(voice string) *ESpeakTranscriber {
	if voice == "" {
		voice = "en-us"
	}
	return &ESpeakTranscriber{
		voice:   voice,
		command: "espeak-ng",
	}
}

// Transcribe runs `espeak-ng -q --ipa -v <voice> <word>`
func (e *ESpeakTranscriber) Transcribe(ctx context.Context, word string) (string, error) {
	if word == "" {
		return "", fmt.Errorf("word cannot be empty")
	}

	cmd := exec.CommandContext(ctx, e.command, "-q", "--ipa", "-v", e.voice, word)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("espeak-ng failed: %w", err)
	}

	ipa := strings.Join(strings.Fields(string(output)), " ")
	if ipa == "" {
		return "", fmt.Errorf("espeak-ng returned no transcription for %q", word)
	}
	return ipa, nil
}
