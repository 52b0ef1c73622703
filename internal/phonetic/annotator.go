package phonetic

import (
	"context"
	"fmt"
	"html"
	"html/template"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/phuslu/log"
)

// DefaultMinLength is the longest word left without annotation
const DefaultMinLength = 7

// Annotator decorates long words with <sup class="ipa"> transcriptions
type Annotator struct {
	transcriber Transcriber
	minLength   int
}

// NewAnnotator creates an annotator. A nil transcriber disables annotation.
func NewAnnotator(transcriber Transcriber, minLength int) *Annotator {
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	return &Annotator{
		transcriber: transcriber,
		minLength:   minLength,
	}
}

// AnnotateWord returns word followed by its IPA annotation when the word has
// more than minLength letters and a transcription is available. Otherwise
// the word is returned unchanged.
func (a *Annotator) AnnotateWord(ctx context.Context, word string) string {
	return a.annotate(ctx, word, func(s string) string { return s })
}

// AnnotateText annotates every whitespace-delimited token of text and joins
// the tokens with single spaces.
func (a *Annotator) AnnotateText(ctx context.Context, text string) string {
	return a.annotateTokens(ctx, text, func(s string) string { return s })
}

// AnnotateHTML is AnnotateText with every token HTML-escaped, so the result
// can be placed in a template verbatim.
func (a *Annotator) AnnotateHTML(ctx context.Context, text string) template.HTML {
	return template.HTML(a.annotateTokens(ctx, text, html.EscapeString))
}

func (a *Annotator) annotateTokens(ctx context.Context, text string, escape func(string) string) string {
	tokens := strings.Fields(text)
	for i, token := range tokens {
		tokens[i] = a.annotate(ctx, token, escape)
	}
	return strings.Join(tokens, " ")
}

func (a *Annotator) annotate(ctx context.Context, word string, escape func(string) string) (result string) {
	result = escape(word)
	if a == nil || a.transcriber == nil {
		return result
	}

	cleaned := lettersOnly(word)
	if utf8.RuneCountInString(cleaned) <= a.minLength {
		return result
	}

	defer func() {
		if r := recover(); r != nil {
			log.Warn().Str("word", word).Str("panic", fmt.Sprint(r)).Msg("phonetic transcription panicked")
			result = escape(word)
		}
	}()

	lower := strings.ToLower(cleaned)
	ipa, err := a.transcriber.Transcribe(ctx, lower)
	if err != nil {
		log.Debug().Str("word", lower).Err(err).Msg("no phonetic transcription")
		return result
	}

	ipa = strings.TrimSpace(ipa)
	if ipa == "" || ipa == lower {
		return result
	}

	return result + `<sup class="ipa">/` + escape(ipa) + `/</sup>`
}

func lettersOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, s)
}
