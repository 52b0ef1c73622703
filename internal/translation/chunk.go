package translation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// sentenceSeparator never occurs in real text
const sentenceSeparator = "\x00<SENT>\x00"

// SplitSentences splits text after every ". " boundary. The space after
// the period is consumed; empty units are dropped.
func SplitSentences(text string) []string {
	marked := strings.ReplaceAll(text, ". ", "."+sentenceSeparator)

	var units []string
	for _, unit := range strings.Split(marked, sentenceSeparator) {
		if unit != "" {
			units = append(units, unit)
		}
	}
	return units
}

// Chunk groups the sentences of text into chunks of fewer than limit runes.
// Sentences are re-joined with the single space SplitSentences consumed. A
// sentence that alone exceeds limit is hard-split first, so no chunk is
// longer than limit.
func Chunk(text string, limit int) []string {
	if limit <= 0 {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			chunks = append(chunks, current.String())
		}
		current.Reset()
		currentLen = 0
	}

	for _, unit := range SplitSentences(text) {
		for _, piece := range hardSplit(unit, limit) {
			n := utf8.RuneCountInString(piece)

			if currentLen > 0 && currentLen+1+n < limit {
				current.WriteByte(' ')
				current.WriteString(piece)
				currentLen += 1 + n
				continue
			}

			flush()
			current.WriteString(piece)
			currentLen = n
		}
	}
	flush()

	return chunks
}

// hardSplit cuts s into pieces of at most limit runes, preferring the last
// whitespace before the limit.
func hardSplit(s string, limit int) []string {
	runes := []rune(s)
	if len(runes) <= limit {
		return []string{s}
	}

	var pieces []string
	for len(runes) > limit {
		cut := limit
		skip := 0
		for i := limit; i > 0; i-- {
			if unicode.IsSpace(runes[i]) {
				cut, skip = i, 1
				break
			}
		}
		if piece := string(runes[:cut]); piece != "" {
			pieces = append(pieces, piece)
		}
		runes = runes[cut+skip:]
	}
	if len(runes) > 0 {
		pieces = append(pieces, string(runes))
	}
	return pieces
}
