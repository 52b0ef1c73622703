// Package content defines the records collected from every source and
// consumed once by the renderer.
package content

import (
	"html/template"
	"strings"
	"unicode"
)

// MaxPaperAuthors caps the author list shown per paper
const MaxPaperAuthors = 3

// UnknownLanguage is shown for repositories without a primary language
const UnknownLanguage = "Unknown"

// DefaultQuoteAuthor is used for quotes that name no author
const DefaultQuoteAuthor = "Anonymous"

// Language tags a quote can carry
const (
	LangEnglish = "en"
	LangChinese = "zh"
)

// Paper is a single preprint from the paper feed
type Paper struct {
	Title              string
	TitleIPA           template.HTML // title with phonetic annotations
	Abstract           string
	AbstractTranslated string // empty when translation failed
	Authors            []string
	Published          string // YYYY-MM-DD
	URL                string
	Categories         []string
}

// Repository is a trending code repository
type Repository struct {
	FullName              string
	Stars                 int
	Description           string
	DescriptionTranslated string
	URL                   string
	Language              string
	CreatedAt             string // YYYY-MM-DD
}

// MentalModel is passed through from the data file unmodified
type MentalModel map[string]any

// VocabularyWord is passed through from the data file unmodified
type VocabularyWord map[string]any

// Quote is a single quotation with an optional translation
type Quote struct {
	Content     string `json:"content"`
	Author      string `json:"author"`
	Language    string `json:"language"`
	Translation string `json:"translation"`
}

// LyricSheet is the full text of one song
type LyricSheet struct {
	Name  string
	Text  string
	Lines []string
}

// Anchor returns an id usable for in-page links to this song
func (l LyricSheet) Anchor() string {
	return "song-" + Slug(l.Name)
}

// Slug lower-cases s and replaces everything except letters and digits
// with single dashes.
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
