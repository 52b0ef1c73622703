package render

import (
	"errors"
	"html/template"
	"io/fs"
	"os"
	"time"

	"github.com/phuslu/log"

	"codeberg.org/snonux/dailyread/internal/content"
)

// TimestampFormat is how generated_at is shown in both documents
const TimestampFormat = "2006-01-02 15:04:05"

// Collected holds the output of every source for one run
type Collected struct {
	Papers       []content.Paper
	Repositories []content.Repository
	MentalModels []content.MentalModel
	Quotes       []content.Quote
	Lyrics       []content.LyricSheet
	Words        []content.VocabularyWord
}

// Context is the data handed, unmodified, to both templates
type Context map[string]any

// NewContext assembles the rendering context. The stylesheets are inlined
// verbatim.
func NewContext(c Collected, generatedAt time.Time, kindleCSS, desktopCSS string) Context {
	return Context{
		"papers":        c.Papers,
		"repositories":  c.Repositories,
		"mental_models": c.MentalModels,
		"quotes":        c.Quotes,
		"lyrics":        c.Lyrics,
		"words":         c.Words,
		"generated_at":  generatedAt.Format(TimestampFormat),
		"kindle_css":    template.CSS(kindleCSS),
		"desktop_css":   template.CSS(desktopCSS),
	}
}

// ReadStylesheet returns the text of the stylesheet at path, or "" when it
// cannot be read.
func ReadStylesheet(path string) string {
	if path == "" {
		return ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("stylesheet not found, inlining nothing")
		} else {
			log.Warn().Str("path", path).Err(err).Msg("failed to read stylesheet")
		}
		return ""
	}
	return string(data)
}
