package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/phuslu/log"

	"codeberg.org/snonux/dailyread/internal/content"
	"codeberg.org/snonux/dailyread/internal/translation"
)

// LoadMentalModels reads the JSON array of mental models at path
func LoadMentalModels(path string) []content.MentalModel {
	return Collect("mental models", func() ([]content.MentalModel, error) {
		return readJSONArray[content.MentalModel](path)
	})
}

// LoadVocabulary reads the JSON array of vocabulary words at path
func LoadVocabulary(path string) []content.VocabularyWord {
	return Collect("vocabulary", func() ([]content.VocabularyWord, error) {
		return readJSONArray[content.VocabularyWord](path)
	})
}

// rawQuote is a quote as written in the data file
type rawQuote struct {
	Content  string `json:"content"`
	Author   string `json:"author"`
	Language string `json:"language"`
}

// LoadQuotes reads the JSON array of quotes at path. English quotes are
// translated with translator; others keep an empty translation.
func LoadQuotes(ctx context.Context, path string, translator *translation.Translator) []content.Quote {
	return Collect("quotes", func() ([]content.Quote, error) {
		raw, err := readJSONArray[rawQuote](path)
		if err != nil {
			return nil, err
		}

		quotes := make([]content.Quote, 0, len(raw))
		for _, r := range raw {
			quotes = append(quotes, buildQuote(ctx, r, translator))
		}
		return quotes, nil
	})
}

func buildQuote(ctx context.Context, r rawQuote, translator *translation.Translator) content.Quote {
	author := strings.TrimSpace(r.Author)
	if author == "" {
		author = content.DefaultQuoteAuthor
	}

	// A quote declared in a third language is displayed but never sent to
	// the translator as English.
	lang, foreign := "", false
	if declared := strings.TrimSpace(r.Language); declared != "" {
		normalized, err := normalizeLanguage(declared)
		switch {
		case err != nil:
			log.Debug().Str("language", declared).Err(err).Msg("unparsable quote language, detecting")
		case normalized == "":
			foreign = true
		default:
			lang = normalized
		}
	}
	if lang == "" {
		lang = DetectLanguage(r.Content)
	}

	q := content.Quote{
		Content:  r.Content,
		Author:   author,
		Language: lang,
	}
	if lang == content.LangEnglish && !foreign {
		q.Translation = translator.TranslateEnglish(ctx, r.Content)
	}
	return q
}

// LoadLyrics reads every .txt file in dir as one song, sorted by file name
func LoadLyrics(dir string) []content.LyricSheet {
	return Collect("lyrics", func() ([]content.LyricSheet, error) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read lyrics directory: %w", err)
		}

		var sheets []content.LyricSheet
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
				continue
			}

			data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
			}

			text := string(data)
			lines := strings.Split(text, "\n")
			for i, line := range lines {
				lines[i] = strings.TrimSuffix(line, "\r")
			}

			sheets = append(sheets, content.LyricSheet{
				Name:  strings.TrimSuffix(entry.Name(), ".txt"),
				Text:  text,
				Lines: lines,
			})
		}
		return sheets, nil
	})
}

func readJSONArray[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}
