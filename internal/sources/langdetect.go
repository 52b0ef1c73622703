package sources

import (
	"unicode"

	"golang.org/x/text/language"

	"codeberg.org/snonux/dailyread/internal/content"
)

// chineseRatio is the share of Han characters above which text counts as Chinese
const chineseRatio = 0.3

// DetectLanguage classifies text as content.LangChinese when more than 30% of
// its non-space characters are Han ideographs and as content.LangEnglish
// otherwise. Empty text is English.
func DetectLanguage(text string) string {
	han, total := 0, 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.Is(unicode.Han, r) {
			han++
		}
	}

	if total == 0 {
		return content.LangEnglish
	}
	if float64(han)/float64(total) > chineseRatio {
		return content.LangChinese
	}
	return content.LangEnglish
}

// normalizeLanguage maps a declared BCP 47 tag onto the two quote languages.
// It returns "" for a valid tag naming any other language and an error when
// the tag cannot be parsed.
func normalizeLanguage(declared string) (string, error) {
	tag, err := language.Parse(declared)
	if err != nil {
		return "", err
	}

	base, _ := tag.Base()
	switch base.String() {
	case content.LangChinese:
		return content.LangChinese, nil
	case content.LangEnglish:
		return content.LangEnglish, nil
	default:
		return "", nil
	}
}
