package render

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"sort"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdownConverter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"markdown": markdown,
		"display":  display,
		"join":     strings.Join,
	}
}

// markdown converts s to HTML. Raw HTML in s is not passed through.
func markdown(s string) template.HTML {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := markdownConverter.Convert([]byte(s), &buf); err != nil {
		return template.HTML("<p>" + html.EscapeString(s) + "</p>")
	}
	return template.HTML(buf.String())
}

// display formats a value decoded from a JSON data file for reading
func display(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, display(item))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+display(val[k]))
		}
		return strings.Join(parts, "; ")
	default:
		return fmt.Sprint(val)
	}
}
