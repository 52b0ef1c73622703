package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/phuslu/log"
)

// Output document names. Each is also the name of its template.
const (
	KindleDocument  = "kindle.html"
	DesktopDocument = "desktop.html"
)

//go:embed templates/*.html
var embedded embed.FS

// Renderer writes the output documents
type Renderer struct {
	outputDir   string
	templateDir string
	documents   []string
}

// NewRenderer creates a renderer writing to outputDir. When templateDir is
// not empty, templates found there override the embedded defaults.
func NewRenderer(outputDir, templateDir string) *Renderer {
	return &Renderer{
		outputDir:   outputDir,
		templateDir: templateDir,
		documents:   []string{KindleDocument, DesktopDocument},
	}
}

// Documents returns the names of the documents RenderAll produces
func (r *Renderer) Documents() []string {
	return append([]string(nil), r.documents...)
}

// RenderAll renders every document with the same data and returns the paths
// written. A document that fails is logged and skipped.
func (r *Renderer) RenderAll(data Context) []string {
	var written []string
	for _, name := range r.documents {
		path, err := r.Render(name, data)
		if err != nil {
			log.Error().Str("document", name).Err(err).Msg("failed to render document")
			continue
		}
		log.Info().Str("path", path).Msg("document written")
		written = append(written, path)
	}
	return written
}

// Render renders the named document into the output directory. Nothing is
// written unless the template executes successfully.
func (r *Renderer) Render(name string, data Context) (string, error) {
	tmpl, err := r.load(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(r.outputDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// load parses the named template, preferring the template directory
func (r *Renderer) load(name string) (*template.Template, error) {
	source, origin, err := r.source(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(templateFuncs()).Parse(string(source))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s (%s): %w", name, origin, err)
	}
	return tmpl, nil
}

func (r *Renderer) source(name string) ([]byte, string, error) {
	if r.templateDir != "" {
		path := filepath.Join(r.templateDir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("failed to read template %s: %w", path, err)
		}
	}

	data, err := embedded.ReadFile("templates/" + name)
	if err != nil {
		return nil, "", fmt.Errorf("template %s not found (checked template directory and embedded)", name)
	}
	return data, "embedded", nil
}
