package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/phuslu/log"

	"codeberg.org/snonux/dailyread/internal/config"
	"codeberg.org/snonux/dailyread/internal/content"
	"codeberg.org/snonux/dailyread/internal/phonetic"
	"codeberg.org/snonux/dailyread/internal/render"
	"codeberg.org/snonux/dailyread/internal/sources"
	"codeberg.org/snonux/dailyread/internal/translation"
)

// PaperFetcher returns the newest papers, or an empty list on failure
type PaperFetcher interface {
	FetchPapers(ctx context.Context) []content.Paper
}

// RepoFetcher returns trending repositories, or an empty list on failure
type RepoFetcher interface {
	FetchRepositories(ctx context.Context) []content.Repository
}

// Processor regenerates both documents from all sources
type Processor struct {
	cfg        config.Config
	papers     PaperFetcher
	repos      RepoFetcher
	translator *translation.Translator
	annotator  *phonetic.Annotator
	renderer   *render.Renderer
	now        func() time.Time
}

// Option configures a Processor
type Option func(*Processor)

// WithPaperFetcher replaces the arXiv fetcher
func WithPaperFetcher(f PaperFetcher) Option {
	return func(p *Processor) { p.papers = f }
}

// WithRepoFetcher replaces the GitHub fetcher
func WithRepoFetcher(f RepoFetcher) Option {
	return func(p *Processor) { p.repos = f }
}

// WithTranslator replaces the translator built from the configuration
func WithTranslator(t *translation.Translator) Option {
	return func(p *Processor) { p.translator = t }
}

// WithAnnotator replaces the phonetic annotator built from the configuration
func WithAnnotator(a *phonetic.Annotator) Option {
	return func(p *Processor) { p.annotator = a }
}

// WithClock sets the time source used for generated_at
func WithClock(now func() time.Time) Option {
	return func(p *Processor) { p.now = now }
}

// NewProcessor creates a processor for cfg. Components not supplied as
// options are built from cfg; an error means cfg names an unusable provider.
func NewProcessor(cfg config.Config, opts ...Option) (*Processor, error) {
	p := &Processor{
		cfg:      cfg,
		renderer: render.NewRenderer(cfg.OutputDir, cfg.TemplateDir),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.translator == nil {
		t, err := translation.NewFromConfig(cfg.Translation, cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to set up translation: %w", err)
		}
		p.translator = t
	}

	if p.annotator == nil {
		transcriber, err := phonetic.NewTranscriber(cfg.Phonetic)
		if err != nil {
			return nil, fmt.Errorf("failed to set up phonetic annotation: %w", err)
		}
		p.annotator = phonetic.NewAnnotator(transcriber, cfg.Phonetic.MinLength)
	}

	if p.papers == nil {
		p.papers = sources.NewPaperFetcher(cfg.Papers, cfg.Timeout, p.translator, p.annotator)
	}

	if p.repos == nil {
		f, err := sources.NewRepoFetcher(cfg.Repos, cfg.Timeout, p.translator)
		if err != nil {
			return nil, err
		}
		p.repos = f
	}

	return p, nil
}

// Run collects every category, then renders both documents. It never
// aborts: a failing source contributes an empty category.
func (p *Processor) Run(ctx context.Context) Summary {
	start := p.now()
	collected := p.collect(ctx)

	data := render.NewContext(collected,
		p.now(),
		render.ReadStylesheet(p.cfg.KindleStylesheet),
		render.ReadStylesheet(p.cfg.DesktopStylesheet),
	)

	written := p.renderer.RenderAll(data)

	summary := newSummary(collected, written, len(p.renderer.Documents()), p.now().Sub(start))
	log.Info().
		Int("papers", summary.Papers).
		Int("repositories", summary.Repositories).
		Int("documents", len(summary.Documents)).
		Dur("took", summary.Duration).
		Msg("run finished")
	return summary
}

// collect runs the sources one after another
func (p *Processor) collect(ctx context.Context) render.Collected {
	var c render.Collected

	if p.cfg.SkipPapers {
		log.Info().Msg("skipping papers")
		c.Papers = []content.Paper{}
	} else {
		c.Papers = p.papers.FetchPapers(ctx)
	}

	if p.cfg.SkipRepos {
		log.Info().Msg("skipping repositories")
		c.Repositories = []content.Repository{}
	} else {
		c.Repositories = p.repos.FetchRepositories(ctx)
	}

	c.MentalModels = sources.LoadMentalModels(p.cfg.MentalModelsFile())
	c.Quotes = sources.LoadQuotes(ctx, p.cfg.QuotesFile(), p.translator)
	c.Lyrics = sources.LoadLyrics(p.cfg.LyricsDir())
	c.Words = sources.LoadVocabulary(p.cfg.VocabularyFile())

	return c
}
