package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"codeberg.org/snonux/dailyread/internal/config"
	"codeberg.org/snonux/dailyread/internal/content"
	"codeberg.org/snonux/dailyread/internal/phonetic"
	"codeberg.org/snonux/dailyread/internal/translation"
)

// PaperFetcher queries the arXiv Atom API for the newest papers
type PaperFetcher struct {
	cfg        config.PaperConfig
	httpClient *http.Client
	translator *translation.Translator
	annotator  *phonetic.Annotator
}

// NewPaperFetcher creates a paper fetcher. translator and annotator may be
// nil, in which case abstracts stay untranslated and titles unannotated.
func NewPaperFetcher(cfg config.PaperConfig, timeout time.Duration, translator *translation.Translator, annotator *phonetic.Annotator) *PaperFetcher {
	return &PaperFetcher{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		translator: translator,
		annotator:  annotator,
	}
}

// FetchPapers returns the newest papers of the configured categories, or an
// empty list on any failure.
func (f *PaperFetcher) FetchPapers(ctx context.Context) []content.Paper {
	return Collect("papers", func() ([]content.Paper, error) {
		return f.fetch(ctx)
	})
}

// QueryURL returns the API request for the configured categories
func (f *PaperFetcher) QueryURL() string {
	terms := make([]string, 0, len(f.cfg.Categories))
	for _, cat := range f.cfg.Categories {
		terms = append(terms, "cat:"+cat)
	}

	params := url.Values{}
	params.Set("search_query", strings.Join(terms, " OR "))
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(f.cfg.MaxResults))
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")

	return f.cfg.Endpoint + "?" + params.Encode()
}

func (f *PaperFetcher) fetch(ctx context.Context) ([]content.Paper, error) {
	if len(f.cfg.Categories) == 0 {
		return nil, fmt.Errorf("no paper categories configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.QueryURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Source: "arxiv", StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	papers := make([]content.Paper, 0, len(feed.Items))
	for _, item := range feed.Items {
		if f.cfg.MaxResults > 0 && len(papers) >= f.cfg.MaxResults {
			break
		}
		papers = append(papers, f.paperFromItem(ctx, item))
	}

	return papers, nil
}

func (f *PaperFetcher) paperFromItem(ctx context.Context, item *gofeed.Item) content.Paper {
	title := collapseSpace(item.Title)
	abstract := collapseSpace(item.Description)

	var authors []string
	for _, author := range item.Authors {
		if author == nil || author.Name == "" {
			continue
		}
		authors = append(authors, author.Name)
		if len(authors) == content.MaxPaperAuthors {
			break
		}
	}

	published := ""
	if item.PublishedParsed != nil {
		published = item.PublishedParsed.Format("2006-01-02")
	} else if item.UpdatedParsed != nil {
		published = item.UpdatedParsed.Format("2006-01-02")
	}

	link := item.GUID
	if link == "" {
		link = item.Link
	}

	return content.Paper{
		Title:              title,
		TitleIPA:           f.annotator.AnnotateHTML(ctx, title),
		Abstract:           abstract,
		AbstractTranslated: f.translator.TranslateEnglish(ctx, abstract),
		Authors:            authors,
		Published:          published,
		URL:                link,
		Categories:         item.Categories,
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
