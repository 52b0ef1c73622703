package sources

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v80/github"

	"codeberg.org/snonux/dailyread/internal/config"
	"codeberg.org/snonux/dailyread/internal/content"
	"codeberg.org/snonux/dailyread/internal/translation"
)

// RepoFetcher searches GitHub for recently created, highly starred
// repositories of one topic
type RepoFetcher struct {
	cfg        config.RepoConfig
	client     *github.Client
	translator *translation.Translator
	now        func() time.Time
}

// NewRepoFetcher creates a repository fetcher. An empty cfg.BaseURL means
// the public GitHub API.
func NewRepoFetcher(cfg config.RepoConfig, timeout time.Duration, translator *translation.Translator) (*RepoFetcher, error) {
	client := github.NewClient(&http.Client{Timeout: timeout})
	if cfg.UserAgent != "" {
		client.UserAgent = cfg.UserAgent
	}

	if cfg.BaseURL != "" {
		baseURL := cfg.BaseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid repository API URL %q: %w", cfg.BaseURL, err)
		}
		client.BaseURL = u
	}

	return &RepoFetcher{
		cfg:        cfg,
		client:     client,
		translator: translator,
		now:        time.Now,
	}, nil
}

// FetchRepositories returns the most starred repositories created within the
// configured day window, or an empty list on any failure.
func (f *RepoFetcher) FetchRepositories(ctx context.Context) []content.Repository {
	return Collect("repositories", func() ([]content.Repository, error) {
		return f.fetch(ctx)
	})
}

// Query returns the search expression for the configured topic and window
func (f *RepoFetcher) Query() string {
	since := f.now().AddDate(0, 0, -f.cfg.Days).Format("2006-01-02")
	return fmt.Sprintf("topic:%s created:>=%s", f.cfg.Topic, since)
}

func (f *RepoFetcher) fetch(ctx context.Context) ([]content.Repository, error) {
	opts := &github.SearchOptions{
		Sort:  "stars",
		Order: "desc",
		ListOptions: github.ListOptions{
			PerPage: f.cfg.MaxResults,
		},
	}

	result, _, err := f.client.Search.Repositories(ctx, f.Query(), opts)
	if err != nil {
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil {
			return nil, &StatusError{
				Source:     "github",
				StatusCode: ghErr.Response.StatusCode,
				Status:     ghErr.Message,
			}
		}
		return nil, fmt.Errorf("repository search failed: %w", err)
	}

	repos := make([]content.Repository, 0, len(result.Repositories))
	for _, item := range result.Repositories {
		if f.cfg.MaxResults > 0 && len(repos) >= f.cfg.MaxResults {
			break
		}
		repos = append(repos, f.repositoryFromItem(ctx, item))
	}

	return repos, nil
}

func (f *RepoFetcher) repositoryFromItem(ctx context.Context, item *github.Repository) content.Repository {
	description := item.GetDescription()

	lang := item.GetLanguage()
	if lang == "" {
		lang = content.UnknownLanguage
	}

	created := ""
	if ts := item.GetCreatedAt(); !ts.IsZero() {
		created = ts.Format("2006-01-02")
	}

	return content.Repository{
		FullName:              item.GetFullName(),
		Stars:                 item.GetStargazersCount(),
		Description:           description,
		DescriptionTranslated: f.translator.TranslateEnglish(ctx, description),
		URL:                   item.GetHTMLURL(),
		Language:              lang,
		CreatedAt:             created,
	}
}
