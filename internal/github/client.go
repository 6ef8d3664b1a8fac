// internal/github/client.go
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	custom_errors "portfolio-site/internal/errors"
	"portfolio-site/internal/model"
)

const (
	// Repositories requested per sync; only the first page is read.
	reposPerPage = 50
	reposSort    = "updated"
)

// Client is a wrapper around the go-github client.
type Client struct {
	gh     *github.Client
	logger *slog.Logger
}

// NewClient creates and configures a new Client instance.
// An empty token yields an anonymous client, which GitHub rate limits per IP.
// baseURL overrides the REST endpoint (GitHub Enterprise, tests); empty keeps api.github.com.
func NewClient(token, baseURL string, logger *slog.Logger) (*Client, error) {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	gh := github.NewClient(httpClient)
	if baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
		}
		gh.BaseURL = u
	}

	return &Client{
		gh:     gh,
		logger: logger,
	}, nil
}

// ListUserRepositories fetches the most recently updated repositories of a user.
// It makes a single request and does not retry; any failure is reported as a FetchError.
func (c *Client) ListUserRepositories(ctx context.Context, handle string) ([]model.RemoteRepository, error) {
	opts := &github.RepositoryListByUserOptions{
		Sort: reposSort,
		ListOptions: github.ListOptions{
			PerPage: reposPerPage,
		},
	}

	c.logger.Debug("Fetching user repositories", "handle", handle, "per_page", reposPerPage)
	repos, _, err := c.gh.Repositories.ListByUser(ctx, handle, opts)
	if err != nil {
		return nil, &custom_errors.FetchError{Handle: handle, Err: err}
	}

	result := make([]model.RemoteRepository, 0, len(repos))
	for _, r := range repos {
		result = append(result, toRemoteRepository(r))
	}
	return result, nil
}

// toRemoteRepository translates a github.Repository object to our internal model.
func toRemoteRepository(r *github.Repository) model.RemoteRepository {
	repo := model.RemoteRepository{
		GithubID:    r.GetID(),
		Owner:       r.GetOwner().GetLogin(),
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		Description: r.Description,
		HTMLURL:     r.GetHTMLURL(),
		Homepage:    r.Homepage,
		Language:    r.Language,
		Topics:      r.Topics,
		StarsCount:  r.GetStargazersCount(),
		ForksCount:  r.GetForksCount(),
		Fork:        r.GetFork(),
		CreatedAt:   r.GetCreatedAt().Time,
		UpdatedAt:   r.GetUpdatedAt().Time,
	}
	if repo.Topics == nil {
		repo.Topics = []string{}
	}
	if r.PushedAt != nil {
		pushed := r.PushedAt.Time
		repo.PushedAt = &pushed
	}
	return repo
}
