package github

import (
	"context"
	"log/slog"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	gverrors "ghvault.dev/ghvault/pkg/errors"
)

// APIClient implements RepoLister using the GitHub REST API.
type APIClient struct {
	client  *gh.Client
	verbose bool
	logger  *slog.Logger
}

// Compile-time check that APIClient implements RepoLister.
var _ RepoLister = (*APIClient)(nil)

// APIClientOption is a functional option for configuring APIClient.
type APIClientOption func(*APIClient)

// WithAPILogger sets a custom logger for the API client.
func WithAPILogger(logger *slog.Logger) APIClientOption {
	return func(c *APIClient) {
		c.logger = logger
	}
}

// NewAPIClient creates a GitHub API client with the given token.
func NewAPIClient(token string, verbose bool, opts ...APIClientOption) (*APIClient, error) {
	if token == "" {
		return nil, gverrors.NewGitHubError("NewAPIClient", "token is required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)

	client := &APIClient{
		client:  gh.NewClient(tc),
		verbose: verbose,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// IsAuthenticated checks if the client is authenticated with GitHub.
func (c *APIClient) IsAuthenticated() bool {
	ctx := context.Background()
	_, _, err := c.client.Users.Get(ctx, "")
	return err == nil
}

// ListRepositories lists the authenticated account's repositories via the
// REST API, paginating until limit repositories have been collected or the
// listing is exhausted.
func (c *APIClient) ListRepositories(ctx context.Context, limit int) ([]Repository, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	opts := &gh.RepositoryListByAuthenticatedUserOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	c.logDebug("listing repositories", "limit", limit)

	var repos []Repository
	for {
		page, resp, err := c.client.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return nil, toGitHubError("ListRepositories", resp, err)
		}

		for _, r := range page {
			repos = append(repos, Repository{URL: r.GetCloneURL()})
			if len(repos) >= limit {
				c.logDebug("listed repositories", "count", len(repos))
				return repos, nil
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	c.logDebug("listed repositories", "count", len(repos))

	return repos, nil
}

// logDebug logs a debug message if verbose mode is enabled.
func (c *APIClient) logDebug(msg string, args ...any) {
	if c.verbose {
		c.logger.Debug(msg, args...)
	}
}

// toGitHubError converts a go-github response/error pair into a GitHubError
// carrying the HTTP status when one is available.
func toGitHubError(operation string, resp *gh.Response, err error) error {
	if resp != nil && resp.Response != nil {
		ghErr := gverrors.NewGitHubErrorWithStatus(operation, resp.StatusCode, err.Error())
		ghErr.Cause = err
		return ghErr
	}
	return gverrors.NewGitHubErrorWithCause(operation, err.Error(), err)
}
