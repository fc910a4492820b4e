package github

import (
	"context"
	"os"

	"ghvault.dev/ghvault/pkg/config"
	gverrors "ghvault.dev/ghvault/pkg/errors"
)

// RepoLister defines the interface for listing remote repositories.
// Implementations include CLIClient (wrapping gh CLI) and APIClient (using
// the GitHub REST API).
type RepoLister interface {
	// IsAuthenticated checks if the client is authenticated with GitHub.
	IsAuthenticated() bool

	// ListRepositories returns up to limit repositories owned by the
	// authenticated account, in the order the service returns them.
	// A limit <= 0 falls back to DefaultListLimit.
	ListRepositories(ctx context.Context, limit int) ([]Repository, error)
}

// Compile-time checks that implementations satisfy the RepoLister interface.
var (
	_ RepoLister = (*CLIClient)(nil)
	_ RepoLister = (*APIClient)(nil)
)

// NewClient creates a repository lister based on the provided configuration.
//
// Token resolution order:
//  1. GITHUB_TOKEN environment variable
//  2. GHVAULT_GITHUB_TOKEN environment variable
//  3. Token from config file (github.token)
//  4. Fall back to gh CLI
func NewClient(cfg *config.GitHubConfig, verbose bool) (RepoLister, error) {
	if cfg == nil {
		return nil, gverrors.NewGitHubError("NewClient", "github config is required")
	}

	// Check environment variable tokens first (highest precedence)
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GHVAULT_GITHUB_TOKEN")
	}
	if token == "" {
		token = cfg.Token
	}

	switch AuthMethod(cfg.AuthMethod) {
	case AuthToken:
		if token == "" {
			return nil, gverrors.NewGitHubError("NewClient",
				"token auth requires GITHUB_TOKEN, GHVAULT_GITHUB_TOKEN env var, or github.token in config")
		}
		return NewAPIClient(token, verbose)

	case AuthGHCLI, "":
		// Default: prefer API client if we have a token, fall back to CLI
		if token != "" {
			return NewAPIClient(token, verbose)
		}
		return NewCLIClient(verbose)

	default:
		return nil, gverrors.NewGitHubError("NewClient", "unknown auth method: "+cfg.AuthMethod)
	}
}
