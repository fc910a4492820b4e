// Package github provides the repository directory client for ghvault.
//
// This package implements the RepoLister interface for listing the
// authenticated account's repositories, with two implementations: CLIClient
// (wrapping the gh CLI) and APIClient (using the GitHub REST API). The
// primary implementation uses the gh CLI tool for maximum compatibility.
package github

// AuthMethod represents the authentication method for GitHub.
type AuthMethod string

const (
	// AuthToken uses a personal access token for authentication.
	AuthToken AuthMethod = "token"
	// AuthGHCLI uses the gh CLI's stored credentials.
	AuthGHCLI AuthMethod = "gh_cli"
)

// DefaultListLimit caps how many repositories are requested from the
// listing service when no limit is configured.
const DefaultListLimit = 1000

// Repository describes one remote repository as returned by the listing
// service. Immutable once created.
type Repository struct {
	URL string `json:"url"`
}
