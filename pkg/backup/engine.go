package backup

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"ghvault.dev/ghvault/pkg/github"
)

// Engine orchestrates one backup run: list the remote repositories, then
// clone or pull each one sequentially, in listing order. It owns no state
// beyond the run itself and never returns an error to the caller; every
// failure surfaces as a log line, and the Summary records the outcome.
type Engine struct {
	lister   Lister
	transfer Transferer
	limit    int

	log      LogFunc
	progress *progressTracker

	// Filesystem seams, replaceable in tests.
	stat     func(string) (fs.FileInfo, error)
	mkdirAll func(string, fs.FileMode) error
}

// EngineOption is a functional option for configuring an Engine.
type EngineOption func(*Engine)

// WithListLimit caps how many repositories are requested from the listing
// service. Non-positive values fall back to the client default.
func WithListLimit(limit int) EngineOption {
	return func(e *Engine) {
		e.limit = limit
	}
}

// WithStat replaces the existence check used to decide clone vs. pull.
func WithStat(stat func(string) (fs.FileInfo, error)) EngineOption {
	return func(e *Engine) {
		e.stat = stat
	}
}

// WithMkdirAll replaces destination directory creation.
func WithMkdirAll(mkdirAll func(string, fs.FileMode) error) EngineOption {
	return func(e *Engine) {
		e.mkdirAll = mkdirAll
	}
}

// NewEngine creates an Engine reporting through the given sinks.
func NewEngine(lister Lister, transfer Transferer, sinks Sinks, opts ...EngineOption) *Engine {
	e := &Engine{
		lister:   lister,
		transfer: transfer,
		log:      sinks.Log,
		progress: &progressTracker{sink: sinks.Progress},
		stat:     os.Stat,
		mkdirAll: os.MkdirAll,
	}
	if e.log == nil {
		e.log = func(string) {}
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run executes one backup into destinationPath. It is strictly sequential:
// no repository is touched before the previous one's transfer command has
// returned. Run is not safe for concurrent use on the same Engine; callers
// serialize runs.
func (e *Engine) Run(ctx context.Context, destinationPath string) *Summary {
	summary := &Summary{}

	if err := e.mkdirAll(destinationPath, 0755); err != nil {
		e.log(fmt.Sprintf("Error creating destination directory %s: %v", destinationPath, err))
		e.progress.report(progressComplete)
		summary.Err = err
		return summary
	}

	repos := e.fetchRepositories(ctx, summary)
	if summary.Err != nil {
		return summary
	}

	if len(repos) == 0 {
		e.log("No repositories found.")
		e.progress.report(progressComplete)
		return summary
	}

	e.syncRepositories(ctx, repos, destinationPath, summary)

	e.log("Backup completed.")
	e.progress.report(progressComplete)

	return summary
}

// fetchRepositories calls the directory client once. A transport or decode
// failure is logged and short-circuits the run to completion; it is not an
// error the caller has to handle.
func (e *Engine) fetchRepositories(ctx context.Context, summary *Summary) []github.Repository {
	e.log("Fetching repositories...")
	e.progress.report(progressListingStart)

	repos, err := e.lister.ListRepositories(ctx, e.limit)
	if err != nil {
		e.log(fmt.Sprintf("Error fetching repositories: %v", err))
		e.progress.report(progressComplete)
		summary.Err = err
		return nil
	}

	e.log(fmt.Sprintf("Found %d repositories.", len(repos)))
	e.progress.report(progressListingDone)

	summary.Total = len(repos)
	return repos
}

// syncRepositories clones or pulls each repository in listing order. A
// failed transfer is logged and counted but never aborts the loop; the
// mirror stays best-effort.
func (e *Engine) syncRepositories(ctx context.Context, repos []github.Repository, destinationPath string, summary *Summary) {
	total := len(repos)
	seen := make(map[string]string, total)

	for i, repo := range repos {
		resolved := Resolve(repo.URL, destinationPath)

		// Two distinct remotes can collide on the same local name; the
		// second lands on the first one's path and is pulled, not cloned.
		if prev, dup := seen[resolved.Name]; dup {
			e.log(fmt.Sprintf("Warning: %s and %s share local name %q; keeping one copy.", prev, repo.URL, resolved.Name))
		}
		seen[resolved.Name] = repo.URL

		if _, err := e.stat(resolved.Path); err == nil {
			e.log(fmt.Sprintf("Updating %s...", resolved.Name))
			if err := e.transfer.Pull(ctx, resolved.Path); err != nil {
				e.log(fmt.Sprintf("Failed to update %s: %v", resolved.Name, err))
				summary.Failed++
			} else {
				summary.Updated++
			}
		} else {
			e.log(fmt.Sprintf("Cloning %s...", resolved.Name))
			if err := e.transfer.Clone(ctx, resolved.URL, resolved.Path); err != nil {
				e.log(fmt.Sprintf("Failed to clone %s: %v", resolved.Name, err))
				summary.Failed++
			} else {
				summary.Cloned++
			}
		}

		e.progress.report(TransferPercent(i+1, total))
	}
}
