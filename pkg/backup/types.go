// Package backup implements the synchronization core of ghvault.
//
// The Engine turns a remote repository listing into a sequence of local
// clone/pull operations, reporting human-readable log lines and a bounded
// 0-100 progress percentage through injected sinks. The Host runs the
// engine on a background goroutine and relays its events to the caller
// over a single ordered channel, so any front end (CLI, cron, something
// windowed) stays responsive while git does the slow work.
package backup

import (
	"context"

	"ghvault.dev/ghvault/pkg/github"
)

// Lister lists remote repositories. Satisfied by github.CLIClient and
// github.APIClient.
type Lister interface {
	ListRepositories(ctx context.Context, limit int) ([]github.Repository, error)
}

// Transferer performs the two external transfer operations against one
// repository. Satisfied by git.Mirror.
type Transferer interface {
	Clone(ctx context.Context, url, path string) error
	Pull(ctx context.Context, path string) error
}

// ResolvedRepository pairs a remote repository with its computed local
// name and filesystem path.
type ResolvedRepository struct {
	URL  string // Remote URL as returned by the listing service
	Name string // Final URL path segment with a trailing .git stripped
	Path string // Destination directory joined with Name
}

// LogFunc receives ordered human-readable log lines.
type LogFunc func(message string)

// ProgressFunc receives ordered progress percentages in [0,100].
type ProgressFunc func(percent int)

// Sinks bundles the two capability callbacks the engine reports through.
// Nil members are tolerated and simply drop their events.
type Sinks struct {
	Log      LogFunc
	Progress ProgressFunc
}

// Summary describes the outcome of one backup run.
type Summary struct {
	Total   int   // Repositories returned by the listing
	Cloned  int   // Repositories cloned fresh
	Updated int   // Repositories pulled in place
	Failed  int   // Transfer commands that exited non-zero
	Err     error // Fatal listing or filesystem failure, nil otherwise
}

// Event is one item relayed from the engine's background run to the caller.
// Concrete types are LogEvent, ProgressEvent and DoneEvent.
type Event interface {
	isEvent()
}

// LogEvent carries one log line.
type LogEvent struct {
	Message string
}

// ProgressEvent carries one progress percentage in [0,100].
type ProgressEvent struct {
	Percent int
}

// DoneEvent is the terminal event of a run, delivered exactly once.
type DoneEvent struct {
	Summary *Summary
}

func (LogEvent) isEvent()      {}
func (ProgressEvent) isEvent() {}
func (DoneEvent) isEvent()     {}
