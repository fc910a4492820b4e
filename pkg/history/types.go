// Package history persists a record of past backup runs in a local
// sqlite database.
package history

import "time"

// Run represents one completed backup run.
type Run struct {
	ID          string
	StartedAt   time.Time
	FinishedAt  time.Time
	Destination string
	Total       int
	Cloned      int
	Updated     int
	Failed      int
	Error       string // Fatal listing/filesystem failure, empty for clean runs
}

// Duration returns how long the run took.
func (r *Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Succeeded reports whether the run finished without a fatal error.
func (r *Run) Succeeded() bool {
	return r.Error == ""
}
