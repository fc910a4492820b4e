// Package git wraps the external git command for clone and pull operations.
//
// The package does not reimplement any git plumbing; everything is delegated
// to the git binary on PATH through a small CommandRunner abstraction so
// callers (and tests) can substitute their own execution strategy.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

// CommandRunner abstracts external command execution for testability.
type CommandRunner interface {
	// Run executes a command in dir (empty for the current directory) and
	// returns an error describing a non-zero exit, with stderr attached.
	Run(ctx context.Context, dir string, name string, args ...string) error

	// Output executes a command and returns its standard output.
	Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error)
}

// ExecRunner is the production CommandRunner backed by os/exec.
type ExecRunner struct{}

// Compile-time check that ExecRunner implements CommandRunner.
var _ CommandRunner = (*ExecRunner)(nil)

// Run executes a command and waits for it to finish.
func (r *ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return errors.Wrapf(err, "%s failed", name)
		}
		return errors.Wrapf(err, "%s failed: %s", name, msg)
	}

	return nil
}

// Output executes a command and returns its captured standard output.
func (r *ExecRunner) Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, errors.Wrapf(err, "%s failed", name)
		}
		return nil, errors.Wrapf(err, "%s failed: %s", name, msg)
	}

	return stdout.Bytes(), nil
}
