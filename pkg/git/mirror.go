package git

import (
	"context"
	"os"
	"path/filepath"

	gverrors "ghvault.dev/ghvault/pkg/errors"
)

// Mirror performs clone and pull operations against local working trees.
type Mirror struct {
	runner CommandRunner
}

// NewMirror creates a Mirror using the real git binary.
func NewMirror() *Mirror {
	return &Mirror{runner: &ExecRunner{}}
}

// NewMirrorWithRunner creates a Mirror with a custom CommandRunner (for testing).
func NewMirrorWithRunner(runner CommandRunner) *Mirror {
	return &Mirror{runner: runner}
}

// Clone creates a new working tree at path from the remote URL.
func (m *Mirror) Clone(ctx context.Context, url, path string) error {
	if url == "" {
		return gverrors.NewGitError("Clone", "empty remote URL")
	}
	if err := m.runner.Run(ctx, "", "git", "clone", url, path); err != nil {
		return gverrors.NewGitErrorWithPath("Clone", path, "git clone failed").WithCause(err)
	}
	return nil
}

// Pull updates the working tree at path in place.
func (m *Mirror) Pull(ctx context.Context, path string) error {
	if path == "" {
		return gverrors.NewGitError("Pull", "empty repository path")
	}
	if err := m.runner.Run(ctx, "", "git", "-C", path, "pull"); err != nil {
		return gverrors.NewGitErrorWithPath("Pull", path, "git pull failed").WithCause(err)
	}
	return nil
}

// IsGitRepo checks if a path is a git repository
func IsGitRepo(path string) bool {
	// Check for .git directory or file (for worktrees)
	gitPath := filepath.Join(path, ".git")
	if info, err := os.Stat(gitPath); err == nil {
		return info.IsDir() || info.Mode().IsRegular()
	}

	// Also check if it's a bare repo (contains HEAD, config, objects)
	headPath := filepath.Join(path, "HEAD")
	configPath := filepath.Join(path, "config")
	objectsPath := filepath.Join(path, "objects")
	if _, err := os.Stat(headPath); err == nil {
		if _, err := os.Stat(configPath); err == nil {
			if info, err := os.Stat(objectsPath); err == nil && info.IsDir() {
				return true
			}
		}
	}

	return false
}
