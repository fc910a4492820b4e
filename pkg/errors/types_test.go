package errors

import (
	"strings"
	"testing"
)

func TestConfigErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ConfigError
		want string
	}{
		{
			name: "with field",
			err:  NewConfigError("backup.destination_path", "path is empty"),
			want: "config error in backup.destination_path: path is empty",
		},
		{
			name: "without field",
			err:  NewConfigError("", "invalid configuration"),
			want: "config error: invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGitHubErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *GitHubError
		want string
	}{
		{
			name: "without status",
			err:  NewGitHubError("ListRepositories", "gh CLI not found"),
			want: "github ListRepositories failed: gh CLI not found",
		},
		{
			name: "with status",
			err:  NewGitHubErrorWithStatus("ListRepositories", 503, "service unavailable"),
			want: "github ListRepositories failed (HTTP 503): service unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGitErrorMessage(t *testing.T) {
	err := NewGitErrorWithPath("Pull", "/backups/myrepo", "exit status 1")
	if !strings.Contains(err.Error(), "git Pull failed for /backups/myrepo") {
		t.Errorf("Error() = %q, should name operation and path", err.Error())
	}

	err = NewGitError("Clone", "git not found in PATH")
	want := "git Clone failed: git not found in PATH"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := New("underlying failure")

	tests := []struct {
		name string
		err  error
	}{
		{"config", NewConfigErrorWithCause("github.token", "bad token", cause)},
		{"github", NewGitHubErrorWithCause("ListRepositories", "listing failed", cause)},
		{"git", NewGitError("Clone", "clone failed").WithCause(cause)},
		{"history", NewHistoryErrorWithCause("Open", "cannot open database", cause)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, cause) {
				t.Errorf("errors.Is should find the wrapped cause in %T", tt.err)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"retryable status", NewGitHubErrorWithStatus("ListRepositories", 502, "bad gateway"), true},
		{"non-retryable status", NewGitHubErrorWithStatus("ListRepositories", 404, "not found"), false},
		{"plain error", New("boom"), false},
		{"git error never retryable", NewGitError("Pull", "exit status 1"), false},
		{
			name: "wrapped retryable",
			err:  Wrap(NewGitHubErrorWithStatus("ListRepositories", 429, "rate limited"), "outer context"),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorTypePredicates(t *testing.T) {
	ghErr := NewGitHubError("ListRepositories", "failed")
	gitErr := NewGitError("Clone", "failed")

	if !IsGitHubError(Wrap(ghErr, "context")) {
		t.Error("IsGitHubError should see through wrapping")
	}
	if IsGitHubError(gitErr) {
		t.Error("IsGitHubError should not match a GitError")
	}
	if !IsGitError(gitErr) {
		t.Error("IsGitError should match a GitError")
	}
	if !IsHistoryError(NewHistoryError("List", "failed")) {
		t.Error("IsHistoryError should match a HistoryError")
	}
	if !IsConfigError(NewConfigError("backup.limit", "must be positive")) {
		t.Error("IsConfigError should match a ConfigError")
	}
}

func TestIsRetryableHTTPStatus(t *testing.T) {
	retryable := []int{408, 429, 500, 502, 503, 504}
	for _, code := range retryable {
		if !isRetryableHTTPStatus(code) {
			t.Errorf("status %d should be retryable", code)
		}
	}

	for _, code := range []int{200, 400, 401, 403, 404, 422} {
		if isRetryableHTTPStatus(code) {
			t.Errorf("status %d should not be retryable", code)
		}
	}
}
