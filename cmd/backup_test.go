package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"ghvault.dev/ghvault/pkg/backup"
	"ghvault.dev/ghvault/pkg/history"
)

func TestBackupCommandFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flagName     string
		shorthand    string
		defaultValue string
	}{
		{"limit", "l", "0"},
		{"no-history", "", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.flagName, func(t *testing.T) {
			flag := backupCmd.Flags().Lookup(tt.flagName)
			if flag == nil {
				t.Fatalf("backup command should have --%s flag", tt.flagName)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("--%s shorthand = %q, want %q", tt.flagName, flag.Shorthand, tt.shorthand)
			}
			if flag.DefValue != tt.defaultValue {
				t.Errorf("--%s default = %q, want %q", tt.flagName, flag.DefValue, tt.defaultValue)
			}
		})
	}
}

func TestBackupCommandAcceptsAtMostOneArg(t *testing.T) {
	t.Parallel()

	if err := backupCmd.Args(backupCmd, []string{}); err != nil {
		t.Errorf("backup with no args should be accepted: %v", err)
	}
	if err := backupCmd.Args(backupCmd, []string{"/backups"}); err != nil {
		t.Errorf("backup with one arg should be accepted: %v", err)
	}
	if err := backupCmd.Args(backupCmd, []string{"/a", "/b"}); err == nil {
		t.Error("backup with two args should be rejected")
	}
}

func TestRecordRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	started := time.Now().Add(-time.Minute)
	summary := &backup.Summary{Total: 4, Cloned: 1, Updated: 3}

	recordRun(dbPath, "/backups", started, time.Now(), summary)

	store, err := history.Open(dbPath)
	if err != nil {
		t.Fatalf("history.Open() error = %v", err)
	}
	defer store.Close()

	runs, err := store.List(10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("recorded runs = %d, want 1", len(runs))
	}
	if runs[0].Total != 4 || runs[0].Updated != 3 {
		t.Errorf("recorded run = %+v, want the summary counts", runs[0])
	}
}
