package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ghvault.dev/ghvault/pkg/backup"
	"ghvault.dev/ghvault/pkg/git"
	"ghvault.dev/ghvault/pkg/github"
	"ghvault.dev/ghvault/pkg/history"
)

var (
	backupLimit     int
	backupNoHistory bool
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup [destination]",
	Short: "Clone or update all repositories into the destination directory",
	Long: `Back up every repository of the authenticated GitHub account.

Repositories that do not exist under the destination directory are cloned;
repositories that already exist are updated with git pull. The destination
defaults to backup.destination_path from the config file
(~/GitHub_Backups if unset).

Examples:
  ghvault backup
  ghvault backup /mnt/mirror/github
  ghvault backup --limit 50`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dest := ""
		if len(args) > 0 {
			dest = args[0]
		}
		return runBackupCommand(cmd, dest)
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)

	backupCmd.Flags().IntVarP(&backupLimit, "limit", "l", 0, "Maximum repositories to list (default from config, 1000)")
	backupCmd.Flags().BoolVar(&backupNoHistory, "no-history", false, "Do not record this run in the history database")
}

func runBackupCommand(cmd *cobra.Command, dest string) error {
	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	if dest == "" {
		dest = cfg.Backup.DestinationPath
	}
	if dest == "" {
		return errors.New("no destination directory: pass one as an argument or set backup.destination_path")
	}

	limit := cfg.Backup.Limit
	if backupLimit > 0 {
		limit = backupLimit
	}

	lister, err := github.NewClient(&cfg.GitHub, verbose)
	if err != nil {
		return err
	}

	host := backup.NewHost(lister, git.NewMirror(), backup.WithListLimit(limit))

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	progressLine := false
	started := time.Now()

	var summary *backup.Summary
	for event := range host.Start(cmd.Context(), dest) {
		switch e := event.(type) {
		case backup.LogEvent:
			if progressLine {
				fmt.Println()
				progressLine = false
			}
			fmt.Println(e.Message)
		case backup.ProgressEvent:
			if interactive {
				fmt.Printf("\r%s", color.CyanString("%3d%%", e.Percent))
				progressLine = true
			}
		case backup.DoneEvent:
			summary = e.Summary
		}
	}
	if progressLine {
		fmt.Println()
	}

	if summary == nil {
		return errors.New("backup run ended without a result")
	}

	finished := time.Now()
	printSummary(summary, finished.Sub(started))

	if !backupNoHistory && cfg.History.Enabled {
		recordRun(cfg.History.DatabasePath, dest, started, finished, summary)
	}

	if summary.Err != nil {
		return errors.Wrap(summary.Err, "backup failed")
	}

	return nil
}

func printSummary(summary *backup.Summary, elapsed time.Duration) {
	if summary.Err != nil {
		return
	}

	line := fmt.Sprintf("%d repositories (%d cloned, %d updated, %d failed) in %s",
		summary.Total, summary.Cloned, summary.Updated, summary.Failed,
		elapsed.Round(time.Second))

	if summary.Failed > 0 {
		color.Yellow(line)
	} else {
		color.Green(line)
	}
}

// recordRun persists the run outcome. History failures only warn; the
// backup itself already succeeded or failed on its own terms.
func recordRun(dbPath, dest string, started, finished time.Time, summary *backup.Summary) {
	store, err := history.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return
	}
	defer store.Close()

	errMsg := ""
	if summary.Err != nil {
		errMsg = summary.Err.Error()
	}

	run := history.Run{
		StartedAt:   started,
		FinishedAt:  finished,
		Destination: dest,
		Total:       summary.Total,
		Cloned:      summary.Cloned,
		Updated:     summary.Updated,
		Failed:      summary.Failed,
		Error:       errMsg,
	}
	if err := store.Record(run); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record run in history: %v\n", err)
	}
}
