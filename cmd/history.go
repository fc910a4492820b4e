package cmd

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ghvault.dev/ghvault/pkg/history"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent backup runs",
	Long:  `Print the most recent backup runs recorded in the history database, newest first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistoryCommand()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Maximum runs to show")
}

func runHistoryCommand() error {
	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	store, err := history.Open(cfg.History.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No backup runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		status := color.GreenString("ok")
		if !run.Succeeded() {
			status = color.RedString("failed")
		} else if run.Failed > 0 {
			status = color.YellowString("partial")
		}

		fmt.Printf("%s  %-7s  %s  %d repos (%d cloned, %d updated, %d failed) in %s\n",
			run.StartedAt.Format(time.DateTime),
			status,
			run.Destination,
			run.Total, run.Cloned, run.Updated, run.Failed,
			run.Duration().Round(time.Second))

		if !run.Succeeded() && verbose {
			fmt.Printf("           %s\n", run.Error)
		}
	}

	return nil
}
