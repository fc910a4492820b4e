package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ghvault.dev/ghvault/pkg/github"
)

var listLimit int

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the remote repositories that a backup would mirror",
	Long: `Print the clone URLs of every repository the authenticated account owns,
in the order the listing service returns them. This is the same listing a
backup run starts from.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListCommand(cmd)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVarP(&listLimit, "limit", "l", 0, "Maximum repositories to list (default from config, 1000)")
}

func runListCommand(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	limit := cfg.Backup.Limit
	if listLimit > 0 {
		limit = listLimit
	}

	lister, err := github.NewClient(&cfg.GitHub, verbose)
	if err != nil {
		return err
	}

	repos, err := lister.ListRepositories(cmd.Context(), limit)
	if err != nil {
		return err
	}

	for _, repo := range repos {
		fmt.Println(repo.URL)
	}
	color.Green("%d repositories", len(repos))

	return nil
}
