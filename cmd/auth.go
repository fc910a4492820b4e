package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ghvault.dev/ghvault/pkg/github"
)

// authCmd represents the auth command
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Check GitHub authentication status",
	Long: `Check whether ghvault can talk to GitHub with the configured
authentication method (gh CLI credentials or a token).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAuthCommand()
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuthCommand() error {
	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	client, err := github.NewClient(&cfg.GitHub, verbose)
	if err != nil {
		return err
	}

	if !client.IsAuthenticated() {
		return errors.New("not authenticated with GitHub; run 'gh auth login' or set GITHUB_TOKEN")
	}

	color.Green("Authenticated with GitHub")
	return nil
}
