package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// releaseSlug is the GitHub repository releases are published from.
const releaseSlug = "jseibert/ghvault"

var (
	updateCheck bool
	updateForce bool
	updatePre   bool
	updateYes   bool
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update ghvault to the latest release",
	Long: `Check GitHub releases for a newer ghvault binary and replace the
running executable in place.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdateCommand(cmd)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVarP(&updateCheck, "check", "c", false, "Check for updates without installing")
	updateCmd.Flags().BoolVarP(&updateForce, "force", "f", false, "Force update even if already on the latest version")
	updateCmd.Flags().BoolVarP(&updatePre, "pre", "p", false, "Include pre-release versions")
	updateCmd.Flags().BoolVarP(&updateYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runUpdateCommand(cmd *cobra.Command) error {
	ctx := cmd.Context()

	updater, err := selfupdate.NewUpdater(selfupdate.Config{Prerelease: updatePre})
	if err != nil {
		return errors.Wrap(err, "failed to initialize updater")
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(releaseSlug))
	if err != nil {
		return errors.Wrap(err, "failed to check for updates")
	}
	if !found {
		return errors.Newf("no release found for %s", releaseSlug)
	}

	if !updateForce && latest.LessOrEqual(version) {
		color.Green("ghvault %s is up to date", version)
		return nil
	}

	fmt.Printf("Current version: %s\n", version)
	fmt.Printf("Latest version:  %s\n", latest.Version())

	if updateCheck {
		return nil
	}

	if !updateYes && !confirm(fmt.Sprintf("Update to %s?", latest.Version())) {
		fmt.Println("Update cancelled.")
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return errors.Wrap(err, "could not locate executable")
	}

	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return errors.Wrapf(err, "failed to update to %s", latest.Version())
	}

	color.Green("Updated to %s", latest.Version())
	return nil
}

// confirm asks the user a yes/no question on stdin.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
