package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"quizterm/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer release is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkForUpdate(cmd)
	},
}

func checkForUpdate(cmd *cobra.Command) error {
	checker := selfupdate.NewChecker()

	result, err := checker.Check(cmd.Context(), &selfupdate.CheckInput{Version: version})
	if err != nil {
		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Running a development build; skipping the update check.")
			return nil
		}
		return fmt.Errorf("check for update: %w", err)
	}

	if !result.UpdateAvailable {
		fmt.Printf("quizterm %s is up to date.\n", result.CurrentVersion)
		return nil
	}

	fmt.Printf("A newer release is available: %s (running %s)\n", result.LatestVersion, result.CurrentVersion)
	if result.ReleaseURL != "" {
		fmt.Printf("Download it at %s\n", result.ReleaseURL)
	}
	return nil
}
