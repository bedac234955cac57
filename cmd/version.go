package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X quizterm/cmd.version=v1.2.3".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the quizterm version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quizterm %s\n", version)
	},
}
