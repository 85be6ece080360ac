package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devsight",
	Short: "Devsight reports team activity metrics from GitHub",
	Long: `Devsight is a CLI tool that extracts project-management and source-control
activity metrics for a team from GitHub. It normalizes project board items
into uniform card records and derives per-column, per-assignee and per-user
commit metrics from them.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add the board command
	rootCmd.AddCommand(boardCmd)

	// Add the commits command
	rootCmd.AddCommand(commitsCmd)
}
