package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devsight/devsight/internal/github"
	"github.com/devsight/devsight/internal/logging"
	"github.com/devsight/devsight/internal/metrics"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Report card metrics for a project board",
	Long: `Report card metrics for a GitHub organization project board.

This command fetches the board's items, normalizes them into card records
and prints the number of cards per column. When a roster of usernames is
supplied, it also prints per-member card counts and estimated hours, based
on the "Time Estimate" project field.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectURL, err := cmd.Flags().GetString("project-url")
		if err != nil {
			return err
		}
		if projectURL == "" {
			return fmt.Errorf("the --project-url flag is required")
		}

		roster, err := cmd.Flags().GetStringSlice("roster")
		if err != nil {
			return err
		}

		githubClient, err := github.NewClient()
		if err != nil {
			return fmt.Errorf("failed to initialize GitHub client: %w", err)
		}

		cards, err := githubClient.ProjectCards(cmd.Context(), projectURL)
		if err != nil {
			return err
		}

		logging.Info("normalized project cards", "count", len(cards))

		fmt.Printf("Cards per column (%d cards total):\n", len(cards))
		for column, count := range metrics.CardCountPerColumn(cards) {
			fmt.Printf("  %s: %d\n", column, count)
		}

		if len(roster) == 0 {
			return nil
		}

		counts := metrics.CardCountPerAssignee(cards, roster)
		hours := metrics.TotalHoursPerAssignee(cards, roster)

		fmt.Println("Cards and estimated hours per team member:")
		for _, member := range roster {
			fmt.Printf("  %s: %d cards, %.1f hours\n", member, counts[member], hours[member])
		}

		return nil
	},
}

func init() {
	boardCmd.Flags().StringP("project-url", "p", "", "Project board URL (e.g., 'https://github.com/orgs/my-org/projects/7')")
	boardCmd.Flags().StringSlice("roster", nil, "Comma-separated usernames to compute per-member metrics for")
}
