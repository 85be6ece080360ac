package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/devsight/devsight/internal/github"
)

// dateLayout is the accepted format of the --since and --until flags.
const dateLayout = "2006-01-02"

var commitsCmd = &cobra.Command{
	Use:   "commits",
	Short: "Report commit metrics for a user",
	Long: `Report commit metrics for one user on a repository within a date range.

This command lists the repository's commits between --since and --until,
keeps those attributed to the user (by login or by commit author name) and
sums their line additions and deletions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repository, err := cmd.Flags().GetString("repository")
		if err != nil {
			return err
		}
		username, err := cmd.Flags().GetString("user")
		if err != nil {
			return err
		}
		if repository == "" || username == "" {
			return fmt.Errorf("the --repository and --user flags are required")
		}

		sinceStr, err := cmd.Flags().GetString("since")
		if err != nil {
			return err
		}
		untilStr, err := cmd.Flags().GetString("until")
		if err != nil {
			return err
		}
		since, until, err := parseDateRange(sinceStr, untilStr)
		if err != nil {
			return err
		}

		githubClient, err := github.NewClient()
		if err != nil {
			return fmt.Errorf("failed to initialize GitHub client: %w", err)
		}

		result, err := githubClient.CommitActivity(cmd.Context(), repository, username, since, until)
		if err != nil {
			return err
		}

		fmt.Printf("Commit activity for %s on %s (%s to %s):\n",
			username, repository, since.Format(dateLayout), until.Format(dateLayout))
		fmt.Printf("  commits: %d\n", result.CommitCount)
		fmt.Printf("  lines added: %d\n", result.LinesAdded)
		fmt.Printf("  lines removed: %d\n", result.LinesRemoved)
		fmt.Printf("  lines changed: %d\n", result.LinesChanged)

		return nil
	},
}

// parseDateRange parses the since/until flag values. The until date is
// extended to the end of that day so the range is inclusive.
func parseDateRange(sinceStr, untilStr string) (time.Time, time.Time, error) {
	since, err := time.Parse(dateLayout, sinceStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --since date %q, expected format: %s", sinceStr, dateLayout)
	}

	until, err := time.Parse(dateLayout, untilStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid --until date %q, expected format: %s", untilStr, dateLayout)
	}

	until = until.Add(24*time.Hour - time.Second)
	if until.Before(since) {
		return time.Time{}, time.Time{}, fmt.Errorf("--until date %s is before --since date %s", untilStr, sinceStr)
	}

	return since, until, nil
}

func init() {
	now := time.Now()

	commitsCmd.Flags().StringP("repository", "r", "", "GitHub repository name (e.g., 'username/repo')")
	commitsCmd.Flags().StringP("user", "u", "", "Username to compute commit metrics for")
	commitsCmd.Flags().String("since", now.AddDate(0, 0, -7).Format(dateLayout), "Start of the date range (YYYY-MM-DD)")
	commitsCmd.Flags().String("until", now.Format(dateLayout), "End of the date range, inclusive (YYYY-MM-DD)")
}
