package metrics

import (
	"context"

	"github.com/devsight/devsight/internal/logging"
	"github.com/devsight/devsight/pkg/models"
)

// CommitStats holds the line-change counts of a single commit.
type CommitStats struct {
	Additions int
	Deletions int
}

// StatsLookup fetches the detailed stats of one commit by SHA. The github
// package supplies an implementation backed by the commits API; tests
// supply their own.
type StatsLookup func(ctx context.Context, sha string) (CommitStats, error)

// MatchesUser reports whether a commit is attributed to the given user,
// either through the platform login or the free-text author name. Matching
// is exact and case-sensitive. Commits by unlinked accounts carry no login
// and can still match via the name.
func MatchesUser(c Commit, username string) bool {
	if username == "" {
		return false
	}
	return c.Login == username || c.AuthorName == username
}

// CommitsByUser filters commits down to those attributed to the given
// user, preserving order.
func CommitsByUser(commits []Commit, username string) []Commit {
	var matched []Commit
	for _, c := range commits {
		if MatchesUser(c, username) {
			matched = append(matched, c)
		}
	}
	return matched
}

// CommitInfo computes commit metrics for one user over a list of candidate
// commits, fetching per-commit line stats through lookup. A commit whose
// detail lookup fails still counts, with zero line changes, so the result
// is always complete. LinesChanged is the sum of added and removed lines.
func CommitInfo(ctx context.Context, commits []Commit, username string, lookup StatsLookup) models.CommitMetrics {
	var result models.CommitMetrics

	for _, c := range CommitsByUser(commits, username) {
		result.CommitCount++

		stats, err := lookup(ctx, c.SHA)
		if err != nil {
			logging.Warn("failed to fetch commit details, counting as zero", "sha", c.SHA, "error", err)
			continue
		}

		result.LinesAdded += stats.Additions
		result.LinesRemoved += stats.Deletions
	}

	result.LinesChanged = result.LinesAdded + result.LinesRemoved
	return result
}
