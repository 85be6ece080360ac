package github

import (
	"context"
	"time"

	"github.com/google/go-github/v41/github"
	"github.com/schollz/progressbar/v3"

	"github.com/devsight/devsight/internal/logging"
	"github.com/devsight/devsight/internal/metrics"
	"github.com/devsight/devsight/pkg/models"
)

// CommitActivity computes commit metrics for one user on a repository
// within a date range. The candidate commits are listed through the
// commits API and filtered by identity; line stats are then fetched one
// commit at a time. A failure to list the candidates resolves to a zero
// result rather than an error, so a denied repository yields an empty
// report instead of aborting it.
func (c *Client) CommitActivity(ctx context.Context, repository, username string, since, until time.Time) (models.CommitMetrics, error) {
	owner, repo, err := splitRepository(repository)
	if err != nil {
		return models.CommitMetrics{}, err
	}

	candidates, err := c.listCommits(ctx, owner, repo, since, until)
	if err != nil {
		logging.Error("failed to list commits", "repository", repository, "error", err)
		return models.CommitMetrics{}, nil
	}

	matched := metrics.CommitsByUser(candidates, username)
	logging.Debug("filtered commits by user",
		"repository", repository,
		"username", username,
		"candidates", len(candidates),
		"matched", len(matched))

	bar := progressbar.Default(int64(len(matched)), "fetching commit details")

	lookup := func(ctx context.Context, sha string) (metrics.CommitStats, error) {
		defer bar.Add(1)
		return c.commitStats(ctx, owner, repo, sha)
	}

	return metrics.CommitInfo(ctx, candidates, username, lookup), nil
}

// listCommits retrieves all commits on the default branch within the date
// range, following pagination.
func (c *Client) listCommits(ctx context.Context, owner, repo string, since, until time.Time) ([]metrics.Commit, error) {
	opts := &github.CommitsListOptions{
		Since: since,
		Until: until,
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	var candidates []metrics.Commit
	for {
		commits, resp, err := c.client.Repositories.ListCommits(ctx, owner, repo, opts)
		if err != nil {
			return nil, err
		}

		for _, rc := range commits {
			commit := metrics.Commit{SHA: rc.GetSHA()}
			// Author is nil for commits by unlinked accounts; the commit
			// metadata name is still present
			if rc.Author != nil {
				commit.Login = rc.Author.GetLogin()
			}
			if rc.Commit != nil && rc.Commit.Author != nil {
				commit.AuthorName = rc.Commit.Author.GetName()
			}
			candidates = append(candidates, commit)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return candidates, nil
}

// commitStats fetches the line-change stats of a single commit. Commits
// without a stats substructure count as zero additions and deletions.
func (c *Client) commitStats(ctx context.Context, owner, repo, sha string) (metrics.CommitStats, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return metrics.CommitStats{}, err
	}

	detailed, _, err := c.client.Repositories.GetCommit(ctx, owner, repo, sha, nil)
	if err != nil {
		return metrics.CommitStats{}, err
	}

	stats := detailed.GetStats()
	if stats == nil {
		return metrics.CommitStats{}, nil
	}

	return metrics.CommitStats{
		Additions: stats.GetAdditions(),
		Deletions: stats.GetDeletions(),
	}, nil
}
