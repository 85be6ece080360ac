// Package models defines data structures shared across the application.
package models

// Card content types as reported by the project board.
const (
	ContentTypeIssue       = "Issue"
	ContentTypePullRequest = "PullRequest"
	ContentTypeDraftIssue  = "DraftIssue"
)

// NoTitle is the display title used for cards whose content carries none.
const NoTitle = "(no title)"

// CardRecord is the uniform representation of one project-board item,
// regardless of whether it is backed by an issue, a pull request or a
// board-only draft.
type CardRecord struct {
	// Title is the card's display title, or NoTitle when the underlying
	// content has none
	Title string

	// Status is the board column the card sits in, taken from the
	// "Status" project field; empty when the field is unset
	Status string

	// Assignees holds the resolved assignee identities in source order.
	// Logins are preferred, display names are the fallback. Duplicates
	// are kept as-is
	Assignees []string

	// Fields maps raw project field names to their extracted values:
	// string for text and single-select fields, float64 for number
	// fields, []string for user fields
	Fields map[string]any

	// Type is one of the ContentType constants, or empty when the item
	// has no resolvable content
	Type string
}

// CommitMetrics summarizes the commit activity of a single user within a
// date range.
type CommitMetrics struct {
	// CommitCount is the number of commits attributed to the user
	CommitCount int

	// LinesAdded is the total number of added lines across those commits
	LinesAdded int

	// LinesRemoved is the total number of deleted lines
	LinesRemoved int

	// LinesChanged is always LinesAdded + LinesRemoved
	LinesChanged int
}
