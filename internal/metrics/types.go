// Package metrics turns raw project-board items and commit records into
// uniform card records and derived team metrics. Everything in this package
// is a pure computation over already-fetched data; network access belongs to
// the github package.
package metrics

// Field value kinds understood by the extractor.
const (
	FieldTypeText         = "TEXT"
	FieldTypeSingleSelect = "SINGLE_SELECT"
	FieldTypeNumber       = "NUMBER"
	FieldTypeUsers        = "USERS"
)

// Well-known project field names.
const (
	statusField       = "Status"
	assigneesField    = "Assignees"
	timeEstimateField = "Time Estimate"
)

// User identifies a person by platform login and free-text display name.
// Either may be empty.
type User struct {
	Login string
	Name  string
}

// Handle returns the login when present, otherwise the display name.
func (u User) Handle() string {
	if u.Login != "" {
		return u.Login
	}
	return u.Name
}

// Content is the underlying issue, pull request or draft behind a board
// item. Assignees is only populated for issues and pull requests.
type Content struct {
	Type      string
	Title     string
	URL       string
	Assignees []User
}

// FieldValue is one project-level field attached to a board item, tagged
// with its kind. Only the payload matching Kind is meaningful.
type FieldValue struct {
	Kind      string
	FieldName string
	Text      string
	Option    string
	Number    float64
	Users     []User
}

// Item is one raw board item: its content union plus its project fields.
// A nil Content means the card's content could not be resolved.
type Item struct {
	Content     *Content
	FieldValues []FieldValue
}

// Commit is one commit descriptor from the repository history. Login is
// empty for commits whose author has no linked platform account.
type Commit struct {
	SHA        string
	Login      string
	AuthorName string
}
