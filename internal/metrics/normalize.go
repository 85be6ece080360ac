package metrics

import (
	"github.com/devsight/devsight/pkg/models"
)

// NormalizeItems converts a list of raw board items into card records,
// one per item, preserving order.
func NormalizeItems(items []Item) []models.CardRecord {
	cards := make([]models.CardRecord, 0, len(items))
	for _, item := range items {
		cards = append(cards, NormalizeItem(item))
	}
	return cards
}

// NormalizeItem converts one raw board item into a CardRecord, folding its
// field values through ExtractField and applying the assignee precedence
// rule: content-level assignees win for issues and pull requests, the
// "Assignees" project field covers everything else (drafts in particular
// carry assignment only as a project field).
func NormalizeItem(item Item) models.CardRecord {
	card := models.CardRecord{
		Title:  models.NoTitle,
		Fields: make(map[string]any),
	}

	var contentAssignees []string
	if c := item.Content; c != nil {
		card.Type = c.Type
		if c.Title != "" {
			card.Title = c.Title
		}
		if c.Type == models.ContentTypeIssue || c.Type == models.ContentTypePullRequest {
			for _, u := range c.Assignees {
				contentAssignees = append(contentAssignees, u.Handle())
			}
		}
	}

	// Later duplicates of a field name overwrite earlier ones
	for _, fv := range item.FieldValues {
		name, value, ok := ExtractField(fv)
		if !ok {
			continue
		}
		card.Fields[name] = value
	}

	// The board column is the single-select "Status" field. A user-kind
	// field named "Status" would store a list; only its first entry is
	// kept.
	switch status := card.Fields[statusField].(type) {
	case string:
		card.Status = status
	case []string:
		if len(status) > 0 {
			card.Status = status[0]
		}
	}

	card.Assignees = resolveAssignees(contentAssignees, card.Fields[assigneesField])
	return card
}

// resolveAssignees applies the assignee precedence rule. Content-level
// assignees are authoritative when present; otherwise the project-level
// "Assignees" field value is used, wrapped into a list when it is a
// scalar.
func resolveAssignees(contentAssignees []string, projectAssignees any) []string {
	if len(contentAssignees) > 0 {
		return contentAssignees
	}
	switch v := projectAssignees.(type) {
	case []string:
		return v
	case string:
		if v != "" {
			return []string{v}
		}
	}
	return []string{}
}
