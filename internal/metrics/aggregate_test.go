package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devsight/devsight/pkg/models"
)

func TestCardCountPerColumn(t *testing.T) {
	cards := []models.CardRecord{
		{Title: "a", Status: "Backlog"},
		{Title: "b", Status: "Backlog"},
		{Title: "c", Status: "Done"},
		{Title: "d"},
	}

	counts := CardCountPerColumn(cards)

	assert.Equal(t, map[string]int{
		"Backlog":         2,
		"Done":            1,
		UnspecifiedColumn: 1,
	}, counts)

	// Column counts always sum to the number of cards
	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(cards), total)
}

func TestCardCountPerAssignee(t *testing.T) {
	cards := []models.CardRecord{
		{Title: "a", Assignees: []string{"bob"}},
		{Title: "b", Assignees: []string{"bob", "carol"}},
		{Title: "c", Assignees: []string{"mallory"}},
		{Title: "d"},
	}

	counts := CardCountPerAssignee(cards, []string{"bob", "carol"})

	assert.Equal(t, map[string]int{"bob": 2, "carol": 1}, counts)
}

func TestCardCountPerAssigneeEmptyRoster(t *testing.T) {
	cards := []models.CardRecord{
		{Title: "a", Assignees: []string{"bob"}},
	}

	assert.Empty(t, CardCountPerAssignee(cards, nil))
	assert.Empty(t, TotalHoursPerAssignee(cards, nil))
}

func TestTotalHoursPerAssignee(t *testing.T) {
	cards := []models.CardRecord{
		{
			Title:     "a",
			Assignees: []string{"bob"},
			Fields:    map[string]any{"Time Estimate": 3.0},
		},
		{
			Title:     "b",
			Assignees: []string{"bob", "carol"},
			Fields:    map[string]any{"Time Estimate": 2.5},
		},
		{
			Title:     "c",
			Assignees: []string{"carol"},
			Fields:    map[string]any{},
		},
	}

	hours := TotalHoursPerAssignee(cards, []string{"bob", "carol"})

	assert.Equal(t, map[string]float64{"bob": 5.5, "carol": 2.5}, hours)
}

func TestTotalHoursPerAssigneeNonNumericEstimate(t *testing.T) {
	cards := []models.CardRecord{
		{
			Title:     "a",
			Assignees: []string{"bob"},
			Fields:    map[string]any{"Time Estimate": "three"},
		},
	}

	// A text-typed estimate counts as zero instead of failing
	assert.Equal(t, map[string]float64{"bob": 0}, TotalHoursPerAssignee(cards, []string{"bob"}))
}

// TestBoardScenario walks the full path from raw items to aggregates: one
// issue assigned through its content, one draft assigned through the
// project field.
func TestBoardScenario(t *testing.T) {
	items := []Item{
		{
			Content: &Content{
				Type:      models.ContentTypeIssue,
				Title:     "Fix bug",
				Assignees: []User{{Login: "bob"}},
			},
		},
		{
			Content: &Content{Type: models.ContentTypeDraftIssue, Title: "Plan sprint"},
			FieldValues: []FieldValue{
				{Kind: FieldTypeUsers, FieldName: "Assignees", Users: []User{{Login: "carol"}}},
				{Kind: FieldTypeSingleSelect, FieldName: "Status", Option: "Backlog"},
			},
		},
	}

	cards := NormalizeItems(items)
	assert.Len(t, cards, 2)

	columns := CardCountPerColumn(cards)
	assert.Equal(t, map[string]int{UnspecifiedColumn: 1, "Backlog": 1}, columns)

	counts := CardCountPerAssignee(cards, []string{"bob", "carol"})
	assert.Equal(t, map[string]int{"bob": 1, "carol": 1}, counts)
}
