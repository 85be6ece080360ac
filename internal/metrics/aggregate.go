package metrics

import (
	"slices"

	"github.com/devsight/devsight/pkg/models"
)

// UnspecifiedColumn is the column name substituted for cards without a
// status.
const UnspecifiedColumn = "Unspecified"

// CardCountPerColumn counts cards per board column. Cards without a status
// are counted under UnspecifiedColumn, so the counts always sum to the
// number of cards.
func CardCountPerColumn(cards []models.CardRecord) map[string]int {
	counts := make(map[string]int)
	for _, card := range cards {
		status := card.Status
		if status == "" {
			status = UnspecifiedColumn
		}
		counts[status]++
	}
	return counts
}

// CardCountPerAssignee counts cards per roster member. A card increments
// each of its roster assignees once; assignees outside the roster are
// ignored.
func CardCountPerAssignee(cards []models.CardRecord, roster []string) map[string]int {
	counts := make(map[string]int)
	for _, card := range cards {
		for _, assignee := range card.Assignees {
			if slices.Contains(roster, assignee) {
				counts[assignee]++
			}
		}
	}
	return counts
}

// TotalHoursPerAssignee sums the "Time Estimate" field per roster member
// across the cards they are assigned to. Cards without a numeric estimate
// contribute zero.
func TotalHoursPerAssignee(cards []models.CardRecord, roster []string) map[string]float64 {
	hours := make(map[string]float64)
	for _, card := range cards {
		// A missing or non-numeric estimate counts as zero
		estimate, _ := card.Fields[timeEstimateField].(float64)
		for _, assignee := range card.Assignees {
			if slices.Contains(roster, assignee) {
				hours[assignee] += estimate
			}
		}
	}
	return hours
}
