package github

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devsight/devsight/internal/metrics"
	"github.com/devsight/devsight/pkg/models"
)

func TestParseProjectURL(t *testing.T) {
	tests := []struct {
		name       string
		projectURL string
		wantOrg    string
		wantNumber int
		wantErr    bool
	}{
		{
			name:       "Organization project URL",
			projectURL: "https://github.com/orgs/my-org/projects/7",
			wantOrg:    "my-org",
			wantNumber: 7,
		},
		{
			name:       "Enterprise domain",
			projectURL: "https://github.example.com/orgs/platform/projects/12",
			wantOrg:    "platform",
			wantNumber: 12,
		},
		{
			name:       "Trailing view segment",
			projectURL: "https://github.com/orgs/my-org/projects/7/views/1",
			wantOrg:    "my-org",
			wantNumber: 7,
		},
		{
			name:       "Repository URL is rejected",
			projectURL: "https://github.com/my-org/my-repo",
			wantErr:    true,
		},
		{
			name:       "Non-numeric project number",
			projectURL: "https://github.com/orgs/my-org/projects/seven",
			wantErr:    true,
		},
		{
			name:       "Empty string",
			projectURL: "",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			org, number, err := parseProjectURL(tt.projectURL)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOrg, org)
			assert.Equal(t, tt.wantNumber, number)
		})
	}
}

func TestFieldKind(t *testing.T) {
	tests := []struct {
		typeName string
		want     string
	}{
		{"ProjectV2ItemFieldTextValue", metrics.FieldTypeText},
		{"ProjectV2ItemFieldSingleSelectValue", metrics.FieldTypeSingleSelect},
		{"ProjectV2ItemFieldNumberValue", metrics.FieldTypeNumber},
		{"ProjectV2ItemFieldUserValue", metrics.FieldTypeUsers},
		{"ProjectV2ItemFieldIterationValue", "ProjectV2ItemFieldIterationValue"},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldKind(tt.typeName))
		})
	}
}

// TestProjectItemsResponseDecoding exercises the wire shapes against a
// representative GraphQL payload and runs the decoded items through
// normalization.
func TestProjectItemsResponseDecoding(t *testing.T) {
	payload := `{
	  "data": {
	    "organization": {
	      "projectV2": {
	        "title": "Team Board",
	        "items": {
	          "nodes": [
	            {
	              "id": "PVTI_1",
	              "content": {
	                "__typename": "Issue",
	                "title": "Fix bug",
	                "url": "https://github.com/org/repo/issues/1",
	                "assignees": {"nodes": [{"login": "bob", "name": "Bob B."}]}
	              },
	              "fieldValues": {
	                "nodes": [
	                  {
	                    "__typename": "ProjectV2ItemFieldSingleSelectValue",
	                    "name": "In Progress",
	                    "field": {"name": "Status"}
	                  },
	                  {
	                    "__typename": "ProjectV2ItemFieldNumberValue",
	                    "number": 3,
	                    "field": {"name": "Time Estimate"}
	                  }
	                ]
	              }
	            },
	            {
	              "id": "PVTI_2",
	              "content": {
	                "__typename": "DraftIssue",
	                "title": "Plan sprint"
	              },
	              "fieldValues": {
	                "nodes": [
	                  {
	                    "__typename": "ProjectV2ItemFieldUserValue",
	                    "users": {"nodes": [{"login": "carol", "name": "Carol C."}]},
	                    "field": {"name": "Assignees"}
	                  },
	                  {"__typename": "ProjectV2ItemFieldIterationValue"}
	                ]
	              }
	            },
	            {
	              "id": "PVTI_3",
	              "content": null,
	              "fieldValues": {"nodes": []}
	            }
	          ]
	        }
	      }
	    }
	  }
	}`

	var result projectItemsResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &result))
	require.NotNil(t, result.Data.Organization.ProjectV2)

	items := result.Data.Organization.ProjectV2.Items.Nodes
	require.Len(t, items, 3)

	raw := make([]metrics.Item, 0, len(items))
	for _, item := range items {
		raw = append(raw, item.toMetricsItem())
	}
	cards := metrics.NormalizeItems(raw)

	require.Len(t, cards, 3)

	assert.Equal(t, "Fix bug", cards[0].Title)
	assert.Equal(t, models.ContentTypeIssue, cards[0].Type)
	assert.Equal(t, "In Progress", cards[0].Status)
	assert.Equal(t, []string{"bob"}, cards[0].Assignees)
	assert.Equal(t, 3.0, cards[0].Fields["Time Estimate"])

	assert.Equal(t, "Plan sprint", cards[1].Title)
	assert.Equal(t, models.ContentTypeDraftIssue, cards[1].Type)
	assert.Equal(t, []string{"carol"}, cards[1].Assignees)
	// The iteration field has no extractable value and leaves no entry
	assert.Len(t, cards[1].Fields, 1)

	assert.Equal(t, models.NoTitle, cards[2].Title)
	assert.Empty(t, cards[2].Type)
}

func TestProjectItemsResponseMissingProject(t *testing.T) {
	payload := `{"data": {"organization": {"projectV2": null}}}`

	var result projectItemsResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &result))

	assert.Nil(t, result.Data.Organization.ProjectV2)
}
