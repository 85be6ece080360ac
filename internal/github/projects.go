package github

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/devsight/devsight/internal/logging"
	"github.com/devsight/devsight/internal/metrics"
	"github.com/devsight/devsight/pkg/models"
)

// projectItemsQuery fetches the items of an organization project board,
// with the content union (Issue, PullRequest, DraftIssue) and the
// project-level field values each item carries.
const projectItemsQuery = `
query($org: String!, $number: Int!) {
  organization(login: $org) {
    projectV2(number: $number) {
      title
      items(first: 100) {
        nodes {
          id
          content {
            __typename
            ... on Issue {
              title
              url
              assignees(first: 10) { nodes { login name } }
            }
            ... on PullRequest {
              title
              url
              assignees(first: 10) { nodes { login name } }
            }
            ... on DraftIssue {
              title
            }
          }
          fieldValues(first: 20) {
            nodes {
              __typename
              ... on ProjectV2ItemFieldTextValue {
                text
                field { ... on ProjectV2FieldCommon { name } }
              }
              ... on ProjectV2ItemFieldSingleSelectValue {
                name
                field { ... on ProjectV2FieldCommon { name } }
              }
              ... on ProjectV2ItemFieldNumberValue {
                number
                field { ... on ProjectV2FieldCommon { name } }
              }
              ... on ProjectV2ItemFieldUserValue {
                users(first: 10) { nodes { login name } }
                field { ... on ProjectV2FieldCommon { name } }
              }
            }
          }
        }
      }
    }
  }
}`

// graphQLRequest is the request body of a GraphQL API call.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// projectItemsResponse mirrors the shape of the project items query result.
type projectItemsResponse struct {
	Data struct {
		Organization struct {
			ProjectV2 *struct {
				Title string `json:"title"`
				Items struct {
					Nodes []projectItem `json:"nodes"`
				} `json:"items"`
			} `json:"projectV2"`
		} `json:"organization"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// projectItem is one raw board item on the wire.
type projectItem struct {
	ID      string       `json:"id"`
	Content *itemContent `json:"content"`

	FieldValues struct {
		Nodes []fieldValue `json:"nodes"`
	} `json:"fieldValues"`
}

// itemContent is the content union behind a board item. Only the fields of
// the variant named by TypeName are populated; drafts carry a title only.
type itemContent struct {
	TypeName string `json:"__typename"`
	Title    string `json:"title"`
	URL      string `json:"url"`

	Assignees struct {
		Nodes []userNode `json:"nodes"`
	} `json:"assignees"`
}

// fieldValue is the field-value union: one of the kind-specific payloads is
// populated depending on TypeName.
type fieldValue struct {
	TypeName string  `json:"__typename"`
	Text     string  `json:"text"`
	Name     string  `json:"name"`
	Number   float64 `json:"number"`

	Users struct {
		Nodes []userNode `json:"nodes"`
	} `json:"users"`

	Field struct {
		Name string `json:"name"`
	} `json:"field"`
}

// userNode is an identity reference on the wire.
type userNode struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

// ProjectCards fetches the items of an organization project board and
// normalizes them into card records. A missing project, denied access or an
// empty board all resolve to an empty list rather than an error, so callers
// treat "no cards" and "no project" identically.
func (c *Client) ProjectCards(ctx context.Context, projectURL string) ([]models.CardRecord, error) {
	org, number, err := parseProjectURL(projectURL)
	if err != nil {
		return nil, err
	}

	body := graphQLRequest{
		Query:     projectItemsQuery,
		Variables: map[string]any{"org": org, "number": number},
	}

	req, err := c.client.NewRequest("POST", "graphql", body)
	if err != nil {
		return nil, fmt.Errorf("failed to build project query: %w", err)
	}

	var result projectItemsResponse
	if _, err := c.client.Do(ctx, req, &result); err != nil {
		logging.Error("project query failed", "org", org, "project_number", number, "error", err)
		return []models.CardRecord{}, nil
	}

	for _, e := range result.Errors {
		logging.Error("project query error", "org", org, "project_number", number, "message", e.Message)
	}

	project := result.Data.Organization.ProjectV2
	if project == nil {
		logging.Info("no project found or access denied", "org", org, "project_number", number)
		return []models.CardRecord{}, nil
	}

	items := project.Items.Nodes
	if len(items) == 0 {
		logging.Info("no items found", "org", org, "project", project.Title)
		return []models.CardRecord{}, nil
	}

	raw := make([]metrics.Item, 0, len(items))
	for _, item := range items {
		raw = append(raw, item.toMetricsItem())
	}

	logging.Debug("fetched project items", "org", org, "project", project.Title, "count", len(raw))
	return metrics.NormalizeItems(raw), nil
}

// parseProjectURL extracts the organization login and project number from a
// board URL like https://github.com/orgs/my-org/projects/7.
func parseProjectURL(projectURL string) (string, int, error) {
	parts := strings.Split(projectURL, "/")
	if len(parts) < 7 || parts[3] != "orgs" || parts[5] != "projects" {
		return "", 0, fmt.Errorf("invalid project url: %s, expected format: https://github.com/orgs/ORG/projects/NUMBER", projectURL)
	}

	org := parts[4]
	number, err := strconv.Atoi(parts[6])
	if err != nil || org == "" {
		return "", 0, fmt.Errorf("invalid project url: %s, expected format: https://github.com/orgs/ORG/projects/NUMBER", projectURL)
	}

	return org, number, nil
}

// toMetricsItem maps a wire item onto the input type of the normalization
// engine.
func (p projectItem) toMetricsItem() metrics.Item {
	item := metrics.Item{}

	if c := p.Content; c != nil {
		content := &metrics.Content{
			Type:  c.TypeName,
			Title: c.Title,
			URL:   c.URL,
		}
		for _, u := range c.Assignees.Nodes {
			content.Assignees = append(content.Assignees, metrics.User(u))
		}
		item.Content = content
	}

	for _, fv := range p.FieldValues.Nodes {
		item.FieldValues = append(item.FieldValues, fv.toMetricsFieldValue())
	}

	return item
}

// toMetricsFieldValue maps a wire field value onto the extractor's tagged
// union. Unknown GraphQL kinds keep their raw typename, which the
// extractor ignores.
func (fv fieldValue) toMetricsFieldValue() metrics.FieldValue {
	out := metrics.FieldValue{
		Kind:      fieldKind(fv.TypeName),
		FieldName: fv.Field.Name,
	}

	switch out.Kind {
	case metrics.FieldTypeText:
		out.Text = fv.Text
	case metrics.FieldTypeSingleSelect:
		out.Option = fv.Name
	case metrics.FieldTypeNumber:
		out.Number = fv.Number
	case metrics.FieldTypeUsers:
		for _, u := range fv.Users.Nodes {
			out.Users = append(out.Users, metrics.User(u))
		}
	}

	return out
}

// fieldKind maps a GraphQL field-value typename to the extractor's kind
// tags.
func fieldKind(typeName string) string {
	switch typeName {
	case "ProjectV2ItemFieldTextValue":
		return metrics.FieldTypeText
	case "ProjectV2ItemFieldSingleSelectValue":
		return metrics.FieldTypeSingleSelect
	case "ProjectV2ItemFieldNumberValue":
		return metrics.FieldTypeNumber
	case "ProjectV2ItemFieldUserValue":
		return metrics.FieldTypeUsers
	default:
		return typeName
	}
}
