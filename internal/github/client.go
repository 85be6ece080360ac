// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v41/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/devsight/devsight/internal/config"
	"github.com/devsight/devsight/internal/logging"
)

// detailFetchRate limits the per-commit detail lookups, which are issued
// once per matching commit and would otherwise burn through the API quota
// on large date ranges.
const detailFetchRate = rate.Limit(5)

// Client encapsulates the GitHub API client.
type Client struct {
	client  *github.Client
	limiter *rate.Limiter
}

// NewClient creates a new GitHub API client using configuration from
// environment variables. It initializes the client with the appropriate
// base URL, authenticates with the GitHub API, and tests the connection.
// It returns the configured client or an error if initialization fails.
func NewClient() (*Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	token := cfg.GitHub.Token
	if token == "" {
		return nil, fmt.Errorf("github token not found in configuration")
	}

	apiURL := apiURLForDomain(cfg.GitHub.Domain)

	logging.Info("github configuration",
		"domain", cfg.GitHub.Domain,
		"api_url", apiURL,
		"token", logging.MaskSensitive(token))

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	client := github.NewClient(tc)

	// If not using default GitHub.com, set custom API endpoint
	if cfg.GitHub.Domain != "github.com" {
		parsedURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github api url: %w", err)
		}

		client.BaseURL = parsedURL
		client.UploadURL = parsedURL
	}

	// Test the token
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		logging.Error("failed to test github token", "error", err)
		return nil, fmt.Errorf("error testing github token: %w", err)
	}

	logging.Info("github authentication successful",
		"username", user.GetLogin())

	return &Client{
		client:  client,
		limiter: rate.NewLimiter(detailFetchRate, 1),
	}, nil
}

// apiURLForDomain constructs the REST API base URL for a GitHub domain.
func apiURLForDomain(domain string) string {
	if domain == "" || domain == "github.com" {
		return "https://api.github.com/"
	}
	return fmt.Sprintf("https://%s/api/v3/", domain)
}

// splitRepository parses an "owner/repo" repository identifier.
func splitRepository(repository string) (string, string, error) {
	parts := strings.Split(repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository format: %s, expected format: owner/repo", repository)
	}
	return parts[0], parts[1], nil
}
