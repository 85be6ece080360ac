// Package config provides centralized configuration management for the application.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application.
type Config struct {
	GitHub GitHubConfig
}

// GitHubConfig holds GitHub specific configuration.
type GitHubConfig struct {
	// Token is the personal access token used for the API session
	Token string

	// Domain is the GitHub host, "github.com" unless an Enterprise
	// installation is targeted
	Domain string
}

// LoadConfig initializes and loads configuration from environment
// variables, reading an optional .env file first.
func LoadConfig() (*Config, error) {
	// A missing .env file is not an error; real environment variables win
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Map specific environment variables
	v.BindEnv("github.token", "GITHUB_TOKEN")
	v.BindEnv("github.domain", "GITHUB_DOMAIN")

	config := &Config{
		GitHub: GitHubConfig{
			Token:  v.GetString("github.token"),
			Domain: v.GetString("github.domain"),
		},
	}

	if config.GitHub.Domain == "" {
		config.GitHub.Domain = "github.com"
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// validateConfig ensures that all required configuration values are provided.
func validateConfig(config *Config) error {
	var missingVars []string

	if config.GitHub.Token == "" {
		missingVars = append(missingVars, "GITHUB_TOKEN")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}
