// Package config provides configuration loading for the caselink CLI.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds CLI harness configuration. Subdomain is deliberately not
// required here: its absence must surface as a configuration error from the
// connector itself, before any network call.
type Config struct {
	Subdomain  string `yaml:"subdomain" validate:"omitempty,hostname"`
	APIVersion string `yaml:"apiVersion"`
	Strategy   string `yaml:"strategy" validate:"omitempty,oneof=saved-view static-category"`
	Service    string `yaml:"service"`

	// TokenEnv names the environment variable holding the bearer token.
	TokenEnv string `yaml:"tokenEnv"`

	LogLevel string `yaml:"logLevel" validate:"omitempty,oneof=trace debug info warn error"`
}

// DefaultTokenEnv is the environment variable consulted for the bearer
// token when none is configured.
const DefaultTokenEnv = "SALESFORCE_ACCESS_TOKEN"

var validate = validator.New()

// Load builds configuration from an optional YAML file overridden by
// environment variables (CASELINK_*).
func Load(path string) (*Config, error) {
	cfg := &Config{
		TokenEnv: DefaultTokenEnv,
		LogLevel: "info",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.Subdomain = getEnv("CASELINK_SUBDOMAIN", cfg.Subdomain)
	cfg.APIVersion = getEnv("CASELINK_API_VERSION", cfg.APIVersion)
	cfg.Strategy = getEnv("CASELINK_STRATEGY", cfg.Strategy)
	cfg.Service = getEnv("CASELINK_SERVICE", cfg.Service)
	cfg.TokenEnv = getEnv("CASELINK_TOKEN_ENV", cfg.TokenEnv)
	cfg.LogLevel = getEnv("CASELINK_LOG_LEVEL", cfg.LogLevel)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ConnectorConfig returns the config as the map shape importer factories
// consume.
func (c *Config) ConnectorConfig() map[string]any {
	return map[string]any{
		"subdomain":  c.Subdomain,
		"apiVersion": c.APIVersion,
		"strategy":   c.Strategy,
		"service":    c.Service,
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
