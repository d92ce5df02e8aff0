// Package config loads service configuration from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SecurityConfig represents security configuration.
type SecurityConfig struct {
	Security struct {
		Auth struct {
			Provider string `yaml:"provider"`
			Env      struct {
				MinPasswordLength int `yaml:"min_password_length"`
			} `yaml:"env"`
		} `yaml:"auth"`
		JWT struct {
			SecretEnv   string `yaml:"secret_env"`
			ExpiryHours int    `yaml:"expiry_hours"`
		} `yaml:"jwt"`
		Share struct {
			BaseURL string `yaml:"base_url"`
		} `yaml:"share"`
	} `yaml:"security"`
}

// DefaultSecurityConfig returns the configuration used when no YAML file
// is provided: env-backed credentials, one-hour tokens.
func DefaultSecurityConfig() *SecurityConfig {
	var c SecurityConfig
	c.Security.Auth.Provider = "env"
	c.Security.Auth.Env.MinPasswordLength = 12
	c.Security.JWT.SecretEnv = "JWT_SECRET"
	c.Security.JWT.ExpiryHours = 1
	return &c
}

// LoadSecurityConfig loads security configuration from a YAML file.
// The path parameter is expected to come from a trusted source
// (command-line argument or hardcoded default).
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SecurityConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// validateSecurityConfig validates the loaded configuration.
func validateSecurityConfig(config *SecurityConfig) error {
	if config.Security.Auth.Provider == "" {
		return fmt.Errorf("auth provider is required")
	}

	if config.Security.Auth.Provider == "env" {
		if config.Security.Auth.Env.MinPasswordLength <= 0 {
			return fmt.Errorf("min_password_length must be positive")
		}
		if config.Security.Auth.Env.MinPasswordLength < 8 {
			return fmt.Errorf("min_password_length must be at least 8")
		}
	}

	if config.Security.JWT.SecretEnv == "" {
		return fmt.Errorf("jwt secret_env is required")
	}
	if config.Security.JWT.ExpiryHours <= 0 {
		return fmt.Errorf("jwt expiry_hours must be positive")
	}

	return nil
}

// GetAuthProvider returns the configured authentication provider name.
func (c *SecurityConfig) GetAuthProvider() string {
	return c.Security.Auth.Provider
}

// GetMinPasswordLength returns the minimum password length requirement.
func (c *SecurityConfig) GetMinPasswordLength() int {
	return c.Security.Auth.Env.MinPasswordLength
}

// GetJWTSecretEnv returns the environment variable name for the JWT secret.
func (c *SecurityConfig) GetJWTSecretEnv() string {
	return c.Security.JWT.SecretEnv
}

// GetJWTExpiryHours returns the token lifetime in hours.
func (c *SecurityConfig) GetJWTExpiryHours() int {
	return c.Security.JWT.ExpiryHours
}

// GetShareBaseURL returns the configured base URL for share links,
// empty when unset.
func (c *SecurityConfig) GetShareBaseURL() string {
	return c.Security.Share.BaseURL
}
