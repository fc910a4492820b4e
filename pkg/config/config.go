package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Backup  BackupConfig  `mapstructure:"backup"`
	GitHub  GitHubConfig  `mapstructure:"github"`
	History HistoryConfig `mapstructure:"history"`
}

// BackupConfig holds backup destination and listing configuration
type BackupConfig struct {
	DestinationPath string `mapstructure:"destination_path"` // Directory holding the cloned repositories
	Limit           int    `mapstructure:"limit"`            // Max repositories requested from the listing service
}

// GitHubConfig holds GitHub integration configuration
type GitHubConfig struct {
	AuthMethod string `mapstructure:"auth_method"` // "token" or "gh_cli"
	Token      string `mapstructure:"token"`       // For token auth (GHVAULT_GITHUB_TOKEN env var takes precedence)
}

// HistoryConfig holds backup run history configuration
type HistoryConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	DatabasePath string `mapstructure:"database_path"`
}

// SecurityWarning represents a configuration security issue
type SecurityWarning struct {
	Field   string
	Message string
}

// Load loads the configuration from file and environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Set defaults
	setDefaults()

	// Unmarshal the config
	if err := viper.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	// Expand paths
	if err := expandPaths(config); err != nil {
		return nil, errors.Wrap(err, "failed to expand paths")
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return config, nil
}

// CheckSecurityWarnings returns warnings for insecure configuration practices.
// Call this when loading config to warn users about tokens stored in config files.
func CheckSecurityWarnings(config *Config) []SecurityWarning {
	var warnings []SecurityWarning

	// Check for tokens in config file (should use environment variables instead)
	if config.GitHub.Token != "" && os.Getenv("GHVAULT_GITHUB_TOKEN") == "" && os.Getenv("GITHUB_TOKEN") == "" {
		warnings = append(warnings, SecurityWarning{
			Field:   "github.token",
			Message: "GitHub token is set in config file. For security, use GITHUB_TOKEN environment variable or 'gh auth login' instead.",
		})
	}

	return warnings
}

// ValidAuthMethods is the list of supported GitHub auth methods.
var ValidAuthMethods = []string{"token", "gh_cli"}

// Validate validates the configuration and returns any validation errors.
func (c *Config) Validate() error {
	if c.GitHub.AuthMethod != "" {
		valid := false
		for _, m := range ValidAuthMethods {
			if c.GitHub.AuthMethod == m {
				valid = true
				break
			}
		}
		if !valid {
			return errors.Newf("github.auth_method: invalid auth method %q: must be one of: token, gh_cli", c.GitHub.AuthMethod)
		}
	}

	if c.Backup.Limit < 0 {
		return errors.Newf("backup.limit: must be non-negative, got %d", c.Backup.Limit)
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory if home dir can't be determined
		homeDir = "."
	}

	// Backup defaults
	viper.SetDefault("backup.destination_path", filepath.Join(homeDir, "GitHub_Backups"))
	viper.SetDefault("backup.limit", 1000)

	// GitHub defaults
	viper.SetDefault("github.auth_method", "gh_cli") // Prefer gh CLI auth
	viper.SetDefault("github.token", "")

	// History defaults
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.database_path", filepath.Join(homeDir, ".local", "share", "ghvault", "history.db"))
}

// expandPaths expands ~ and environment variables in paths
func expandPaths(config *Config) error {
	var err error

	config.Backup.DestinationPath, err = expandPath(config.Backup.DestinationPath)
	if err != nil {
		return err
	}

	config.History.DatabasePath, err = expandPath(config.History.DatabasePath)
	if err != nil {
		return err
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, path[1:]), nil
}
