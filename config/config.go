package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".batcharr"))
		}

		// Check /etc
		v.AddConfigPath("/etc/batcharr/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Sonarr defaults
	v.SetDefault("sonarr.url", "http://localhost:8989")

	// Add defaults
	v.SetDefault("defaults.monitor", "all")
	v.SetDefault("defaults.series_type", "standard")
	v.SetDefault("defaults.season_folder", true)
	v.SetDefault("defaults.search_on_add", true)
	v.SetDefault("defaults.unmet_search", true)

	// Safety defaults
	v.SetDefault("safety.dry_run", false)
	v.SetDefault("safety.confirm_delete", true)
	v.SetDefault("safety.show_details", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// Monitor modes and series types Sonarr accepts; kept in sync with the
// sonarr package option sets.
var (
	validMonitors = []string{"all", "future", "missing", "existing", "pilot", "firstSeason", "latestSeason", "none"}
	validTypes    = []string{"standard", "daily", "anime"}
)

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Sonarr.URL == "" {
		return fmt.Errorf("sonarr.url is required")
	}

	if cfg.Sonarr.APIKey == "" || cfg.Sonarr.APIKey == "your-api-key-here" {
		return fmt.Errorf("sonarr.api_key must be set to a valid API key")
	}

	if !slices.Contains(validMonitors, cfg.Defaults.Monitor) {
		return fmt.Errorf("invalid defaults.monitor: %s", cfg.Defaults.Monitor)
	}

	if !slices.Contains(validTypes, cfg.Defaults.SeriesType) {
		return fmt.Errorf("invalid defaults.series_type: %s", cfg.Defaults.SeriesType)
	}

	if cfg.Defaults.PerRequest < 0 {
		return fmt.Errorf("defaults.per_request must not be negative")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
