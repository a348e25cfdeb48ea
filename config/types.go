package config

// Config represents the complete configuration structure
type Config struct {
	Sonarr   SonarrConfig   `mapstructure:"sonarr"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Filter   FilterConfig   `mapstructure:"filter"`
	Safety   SafetyConfig   `mapstructure:"safety"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// SonarrConfig holds Sonarr API connection details
type SonarrConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
	// Legacy targets the pre-v3 API field naming and URL prefix.
	Legacy bool `mapstructure:"legacy"`
}

// DefaultsConfig holds the default add options applied when the
// corresponding command flags are not given
type DefaultsConfig struct {
	RootFolder      string `mapstructure:"root_folder"`
	QualityProfile  string `mapstructure:"quality_profile"`
	LanguageProfile string `mapstructure:"language_profile"`
	Monitor         string `mapstructure:"monitor"`
	SeriesType      string `mapstructure:"series_type"`
	SeasonFolder    bool   `mapstructure:"season_folder"`
	SearchOnAdd     bool   `mapstructure:"search_on_add"`
	UnmetSearch     bool   `mapstructure:"unmet_search"`
	PerRequest      int    `mapstructure:"per_request"`
}

// FilterConfig contains named filter presets for the list command
type FilterConfig map[string]string

// SafetyConfig contains safety-related settings
type SafetyConfig struct {
	DryRun        bool `mapstructure:"dry_run"`
	ConfirmDelete bool `mapstructure:"confirm_delete"`
	ShowDetails   bool `mapstructure:"show_details"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
