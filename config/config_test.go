package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		Sonarr: SonarrConfig{
			URL:    "http://localhost:8989",
			APIKey: "valid-api-key",
		},
		Defaults: DefaultsConfig{
			Monitor:    "all",
			SeriesType: "standard",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(cfg *Config) {},
			wantErr: false,
		},
		{
			name:    "missing URL",
			mutate:  func(cfg *Config) { cfg.Sonarr.URL = "" },
			wantErr: true,
		},
		{
			name:    "missing API key",
			mutate:  func(cfg *Config) { cfg.Sonarr.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "placeholder API key",
			mutate:  func(cfg *Config) { cfg.Sonarr.APIKey = "your-api-key-here" },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	tests := []struct {
		name       string
		monitor    string
		seriesType string
		perRequest int
		wantErr    bool
	}{
		{
			name:       "valid defaults",
			monitor:    "firstSeason",
			seriesType: "anime",
			wantErr:    false,
		},
		{
			name:       "invalid monitor",
			monitor:    "sometimes",
			seriesType: "standard",
			wantErr:    true,
		},
		{
			name:       "invalid series type",
			monitor:    "all",
			seriesType: "cartoon",
			wantErr:    true,
		},
		{
			name:       "negative per_request",
			monitor:    "all",
			seriesType: "standard",
			perRequest: -1,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Defaults.Monitor = tt.monitor
			cfg.Defaults.SeriesType = tt.seriesType
			cfg.Defaults.PerRequest = tt.perRequest

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
