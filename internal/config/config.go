// Package config loads application settings from a config file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/morita/chartdrill/internal/catalog"
)

// Config holds all application configuration.
type Config struct {
	// DBPath overrides the default SQLite database location.
	DBPath string `mapstructure:"db_path"`

	// CatalogPath points at a catalog JSON file. Empty means the embedded
	// seed catalog.
	CatalogPath string `mapstructure:"catalog_path"`

	// TargetSeconds overrides the per-category solve-time budgets,
	// keyed by category name.
	TargetSeconds map[string]int `mapstructure:"target_seconds"`

	// Session sizing defaults, overridable per invocation by CLI flags.
	QuickSessionSeconds int `mapstructure:"quick_session_seconds"`
	ReviewMax           int `mapstructure:"review_max"`
	SpeedMax            int `mapstructure:"speed_max"`
	WeaknessCount       int `mapstructure:"weakness_count"`

	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from the given file path (optional), the
// CHARTDRILL_* environment, and built-in defaults, in that precedence
// order from highest to lowest: env, file, defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("quick_session_seconds", 600)
	v.SetDefault("review_max", 10)
	v.SetDefault("speed_max", 10)
	v.SetDefault("weakness_count", 20)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("CHARTDRILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$XDG_CONFIG_HOME/chartdrill")
		v.AddConfigPath("$HOME/.config/chartdrill")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for name, secs := range c.TargetSeconds {
		if !catalog.Category(name).Valid() {
			return fmt.Errorf("target_seconds: unknown category %q", name)
		}
		if secs <= 0 {
			return fmt.Errorf("target_seconds: %s must be positive, got %d", name, secs)
		}
	}
	return nil
}

// TargetTimes returns the per-category solve-time overrides as a lookup
// the composer consumes. Missing categories fall through to the catalog
// defaults.
func (c *Config) TargetTimes() catalog.TargetTimes {
	tt := make(catalog.TargetTimes, len(c.TargetSeconds))
	for name, secs := range c.TargetSeconds {
		tt[catalog.Category(name)] = secs
	}
	return tt
}
