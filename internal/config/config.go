// Package config loads trailsim settings from an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	// Seed for the random source. 0 means a time-derived seed.
	Seed      int64           `mapstructure:"seed"`
	LogFile   string          `mapstructure:"log_file"`
	Save      SaveConfig      `mapstructure:"save"`
	Travel    TravelConfig    `mapstructure:"travel"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	UI        UIConfig        `mapstructure:"ui"`
}

// SaveConfig locates the tombstone archive.
type SaveConfig struct {
	Path string `mapstructure:"path"`
}

// TravelConfig tunes each leg of the journey.
type TravelConfig struct {
	MinMiles       int `mapstructure:"min_miles"`
	MaxMiles       int `mapstructure:"max_miles"`
	AttritionOneIn int `mapstructure:"attrition_one_in"`
	WearPerLeg     int `mapstructure:"wear_per_leg"`
}

// TelemetryConfig toggles OpenTelemetry export.
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// UIConfig holds terminal settings.
type UIConfig struct {
	TickMS     int    `mapstructure:"tick_ms"`
	Foreground string `mapstructure:"foreground"`
	Background string `mapstructure:"background"`
}

// Load reads configuration from file and env. Env var overrides use prefix TRAILSIM_,
// e.g. TRAILSIM_TRAVEL_MAX_MILES. TRAILSIM_CONFIG points at an explicit config file.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("seed", 0)
	v.SetDefault("log_file", "trailsim.log")
	v.SetDefault("save.path", filepath.Join(".saves", "tombstones.yaml"))
	v.SetDefault("travel.min_miles", 10)
	v.SetDefault("travel.max_miles", 30)
	v.SetDefault("travel.attrition_one_in", 6)
	v.SetDefault("travel.wear_per_leg", 1)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("ui.tick_ms", 100)
	v.SetDefault("ui.foreground", "#E0E0E0")
	v.SetDefault("ui.background", "#000000")

	v.SetConfigType("yaml")

	if cfgPath := os.Getenv("TRAILSIM_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "trailsim"))
		v.SetConfigName("trailsim")
	}

	v.SetEnvPrefix("TRAILSIM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the simulation cannot run with.
func (c Config) Validate() error {
	if c.Travel.MinMiles <= 0 {
		return fmt.Errorf("travel.min_miles must be positive, got %d", c.Travel.MinMiles)
	}
	if c.Travel.MaxMiles <= c.Travel.MinMiles {
		return fmt.Errorf("travel.max_miles (%d) must be greater than travel.min_miles (%d)",
			c.Travel.MaxMiles, c.Travel.MinMiles)
	}
	if c.Travel.AttritionOneIn < 0 {
		return fmt.Errorf("travel.attrition_one_in must not be negative, got %d", c.Travel.AttritionOneIn)
	}
	if c.Travel.WearPerLeg < 0 {
		return fmt.Errorf("travel.wear_per_leg must not be negative, got %d", c.Travel.WearPerLeg)
	}
	if c.UI.TickMS <= 0 {
		return fmt.Errorf("ui.tick_ms must be positive, got %d", c.UI.TickMS)
	}
	return nil
}
