// Package config provides configuration loading from a YAML file and
// environment variables. Environment variables take precedence for
// dev flexibility.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration, assembled from
// defaults + YAML + environment.
type Config struct {
	Device   DeviceConfig   `yaml:"device"`
	Tracking TrackingConfig `yaml:"tracking"`
	Plot     PlotConfig     `yaml:"plot"`
}

// DeviceConfig pre-selects an input device, skipping the interactive
// prompt when the path is among the enumerated candidates.
type DeviceConfig struct {
	Path string `yaml:"path"`
}

// TrackingConfig holds session timing settings.
type TrackingConfig struct {
	// RecordSeconds is how long `record` captures events.
	RecordSeconds int `yaml:"record_seconds"`

	// CountdownSeconds is the length of the pre-capture countdown.
	CountdownSeconds int `yaml:"countdown_seconds"`

	// GracePeriodMS bounds how long Stop waits for the tracking
	// loop before force-closing the device.
	GracePeriodMS int `yaml:"grace_period_ms"`
}

// PlotConfig holds plot rendering settings.
type PlotConfig struct {
	Output  string `yaml:"output"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	KeepSVG bool   `yaml:"keep_svg"`
}

// GracePeriod returns the shutdown grace period as a duration.
func (t TrackingConfig) GracePeriod() time.Duration {
	return time.Duration(t.GracePeriodMS) * time.Millisecond
}

// DefaultConfigDir returns the default config directory path.
func DefaultConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mousetrack")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	// Allow override via environment variable
	if p := os.Getenv("MOUSETRACK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Tracking: TrackingConfig{
			RecordSeconds:    3,
			CountdownSeconds: 3,
			GracePeriodMS:    1000,
		},
		Plot: PlotConfig{
			Output: "mouse-path.png",
			Width:  1200,
			Height: 600,
		},
	}
}

// Load assembles configuration from defaults + YAML file +
// environment variables. Environment variables always take
// precedence. Returns a usable Config even if the file is missing.
func Load() (*Config, error) {
	cfg := Defaults()

	configPath := DefaultConfigPath()
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", configPath, err)
		}
	}

	// Environment variables override everything
	if v := os.Getenv("MOUSETRACK_DEVICE"); v != "" {
		cfg.Device.Path = v
	}
	if v := os.Getenv("MOUSETRACK_RECORD_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Tracking.RecordSeconds = n
		}
	}
	if v := os.Getenv("MOUSETRACK_PLOT_OUTPUT"); v != "" {
		cfg.Plot.Output = v
	}

	return cfg, nil
}

// WriteConfigFile writes the config to the YAML file.
func WriteConfigFile(cfg *Config) error {
	dir := filepath.Dir(DefaultConfigPath())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(DefaultConfigPath(), data, 0o644)
}
