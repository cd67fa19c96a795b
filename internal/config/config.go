// Package config loads the optional winit environment configuration:
// which display backend to use and an X11 scale-factor override. Values
// come from an optional YAML file with environment variables taking
// precedence, so a user can steer a binary they cannot rebuild.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Backend selection values.
const (
	BackendAuto    = "auto"
	BackendX11     = "x11"
	BackendWayland = "wayland"
)

// Config is the effective environment configuration.
type Config struct {
	// Backend selects the display backend: auto, x11, or wayland.
	Backend string `yaml:"backend"`
	// Display overrides the X11 display string (otherwise $DISPLAY).
	Display string `yaml:"display"`
	// ScaleFactor overrides the X11 scale factor when > 0.
	ScaleFactor float64 `yaml:"scale_factor"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{Backend: BackendAuto}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "winit", "config.yaml"), nil
}

// Load reads the configuration from the standard location, applies
// environment overrides, and validates the result. A missing file is not
// an error.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath reads the configuration from an explicit file path. A
// missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendAuto
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto the config.
func (c *Config) applyEnv() {
	if v := os.Getenv("WINIT_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := os.Getenv("WINIT_X11_SCALE_FACTOR"); v != "" {
		if scale, err := strconv.ParseFloat(v, 64); err == nil && scale > 0 {
			c.ScaleFactor = scale
		}
	}
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendAuto, BackendX11, BackendWayland:
	default:
		return fmt.Errorf("invalid backend %q: must be one of auto, x11, wayland", c.Backend)
	}
	if c.ScaleFactor < 0 {
		return fmt.Errorf("invalid scale_factor %v: must be positive", c.ScaleFactor)
	}
	return nil
}
