package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the renderer cannot start with.
func (c *Config) Validate() error {
	g := c.Graphics
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("graphics: window size %dx%d must be positive", g.Width, g.Height)
	}
	if g.FOVDegrees <= 0 || g.FOVDegrees >= 180 {
		return fmt.Errorf("graphics: fov_degrees %g must be in (0, 180)", g.FOVDegrees)
	}
	if g.Near <= 0 || g.Far <= g.Near {
		return fmt.Errorf("graphics: need 0 < near < far, got near=%g far=%g", g.Near, g.Far)
	}
	if c.Renderer.SSBOSize <= 0 {
		return fmt.Errorf("renderer: ssbo_size %d must be positive", c.Renderer.SSBOSize)
	}
	if c.Renderer.RenderScale <= 0 || c.Renderer.RenderScale > 2 {
		return fmt.Errorf("renderer: render_scale %g must be in (0, 2]", c.Renderer.RenderScale)
	}
	if c.Camera.SprintMultiplier <= 0 {
		return fmt.Errorf("camera: sprint_multiplier %g must be positive", c.Camera.SprintMultiplier)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Marcher")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Marcher")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "marcher")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "marcher")
	}
}

// loadFromFile merges a YAML file over cfg. Keys missing from the file keep
// their current values; unknown keys are errors so typos do not go unnoticed.
func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
