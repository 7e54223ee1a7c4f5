package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < preset < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
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
		return filepath.Join(home, "Library", "Application Support", "Tetsuo")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Tetsuo")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "tetsuo")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "tetsuo")
	}
}

// loadFromFile merges a YAML file into cfg. A preset named in the file is
// applied before the rest of the file, so explicit keys override it.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var presetOnly struct {
		Scene struct {
			Preset string `yaml:"preset"`
		} `yaml:"scene"`
	}
	if err := yaml.Unmarshal(data, &presetOnly); err != nil {
		return err
	}
	if presetOnly.Scene.Preset != "" {
		ApplyPreset(cfg, presetOnly.Scene.Preset)
	}
	return yaml.Unmarshal(data, cfg)
}
