package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local configuration file.
const LocalPath = "configs/jewel.yaml"

// Load loads the host configuration.
// Search order: customPath -> ~/.jewel/config.yaml -> ./configs/jewel.yaml -> embedded default.
// Values missing from a file keep their defaults. The result is validated.
func Load(customPath string) (Config, error) {
	cfg, src, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", src, err)
	}
	return cfg, nil
}

func load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), customPath, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, customPath, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if p := userConfigPath(); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, p, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, LocalPath, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), "default", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns ~/.jewel/config.yaml, or "" without a home directory.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jewel", "config.yaml")
}
