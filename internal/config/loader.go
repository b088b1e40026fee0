package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLanes loads Lane Racer configuration.
// Search order: customPath -> ~/.carsamedia/configs/lanes.yaml -> ./configs/lanes.yaml -> embedded default
func LoadLanes(customPath string) (LanesConfig, error) {
	return load(customPath, "lanes.yaml", defaultLanesYAML, DefaultLanesConfig, LanesConfig.Validate)
}

// LoadApp loads the application settings.
// Search order: customPath -> ~/.carsamedia/configs/app.yaml -> ./configs/app.yaml -> embedded default
func LoadApp(customPath string) (AppConfig, error) {
	return load(customPath, "app.yaml", defaultAppYAML, DefaultAppConfig, nil)
}

// load walks the search order for one config file. Files are decoded on top
// of the hard-coded defaults so a partial YAML only overrides what it names.
func load[T any](customPath, filename string, embedded []byte, defaults func() T, validate func(T) error) (T, error) {
	parse := func(data []byte) (T, error) {
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
		if validate != nil {
			if err := validate(cfg); err != nil {
				return cfg, err
			}
		}
		return cfg, nil
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return defaults(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(embedded)
	if err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".carsamedia", "configs", filename)
}
