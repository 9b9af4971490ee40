package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDodger loads block dodger configuration.
// Search order: customPath -> ~/.arcade/configs/dodger.yaml -> ./configs/dodger.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. The result is not validated here; game construction does that.
func LoadDodger(customPath string) (DodgerConfig, error) {
	cfg := DefaultDodgerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dodger.yaml"); userCfgPath != "" {
		if parsed, ok := tryLoad(userCfgPath); ok {
			return parsed, nil
		}
	}

	// Try local configs directory
	if parsed, ok := tryLoad(filepath.Join("configs", "dodger.yaml")); ok {
		return parsed, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDodgerYAML, &cfg); err != nil {
		return DefaultDodgerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad decodes path over the defaults. Missing or malformed files are skipped.
func tryLoad(path string) (DodgerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DodgerConfig{}, false
	}
	cfg := DefaultDodgerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DodgerConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Marshal renders cfg as YAML.
func Marshal(cfg DodgerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
