package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "invaders.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml ->
// ./configs/invaders.yaml -> embedded default -> hardcoded default.
//
// Only an explicit customPath can produce an error; files found on the
// search path that fail to parse are skipped.
func Load(customPath string) (InvadersConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return InvadersConfig{}, err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", configFile)); err == nil {
		return cfg, nil
	}

	return Parse(defaultInvadersYAML)
}

// Parse decodes YAML on top of the hardcoded defaults, so partial files only
// override the keys they mention. Invalid YAML falls back to the defaults.
func Parse(data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultInvadersConfig(), nil
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg InvadersConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

func loadFile(path string) (InvadersConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InvadersConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvadersConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}
