package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const gliderConfigFile = "glider.yaml"

// LoadGlider loads the glider configuration.
// Search order: customPath -> ~/.glider/configs/glider.yaml -> ./configs/glider.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial YAML only overrides the
// keys it names.
func LoadGlider(customPath string) (GliderConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultGliderConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseGlider(data)
		if err != nil {
			return DefaultGliderConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(gliderConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseGlider(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", gliderConfigFile)); err == nil {
		if cfg, err := parseGlider(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseGlider(defaultGliderYAML)
	if err != nil {
		return DefaultGliderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseGlider decodes YAML over the hardcoded defaults and validates the result.
func parseGlider(data []byte) (GliderConfig, error) {
	cfg := DefaultGliderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".glider", "configs", filename)
}

// ApplyGliderPreset modifies the config based on a difficulty preset.
func ApplyGliderPreset(cfg *GliderConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust lives based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Game.Lives = 15
	case DifficultyHard:
		cfg.Game.Lives = 5
	}
}
