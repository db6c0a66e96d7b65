package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative config file checked after the user one.
const LocalConfigPath = "configs/spaceship.yaml"

// LoadSpaceship loads the game configuration.
// Search order: customPath -> ~/.spaceship/configs/spaceship.yaml -> ./configs/spaceship.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. Only an explicit customPath reports read, parse or
// validation errors; discovered files that fail are skipped.
func LoadSpaceship(customPath string) (SpaceshipConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultSpaceshipConfig(), err
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("spaceship.yaml"), LocalConfigPath}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultSpaceshipYAML)
	if err != nil {
		return DefaultSpaceshipConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and validates one YAML file.
func loadFile(path string) (SpaceshipConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SpaceshipConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return SpaceshipConfig{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (SpaceshipConfig, error) {
	cfg := DefaultSpaceshipConfig()
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
	return filepath.Join(home, ".spaceship", "configs", filename)
}

// ApplySpaceshipPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplySpaceshipPreset(cfg *SpaceshipConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
		cfg.Difficulty.Progression.Type = "score"
	}
}
