package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGifteroids loads Gifteroids configuration.
// Search order: customPath -> ~/.gifteroids/configs/gifteroids.yaml ->
// ./configs/gifteroids.yaml -> embedded default.
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadGifteroids(customPath string) (GifteroidsConfig, error) {
	cfg := DefaultGifteroidsConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("gifteroids.yaml"), filepath.Join("configs", "gifteroids.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path, cfg); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGifteroidsYAML, &cfg); err != nil {
		return DefaultGifteroidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad decodes path over base. Unreadable, malformed or invalid files are
// skipped so the next location in the search order gets a chance.
func tryLoad(path string, base GifteroidsConfig) (GifteroidsConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	if cfg.Validate() != nil {
		return base, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gifteroids", "configs", filename)
}

// ApplyGifteroidsPreset modifies the config based on a difficulty preset.
func ApplyGifteroidsPreset(cfg *GifteroidsConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Agent.Lives = 5
		cfg.Agent.Grace = 4
		cfg.Targets.BaseSpeed = 40
	case DifficultyHard:
		cfg.Agent.Lives = 1
		cfg.Agent.Grace = 2
		cfg.Targets.BaseSpeed = 65
		cfg.Projectiles.Cooldown = 0.35
	}
}
