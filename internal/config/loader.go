package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadJoust loads the arena configuration.
// Search order: customPath -> ~/.joust/configs/joust.yaml -> ./configs/joust.yaml -> embedded default
func LoadJoust(customPath string) (JoustConfig, error) {
	var cfg JoustConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("joust.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "joust.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultJoustYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultJoustConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (JoustConfig, bool) {
	var cfg JoustConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".joust", "configs", filename)
}

// Validate checks the parts of the config the game cannot run without.
func (c JoustConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	}
	if len(c.Platforms) == 0 {
		return fmt.Errorf("no platforms")
	}
	if len(c.Waves) == 0 {
		return fmt.Errorf("no waves")
	}
	for i, w := range c.Waves {
		if len(w.Platforms) == 0 {
			return fmt.Errorf("wave %d: no active platforms", i+1)
		}
		for _, idx := range w.Platforms {
			if idx < 0 || idx >= len(c.Platforms) {
				return fmt.Errorf("wave %d: platform index %d out of range", i+1, idx)
			}
		}
		for _, name := range w.Spawns {
			if !IsRiderName(name) {
				return fmt.Errorf("wave %d: unknown rider %q", i+1, name)
			}
		}
	}
	return nil
}

// IsRiderName reports whether name is a rider a wave may spawn.
func IsRiderName(name string) bool {
	switch name {
	case "bounder", "hunter", "shadow_lord":
		return true
	}
	return false
}

// ApplyJoustPreset modifies the config based on a difficulty preset.
func ApplyJoustPreset(cfg *JoustConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Spawning.IntervalSeconds = 4
	case DifficultyHard:
		cfg.Player.Lives = 3
		cfg.Spawning.IntervalSeconds = 2
	}
}
