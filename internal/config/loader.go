package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNoEntities is returned for a level without any entity.
var ErrNoEntities = errors.New("level has no entities")

// LoadLevel loads a level configuration.
// Search order: customPath -> ~/.platformer/configs/level.yaml -> ./configs/level.yaml -> embedded default
func LoadLevel(customPath string) (LevelConfig, error) {
	var cfg LevelConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err = ParseLevel(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("level.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseLevel(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/level.yaml"); err == nil {
		if cfg, err := ParseLevel(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseLevel(defaultLevelYAML)
	if err != nil {
		return DefaultLevelConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseLevel decodes and validates a level document.
func ParseLevel(data []byte) (LevelConfig, error) {
	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks entity names and parent ordering.
func (c LevelConfig) Validate() error {
	if len(c.Entities) == 0 {
		return ErrNoEntities
	}
	seen := make(map[string]bool, len(c.Entities))
	for i, e := range c.Entities {
		if e.Name == "" {
			return fmt.Errorf("entity %d: missing name", i)
		}
		if e.Parent != "" && !seen[e.Parent] {
			return fmt.Errorf("entity %q: parent %q must be declared first", e.Name, e.Parent)
		}
		for _, b := range e.Behaviors {
			if b.Kind == "" {
				return fmt.Errorf("entity %q: behavior without kind", e.Name)
			}
		}
		seen[e.Name] = true
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}
