package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// Load loads the life configuration.
// Search order: customPath -> ~/.tuilife/configs/life.yaml -> ./configs/life.yaml -> embedded default
func Load(customPath string) (LifeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LifeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return LifeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("life.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/life.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultLifeYAML)
	if err != nil {
		return DefaultLifeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the hardcoded defaults and validates the result.
// Fields missing from data keep their default values.
func Parse(data []byte) (LifeConfig, error) {
	cfg := DefaultLifeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LifeConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return LifeConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can build a universe.
func (c LifeConfig) Validate() error {
	if _, err := c.RuleSet(); err != nil {
		return err
	}
	if !c.Universe.Topology.Valid() {
		return fmt.Errorf("config: topology %v: %w", c.Universe.Topology, life.ErrInvalidTopology)
	}
	if c.Universe.Width < 0 || c.Universe.Height < 0 {
		return fmt.Errorf("config: size %dx%d: %w", c.Universe.Width, c.Universe.Height, life.ErrInvalidDimensions)
	}
	if c.Universe.AliveRatio < 0 || c.Universe.AliveRatio > 1 {
		return fmt.Errorf("config: alive_ratio %v must be within [0, 1]", c.Universe.AliveRatio)
	}
	if c.Run.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate %d must be positive", c.Run.TickRate)
	}
	for name, glyph := range map[string]string{"alive_glyph": c.Render.AliveGlyph, "dead_glyph": c.Render.DeadGlyph} {
		if utf8.RuneCountInString(glyph) != 1 {
			return fmt.Errorf("config: %s %q must be a single character", name, glyph)
		}
	}
	return nil
}

// ApplyPreset replaces the rule with the preset's, and the topology when
// the preset is tied to one.
func ApplyPreset(cfg *LifeConfig, p registry.Preset) {
	cfg.Universe.Rule = p.Rule
	if p.Topology.Valid() {
		cfg.Universe.Topology = p.Topology
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tuilife", "configs", filename)
}
