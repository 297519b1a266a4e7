// Package config provides YAML-based configuration loading for the life
// hosts: universe shape and rule, run loop settings and rendering.
package config

import "github.com/vovakirdan/tui-life/internal/life"

// LifeConfig contains all configuration for a life session.
type LifeConfig struct {
	Universe UniverseConfig `yaml:"universe"`
	Run      RunConfig      `yaml:"run"`
	Render   RenderConfig   `yaml:"render"`
}

// UniverseConfig defines the grid and its evolution rule.
type UniverseConfig struct {
	Width      int           `yaml:"width"`  // 0 = fit terminal
	Height     int           `yaml:"height"` // 0 = fit terminal
	Topology   life.Topology `yaml:"topology"`
	Rule       string        `yaml:"rule"`        // B<digits>/S<digits>
	AliveRatio float64       `yaml:"alive_ratio"` // seeding probability
}

// RunConfig defines the tick loop.
type RunConfig struct {
	TickRate    int   `yaml:"tick_rate"` // generations per second
	Seed        int64 `yaml:"seed"`      // 0 = time-based
	StartPaused bool  `yaml:"start_paused"`
}

// RenderConfig defines glyphs and lipgloss colors for the terminal host.
type RenderConfig struct {
	AliveGlyph  string `yaml:"alive_glyph"`
	DeadGlyph   string `yaml:"dead_glyph"`
	AliveColor  string `yaml:"alive_color"`
	DeadColor   string `yaml:"dead_color"`
	CursorColor string `yaml:"cursor_color"`
	StatusColor string `yaml:"status_color"`
}

// RuleSet parses the configured rule.
func (c LifeConfig) RuleSet() (life.RuleSet, error) {
	return life.ParseRuleString(c.Universe.Rule)
}

// NewUniverse builds a universe from the configured rule, topology, seed
// and alive ratio with the given size. Callers resolve "fit to terminal"
// sizes before calling.
func (c LifeConfig) NewUniverse(width, height int) (*life.Universe, error) {
	rules, err := c.RuleSet()
	if err != nil {
		return nil, err
	}

	// Start empty so the configured alive ratio applies to the first seeding.
	u, err := life.New(rules.BornDigits(), rules.SurvivesDigits(), 0, 0, c.Universe.Topology, life.NewSource(c.Run.Seed))
	if err != nil {
		return nil, err
	}
	u.SetAliveRatio(c.Universe.AliveRatio)
	if err := u.Restart(rules.BornDigits(), rules.SurvivesDigits(), width, height, c.Universe.Topology); err != nil {
		return nil, err
	}
	return u, nil
}
