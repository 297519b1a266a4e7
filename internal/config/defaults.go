package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-life/internal/life"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the hardcoded default configuration.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Universe: UniverseConfig{
			Width:      0,
			Height:     0,
			Topology:   life.Square,
			Rule:       "B3/S23",
			AliveRatio: life.DefaultAliveRatio,
		},
		Run: RunConfig{
			TickRate: 24,
			Seed:     0,
		},
		Render: RenderConfig{
			AliveGlyph:  string(life.AliveGlyph),
			DeadGlyph:   string(life.DeadGlyph),
			AliveColor:  "10",
			DeadColor:   "238",
			CursorColor: "11",
			StatusColor: "245",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLifeYAML
}
