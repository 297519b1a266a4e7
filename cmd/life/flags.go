package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// Universe flags shared by run, menu, step and serve.
var (
	flagConfig   string
	flagPreset   string
	flagRule     string
	flagTopology string
	flagWidth    int
	flagHeight   int
	flagRatio    float64
)

func addUniverseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom life config YAML")
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Rule preset ID (see 'life list')")
	cmd.Flags().StringVar(&flagRule, "rule", "", "Rule in B<digits>/S<digits> form, overrides --preset")
	cmd.Flags().StringVar(&flagTopology, "topology", "", "Grid topology: square, triangle, hexagon")
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Universe width in cells (0 = fit terminal)")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Universe height in cells (0 = fit terminal)")
	cmd.Flags().Float64Var(&flagRatio, "ratio", life.DefaultAliveRatio, "Probability that a seeded cell starts alive")
}

// resolveConfig loads the config file and applies the preset and any flags
// the user set explicitly, in that order.
func resolveConfig(cmd *cobra.Command) (config.LifeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.LifeConfig{}, err
	}

	if flagPreset != "" {
		if !registry.Exists(flagPreset) {
			return config.LifeConfig{}, fmt.Errorf("unknown preset %q, run 'life list' to see available presets", flagPreset)
		}
		p, err := registry.Get(flagPreset)
		if err != nil {
			return config.LifeConfig{}, err
		}
		config.ApplyPreset(&cfg, p)
	}

	flags := cmd.Flags()
	if flags.Changed("rule") {
		cfg.Universe.Rule = flagRule
	}
	if flags.Changed("topology") {
		topo, err := life.ParseTopology(flagTopology)
		if err != nil {
			return config.LifeConfig{}, err
		}
		cfg.Universe.Topology = topo
	}
	if flags.Changed("width") {
		cfg.Universe.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Universe.Height = flagHeight
	}
	if flags.Changed("ratio") {
		cfg.Universe.AliveRatio = flagRatio
	}
	if flags.Changed("fps") {
		cfg.Run.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Run.Seed = flagSeed
	}

	if err := cfg.Validate(); err != nil {
		return config.LifeConfig{}, err
	}
	return cfg, nil
}

// runtimeConfig combines the resolved config with the terminal size,
// keeping the default size when stdout is not a terminal.
func runtimeConfig(cfg config.LifeConfig) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = core.ClampTickRate(cfg.Run.TickRate)
	rt.Seed = cfg.Run.Seed
	return rt
}
