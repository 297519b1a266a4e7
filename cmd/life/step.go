package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/life"
)

// Headless size used when the config asks to fit a terminal.
const (
	headlessWidth  = 40
	headlessHeight = 20
)

var (
	flagGenerations int
	flagQuiet       bool
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Advance a universe without a UI and print it",
	Long: `Seed a universe, advance it a number of generations and print the
final grid using ◼ for alive and ◻ for dead cells, one row per line.

Sizes of 0 fall back to 40x20 since there is no terminal to fit.

Examples:
  life step --generations 100 --seed 1
  life step --preset highlife --width 64 --height 32
  life step --topology hexagon --rule B2/S34 --quiet`,
	RunE: runStep,
}

func init() {
	addUniverseFlags(stepCmd)
	stepCmd.Flags().IntVarP(&flagGenerations, "generations", "g", 10, "Number of generations to advance")
	stepCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Print only the summary line")
}

func runStep(cmd *cobra.Command, _ []string) error {
	if flagGenerations < 0 {
		return fmt.Errorf("--generations must not be negative, got %d", flagGenerations)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "life")
	if err != nil {
		return err
	}

	width, height := cfg.Universe.Width, cfg.Universe.Height
	if width == 0 {
		width = headlessWidth
	}
	if height == 0 {
		height = headlessHeight
	}

	u, err := cfg.NewUniverse(width, height)
	if err != nil {
		return err
	}
	logger.Info("universe created",
		"size", fmt.Sprintf("%dx%d", width, height),
		"topology", u.Topology(),
		"rule", u.Rules(),
		"population", u.Population(),
	)

	start := time.Now()
	for range flagGenerations {
		tickStart := time.Now()
		gen := u.Tick()
		logger.Debug("tick", "generation", gen, "took", time.Since(tickStart))
	}
	logger.Info("done", "generations", flagGenerations, "took", time.Since(start))

	out := cmd.OutOrStdout()
	if !flagQuiet {
		fmt.Fprintln(out, u.RenderText())
	}
	fmt.Fprintln(out, summary(u))
	return nil
}

// summary describes the universe state in one line.
func summary(u *life.Universe) string {
	return fmt.Sprintf("%s %s %dx%d generation %d population %d",
		u.Topology(), u.Rules(), u.Width(), u.Height(), u.Generation(), u.Population())
}
