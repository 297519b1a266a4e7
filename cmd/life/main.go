// life is a terminal host for generalized cellular automata on square,
// triangular and hexagonal toroidal grids.
//
// Usage:
//
//	life run                 - Run a universe in the terminal
//	life menu                - Pick a rule preset interactively
//	life step                - Advance a universe headlessly and print it
//	life list                - List rule presets
//	life serve               - Start SSH server, one universe per session
//
// Global flags:
//
//	--fps <rate>         - Generations per second (default from config)
//	--seed <value>       - RNG seed for reproducible soups
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Cellular automata in your terminal",
	Long: `life runs B/S cellular automata on toroidal square, triangle and
hexagon grids directly in your terminal.

Available commands:
  run      - Run a universe interactively
  menu     - Pick a rule preset, then run it
  step     - Advance a universe without a UI and print the result
  list     - Show all rule presets
  serve    - Start SSH server for remote sessions

Examples:
  life run
  life run --preset highlife
  life run --topology hexagon --rule B2/S34
  life step --width 20 --height 10 --generations 50 --seed 7
  life serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 24, "Generations per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger creates a logger writing to w at the level given by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
