package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
)

var flagLogFile string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a universe in the terminal",
	Long: `Seed a universe and run it in the terminal.

Controls:
  Space/P        - Pause/resume
  N              - Step one generation
  Arrows/hjkl    - Move cursor
  Enter/X        - Toggle cell under cursor
  R              - Reseed
  C              - Clear
  T              - Cycle topology
  +/-            - Faster/slower
  ?              - Full help
  Q/Ctrl+C       - Quit

Settings are read from --config, ~/.tuilife/configs/life.yaml or
./configs/life.yaml, then overridden by --preset and explicit flags.

Examples:
  life run
  life run --preset seeds --ratio 0.2
  life run --topology triangle --rule B45/S34
  life run --width 60 --height 30 --seed 42
  life run --log-level debug --log-file life.log`,
	RunE: runRun,
}

func init() {
	addUniverseFlags(runCmd)
	runCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is owned by the UI)")
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "life")
	if err != nil {
		return err
	}

	return tui.Run(cfg, runtimeConfig(cfg), logger)
}
