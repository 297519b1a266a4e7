package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a rule preset, then run it",
	Long: `Show the registered rule presets in a table. Selecting one starts
a universe with that rule, and its topology when the preset has one.
Quitting the universe returns to the menu.

Controls:
  Up/Down/j/k  - Navigate presets
  Enter        - Start universe
  Q            - Quit

Examples:
  life menu
  life menu --width 40 --height 20`,
	RunE: runMenu,
}

func init() {
	addUniverseFlags(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	base, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(io.Discard, "life")
	if err != nil {
		return err
	}

	rt := runtimeConfig(base)

	// Menu loop
	for {
		preset, updated, err := tui.RunPresetPicker(rt)
		if err != nil {
			return fmt.Errorf("preset picker: %w", err)
		}
		if preset == nil {
			return nil
		}
		rt = updated

		cfg := base
		config.ApplyPreset(&cfg, *preset)
		if err := tui.Run(cfg, rt, logger); err != nil {
			return err
		}
	}
}
