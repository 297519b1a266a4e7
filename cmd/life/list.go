package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rule presets",
	Long:  `Shows a list of all rule presets known to life.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Fprintln(out, "No presets available.")
		return
	}

	fmt.Fprintln(out, "Available presets:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, p := range presets {
		maxIDLen = max(maxIDLen, len(p.ID))
		maxTitleLen = max(maxTitleLen, len(p.Title))
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %-*s  %-14s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Rule", "Topology")
	fmt.Fprintf(out, "  %-*s  %-*s  %-14s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----", "--------")

	for _, p := range presets {
		topo := "any"
		if p.Topology.Valid() {
			topo = p.Topology.String()
		}
		fmt.Fprintf(out, "  %-*s  %-*s  %-14s  %s\n", maxIDLen, p.ID, maxTitleLen, p.Title, p.Rule, topo)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'life run --preset <id>' to start one.")
}
