package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag in the command tree to its default and
// clears its Changed state, so one test's flags do not leak into the next.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		if err := f.Value.Set(f.DefValue); err != nil {
			t.Fatalf("reset --%s: %v", f.Name, err)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(t, sub)
	}
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	resetFlags(t, rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("life %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestStepCommand(t *testing.T) {
	got := execute(t, "step",
		"--width", "4", "--height", "3",
		"--ratio", "0", "--generations", "2",
		"--log-level", "error",
	)

	want := "◻◻◻◻\n◻◻◻◻\n◻◻◻◻\n" +
		"square B3/S23 4x3 generation 2 population 0\n"
	if got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestStepCommandPresetAndTopology(t *testing.T) {
	got := execute(t, "step",
		"--preset", "hexlife", "--width", "6", "--height", "4",
		"--ratio", "0", "--generations", "0", "--quiet",
		"--log-level", "error",
	)

	want := "hexagon B2/S34 6x4 generation 0 population 0\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestStepCommandFlagsDoNotLeak(t *testing.T) {
	execute(t, "step", "--preset", "seeds", "--ratio", "0", "--generations", "0", "--quiet", "--log-level", "error")

	got := execute(t, "step", "--width", "3", "--height", "2", "--generations", "1", "--log-level", "error")
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("output has %d lines, want grid of 2 rows and a summary:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[2], "square B3/S23 3x2 generation 1") {
		t.Errorf("summary = %q, want default rule with no preset carried over", lines[2])
	}
}

func TestStepCommandUnknownPreset(t *testing.T) {
	resetFlags(t, rootCmd)
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"step", "--preset", "nope", "--log-level", "error"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("step accepted an unknown preset")
	}
}

func TestListCommand(t *testing.T) {
	got := execute(t, "list")
	for _, want := range []string{"conway", "B3/S23", "hexlife", "hexagon", "trilife"} {
		if !strings.Contains(got, want) {
			t.Errorf("list output missing %q", want)
		}
	}
}
