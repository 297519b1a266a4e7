package life

import (
	"errors"
	"testing"
)

func TestParseTopology(t *testing.T) {
	tests := []struct {
		name     string
		expected Topology
	}{
		{"square", Square},
		{"Triangle", Triangle},
		{"HEXAGON", Hexagon},
		{"hex", Hexagon},
	}

	for _, tc := range tests {
		got, err := ParseTopology(tc.name)
		if err != nil {
			t.Fatalf("ParseTopology(%q) failed: %v", tc.name, err)
		}
		if got != tc.expected {
			t.Errorf("ParseTopology(%q) = %v, expected %v", tc.name, got, tc.expected)
		}
	}

	if _, err := ParseTopology("octagon"); !errors.Is(err, ErrInvalidTopology) {
		t.Errorf("ParseTopology(octagon) error = %v, expected ErrInvalidTopology", err)
	}
}

func TestTopologyNextCycles(t *testing.T) {
	topo := Square
	seen := map[Topology]bool{}
	for i := 0; i < len(Topologies); i++ {
		seen[topo] = true
		topo = topo.Next()
	}
	if topo != Square {
		t.Errorf("cycling %d times should return to square, got %v", len(Topologies), topo)
	}
	if len(seen) != len(Topologies) {
		t.Errorf("expected to visit %d topologies, visited %d", len(Topologies), len(seen))
	}
}

func TestTopologyText(t *testing.T) {
	for _, topo := range Topologies {
		text, err := topo.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) failed: %v", topo, err)
		}
		var back Topology
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
		}
		if back != topo {
			t.Errorf("text round trip of %v gave %v", topo, back)
		}
	}

	if _, err := Topology(5).MarshalText(); !errors.Is(err, ErrInvalidTopology) {
		t.Errorf("MarshalText(5) error = %v, expected ErrInvalidTopology", err)
	}
}
