package registry

import (
	"testing"

	"github.com/vovakirdan/tui-life/internal/life"
)

func TestBuiltinPresets(t *testing.T) {
	list := List()
	if len(list) < 9 {
		t.Fatalf("expected at least 9 built-in presets, got %d", len(list))
	}

	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	for _, p := range list {
		if _, err := p.RuleSet(); err != nil {
			t.Errorf("preset %q has invalid rule %q: %v", p.ID, p.Rule, err)
		}
		if p.Topology != 0 && !p.Topology.Valid() {
			t.Errorf("preset %q has invalid topology %v", p.ID, p.Topology)
		}
	}
}

func TestGet(t *testing.T) {
	p, err := Get("conway")
	if err != nil {
		t.Fatalf("Get(conway) failed: %v", err)
	}
	rules, _ := p.RuleSet()
	if rules.BornDigits() != "3" || rules.SurvivesDigits() != "23" {
		t.Errorf("conway rule = %s, expected B3/S23", rules)
	}

	hex, err := Get("hexlife")
	if err != nil {
		t.Fatalf("Get(hexlife) failed: %v", err)
	}
	if hex.Topology != life.Hexagon {
		t.Errorf("hexlife topology = %v, expected hexagon", hex.Topology)
	}

	if _, err := Get("nope"); err == nil {
		t.Error("Get(nope) should fail")
	}
	if Exists("nope") {
		t.Error("Exists(nope) should be false")
	}
	if !Exists("seeds") {
		t.Error("Exists(seeds) should be true")
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name   string
		preset Preset
	}{
		{"duplicate id", Preset{ID: "conway", Rule: "B3/S23"}},
		{"bad rule", Preset{ID: "broken-preset", Rule: "B3/Sx"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%+v) should panic", tc.preset)
				}
			}()
			Register(tc.preset)
		})
	}

	if Exists("broken-preset") {
		t.Error("a preset with a bad rule must not be registered")
	}
}
