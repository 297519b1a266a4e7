package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// deadSource never seeds a live cell.
type deadSource struct{}

func (deadSource) Float64() float64 { return 1 }

func newDeadUniverse(t *testing.T, w, h int, topo life.Topology) *life.Universe {
	t.Helper()
	u, err := life.New("3", "23", w, h, topo, deadSource{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return u
}

func TestGridSize(t *testing.T) {
	tests := []struct {
		topo       life.Topology
		sw, sh     int
		wantW, wantH int
	}{
		{life.Square, 80, 22, 40, 22},
		{life.Triangle, 80, 22, 80, 22},
		{life.Hexagon, 80, 22, 39, 22},
		{life.Square, 1, 0, 1, 1},
	}

	for _, tt := range tests {
		w, h := GridSize(tt.topo, tt.sw, tt.sh)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("GridSize(%v, %d, %d) = %dx%d, want %dx%d", tt.topo, tt.sw, tt.sh, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestDrawUniverseSquare(t *testing.T) {
	u := newDeadUniverse(t, 3, 2, life.Square)
	if err := u.SetAlive(life.C(1, 0)); err != nil {
		t.Fatal(err)
	}

	s := core.NewScreen(6, 2)
	DrawUniverse(s, u, Glyphs{Alive: '#', Dead: '.'}, life.C(0, 1), true)

	if got := screenRow(s, 0); got != ". # . " {
		t.Errorf("row 0 = %q, want %q", got, ". # . ")
	}
	if got := screenRow(s, 1); got != ". . . " {
		t.Errorf("row 1 = %q, want %q", got, ". . . ")
	}
	if got := s.GetCell(0, 1).Color; got != core.ColorCursor {
		t.Errorf("cursor color = %v, want ColorCursor", got)
	}
	if got := s.GetCell(2, 0).Color; got != core.ColorAlive {
		t.Errorf("alive color = %v, want ColorAlive", got)
	}
}

func TestDrawUniverseHexagonOffset(t *testing.T) {
	u := newDeadUniverse(t, 2, 2, life.Hexagon)
	s := core.NewScreen(5, 2)
	DrawUniverse(s, u, Glyphs{Alive: '#', Dead: '.'}, life.Coord{}, false)

	if got := screenRow(s, 0); got != " . . " {
		t.Errorf("even row = %q, want %q", got, " . . ")
	}
	if got := screenRow(s, 1); got != ". .  " {
		t.Errorf("odd row = %q, want %q", got, ". .  ")
	}
}

func TestDrawUniverseTriangleOrientation(t *testing.T) {
	u := newDeadUniverse(t, 4, 2, life.Triangle)
	if err := u.SetAlive(life.C(0, 0), life.C(1, 0)); err != nil {
		t.Fatal(err)
	}

	s := core.NewScreen(4, 2)
	DrawUniverse(s, u, Glyphs{Alive: '#', Dead: '.'}, life.Coord{}, false)

	if got := screenRow(s, 0); got != "▼▲▽△" {
		t.Errorf("row 0 = %q, want %q", got, "▼▲▽△")
	}
	if got := screenRow(s, 1); got != "△▽△▽" {
		t.Errorf("row 1 = %q, want %q", got, "△▽△▽")
	}
}

func TestGlyphsFrom(t *testing.T) {
	g := GlyphsFrom(config.RenderConfig{AliveGlyph: "█", DeadGlyph: ""})
	if g.Alive != '█' {
		t.Errorf("alive = %q, want █", g.Alive)
	}
	if g.Dead != life.DeadGlyph {
		t.Errorf("dead = %q, want default %q", g.Dead, life.DeadGlyph)
	}
}

// screenRow returns row y of s as plain text.
func screenRow(s *core.Screen, y int) string {
	var sb strings.Builder
	for x := range s.Width() {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}
