package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// Triangle glyphs: cells whose column and row parity differ point up.
const (
	triangleUpAlive   = '▲'
	triangleUpDead    = '△'
	triangleDownAlive = '▼'
	triangleDownDead  = '▽'
)

// Styles maps screen color roles to lipgloss styles.
type Styles map[core.Color]lipgloss.Style

// NewStyles builds the role styles from the render configuration.
func NewStyles(cfg config.RenderConfig) Styles {
	return Styles{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorAlive:   lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.AliveColor)),
		core.ColorDead:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.DeadColor)),
		core.ColorCursor:  lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.CursorColor)).Bold(true),
		core.ColorStatus:  lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.StatusColor)),
		core.ColorMuted:   lipgloss.NewStyle().Faint(true),
	}
}

// Glyphs holds the runes used for square and hexagon cells.
type Glyphs struct {
	Alive rune
	Dead  rune
}

// GlyphsFrom takes the first rune of the configured glyph strings.
func GlyphsFrom(cfg config.RenderConfig) Glyphs {
	g := Glyphs{Alive: life.AliveGlyph, Dead: life.DeadGlyph}
	for _, r := range cfg.AliveGlyph {
		g.Alive = r
		break
	}
	for _, r := range cfg.DeadGlyph {
		g.Dead = r
		break
	}
	return g
}

// cellWidth returns how many screen columns one cell occupies.
func cellWidth(topo life.Topology) int {
	if topo == life.Triangle {
		return 1
	}
	return 2
}

// GridSize returns the largest universe that fits in a screen area of
// screenW x screenH characters for the given topology.
func GridSize(topo life.Topology, screenW, screenH int) (int, int) {
	w := screenW / cellWidth(topo)
	if topo == life.Hexagon {
		w = (screenW - 1) / cellWidth(topo)
	}
	return max(w, 1), max(screenH, 1)
}

// DrawUniverse draws the universe into dst starting at the top-left corner.
// Hexagon rows with even index are shifted right by one column so each
// cell sits between its two neighbors in the adjacent rows.
func DrawUniverse(dst *core.Screen, u *life.Universe, g Glyphs, cursor life.Coord, showCursor bool) {
	topo := u.Topology()
	cw := cellWidth(topo)
	cells := u.Cells()
	w := u.Width()

	for y := 0; y < u.Height(); y++ {
		offset := 0
		if topo == life.Hexagon && y%2 == 0 {
			offset = 1
		}
		for x := 0; x < w; x++ {
			cell := cells[x+y*w]

			color := core.ColorDead
			if cell == life.Alive {
				color = core.ColorAlive
			}
			if showCursor && cursor.X == x && cursor.Y == y {
				color = core.ColorCursor
			}

			dst.SetCell(offset+x*cw, y, glyphFor(topo, g, cell, x, y), color)
		}
	}
}

func glyphFor(topo life.Topology, g Glyphs, cell life.Cell, x, y int) rune {
	if topo != life.Triangle {
		if cell == life.Alive {
			return g.Alive
		}
		return g.Dead
	}

	up := x%2 != y%2
	switch {
	case up && cell == life.Alive:
		return triangleUpAlive
	case up:
		return triangleUpDead
	case cell == life.Alive:
		return triangleDownAlive
	default:
		return triangleDownDead
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles Styles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
