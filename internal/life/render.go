package life

import "strings"

// Glyphs used by RenderText.
const (
	AliveGlyph = '◼'
	DeadGlyph  = '◻'
)

// RenderText draws the grid as text: one line per row, one glyph per cell,
// rows separated by newlines. A grid with no cells renders as "".
func (u *Universe) RenderText() string {
	if u.width == 0 || u.height == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow((u.width*3 + 1) * u.height)
	for y := 0; y < u.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range u.cells[y*u.width : (y+1)*u.width] {
			if c == Alive {
				sb.WriteRune(AliveGlyph)
			} else {
				sb.WriteRune(DeadGlyph)
			}
		}
	}
	return sb.String()
}

// String implements fmt.Stringer using RenderText.
func (u *Universe) String() string {
	return u.RenderText()
}
