package core

// Color is the role of a screen cell. The platform layer maps roles to
// terminal styles, so the simulation host never deals with ANSI codes.
type Color uint8

// Color roles used when drawing a universe.
const (
	ColorDefault Color = iota
	ColorAlive
	ColorDead
	ColorCursor
	ColorStatus
	ColorMuted
)
