// Package core provides the terminal-agnostic building blocks shared by the
// life hosts: the screen buffer, input actions and runtime configuration.
// It has no external dependencies (especially no Bubble Tea).
package core

// RuntimeConfig contains settings passed to a host at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Generations per second while running
	Seed     int64 // RNG seed for cell seeding, 0 means time-based
}

// Tick rate limits for interactive speed changes.
const (
	MinTickRate = 1
	MaxTickRate = 60
)

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 24,
		Seed:     0,
	}
}

// ClampTickRate restricts a tick rate to [MinTickRate, MaxTickRate].
func ClampTickRate(rate int) int {
	return Clamp(rate, MinTickRate, MaxTickRate)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Wrap maps v into [0, n) with toroidal wrap-around. Returns 0 when n <= 0.
func Wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	return (v%n + n) % n
}
