package tui

import (
	"math"
	"time"
)

// fpsWindow is how many recent frames the meter keeps.
const fpsWindow = 100

// fpsMeter measures the achieved generation rate from tick timestamps.
// It is a plain value so copies of the Bubble Tea model stay independent.
type fpsMeter struct {
	samples [fpsWindow]float64
	n       int // number of valid samples
	next    int // ring position of the next sample
	last    time.Time
}

// Record notes a frame at now. The first frame after a Reset only sets the
// reference point.
func (f *fpsMeter) Record(now time.Time) {
	if !f.last.IsZero() {
		if d := now.Sub(f.last); d > 0 {
			f.samples[f.next] = float64(time.Second) / float64(d)
			f.next = (f.next + 1) % fpsWindow
			f.n = min(f.n+1, fpsWindow)
		}
	}
	f.last = now
}

// Reset forgets the last frame time so a pause is not measured as a slow
// frame. The sample history is kept.
func (f *fpsMeter) Reset() {
	f.last = time.Time{}
}

// Stats returns the floored mean, min and max rate over the window.
// ok is false until two frames have been recorded.
func (f *fpsMeter) Stats() (mean, lo, hi int, ok bool) {
	if f.n == 0 {
		return 0, 0, 0, false
	}
	sum, minV, maxV := 0.0, math.Inf(1), math.Inf(-1)
	for _, v := range f.samples[:f.n] {
		sum += v
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	return int(math.Floor(sum / float64(f.n))), int(math.Floor(minV)), int(math.Floor(maxV)), true
}
