package life

import (
	"math/rand/v2"
	"time"
)

// DefaultAliveRatio is the probability that a freshly seeded cell is alive.
const DefaultAliveRatio = 0.7

// Source is a uniform random source in [0, 1) used to seed cells.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic PCG source for seed. A zero seed uses
// the current time.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// seed fills cells, each alive with probability ratio.
func seed(src Source, cells []Cell, ratio float64) {
	for i := range cells {
		if src.Float64() < ratio {
			cells[i] = Alive
		} else {
			cells[i] = Dead
		}
	}
}
