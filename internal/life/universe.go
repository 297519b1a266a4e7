// Package life implements a generalized cellular-automaton engine: a
// toroidal grid of binary cells evolving under configurable birth/survival
// rules on square, triangle or hexagon topologies.
//
// The package has no external dependencies and performs no locking or I/O.
// A Universe assumes a single writer; hosts serialize calls.
package life

import "fmt"

// Universe owns one grid and evolves it one generation per Tick.
type Universe struct {
	width      int
	height     int
	cells      []Cell // current generation, index x + y*width
	next       []Cell // scratch buffer swapped in after each sweep
	rules      RuleSet
	topology   Topology
	generation uint64
	src        Source
	aliveRatio float64
}

// New creates a universe of width x height cells with every cell seeded
// alive with probability DefaultAliveRatio from src. A nil src uses a
// time-seeded source.
func New(born, survives string, width, height int, topo Topology, src Source) (*Universe, error) {
	rules, err := ParseRules(born, survives)
	if err != nil {
		return nil, err
	}
	if err := validateShape(width, height, topo); err != nil {
		return nil, err
	}
	if src == nil {
		src = NewSource(0)
	}

	u := &Universe{
		rules:      rules,
		topology:   topo,
		src:        src,
		aliveRatio: DefaultAliveRatio,
	}
	u.reseed(width, height)
	return u, nil
}

func validateShape(width, height int, topo Topology) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("life: %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if !topo.Valid() {
		return fmt.Errorf("life: %v: %w", topo, ErrInvalidTopology)
	}
	return nil
}

// reseed reallocates both buffers for the given size and fills the current
// one from the random source.
func (u *Universe) reseed(width, height int) {
	u.width = width
	u.height = height
	u.cells = make([]Cell, width*height)
	u.next = make([]Cell, width*height)
	seed(u.src, u.cells, u.aliveRatio)
}

// Restart replaces rules, dimensions and topology, reseeds every cell and
// resets the generation counter. If any argument is invalid the universe is
// left untouched.
func (u *Universe) Restart(born, survives string, width, height int, topo Topology) error {
	rules, err := ParseRules(born, survives)
	if err != nil {
		return err
	}
	if err := validateShape(width, height, topo); err != nil {
		return err
	}

	u.rules = rules
	u.topology = topo
	u.reseed(width, height)
	u.generation = 0
	return nil
}

// Tick advances the universe by one generation and returns the new
// generation number. Every cell's next state is computed from the frozen
// current buffer; the buffers are swapped once the sweep completes.
func (u *Universe) Tick() uint64 {
	w, h := u.width, u.height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := x + y*w
			n := countNeighbors(u.topology, u.cells, w, h, x, y)
			u.next[idx] = u.transition(u.cells[idx], n)
		}
	}
	u.cells, u.next = u.next, u.cells

	u.generation++
	return u.generation
}

func (u *Universe) transition(cell Cell, n uint8) Cell {
	switch {
	case cell == Alive && !u.rules.IsSurvivor(n):
		return Dead
	case cell == Alive:
		return Alive
	case u.rules.IsBorn(n):
		return Alive
	default:
		return cell
	}
}

// Width returns the grid width in cells.
func (u *Universe) Width() int { return u.width }

// Height returns the grid height in cells.
func (u *Universe) Height() int { return u.height }

// Generation returns the number of ticks since construction or the last
// Restart.
func (u *Universe) Generation() uint64 { return u.generation }

// Rules returns the current rule set.
func (u *Universe) Rules() RuleSet { return u.rules }

// BornDigits returns the born rule as its original digit string.
func (u *Universe) BornDigits() string { return u.rules.BornDigits() }

// SurvivesDigits returns the survives rule as its original digit string.
func (u *Universe) SurvivesDigits() string { return u.rules.SurvivesDigits() }

// Topology returns the active topology.
func (u *Universe) Topology() Topology { return u.topology }

// SetWidth changes the width, see Resize.
func (u *Universe) SetWidth(width int) error {
	return u.Resize(width, u.height)
}

// SetHeight changes the height, see Resize.
func (u *Universe) SetHeight(height int) error {
	return u.Resize(u.width, height)
}

// Resize reallocates the grid to width x height. Cells in the overlapping
// region keep their state, new cells are dead. The generation counter,
// rules and topology are unchanged.
func (u *Universe) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("life: resize to %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if width == u.width && height == u.height {
		return nil
	}

	cells := make([]Cell, width*height)
	copyW := min(width, u.width)
	copyH := min(height, u.height)
	for y := 0; y < copyH; y++ {
		copy(cells[y*width:y*width+copyW], u.cells[y*u.width:y*u.width+copyW])
	}

	u.width = width
	u.height = height
	u.cells = cells
	u.next = make([]Cell, width*height)
	return nil
}

// Cells exposes the current generation without copying, for renderers.
// The slice must not be modified and is only valid until the next call
// that mutates the universe.
func (u *Universe) Cells() []Cell { return u.cells }

// Population returns the number of live cells.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cells {
		n += int(c.Value())
	}
	return n
}

func (u *Universe) index(x, y int) (int, error) {
	if x < 0 || y < 0 || x >= u.width || y >= u.height {
		return 0, fmt.Errorf("life: cell (%d,%d) in %dx%d grid: %w", x, y, u.width, u.height, ErrOutOfBounds)
	}
	return x + y*u.width, nil
}

// Cell returns the state of the cell at (x, y).
func (u *Universe) Cell(x, y int) (Cell, error) {
	idx, err := u.index(x, y)
	if err != nil {
		return Dead, err
	}
	return u.cells[idx], nil
}

// Toggle flips the cell at (x, y) and returns its new state.
func (u *Universe) Toggle(x, y int) (Cell, error) {
	idx, err := u.index(x, y)
	if err != nil {
		return Dead, err
	}
	u.cells[idx] = u.cells[idx].Toggle()
	return u.cells[idx], nil
}

// SetAlive marks every given cell alive. All coordinates are checked before
// any cell changes.
func (u *Universe) SetAlive(coords ...Coord) error {
	for _, c := range coords {
		if _, err := u.index(c.X, c.Y); err != nil {
			return err
		}
	}
	for _, c := range coords {
		u.cells[c.X+c.Y*u.width] = Alive
	}
	return nil
}

// Neighbors returns the live-neighbor count of (x, y) under the current
// topology.
func (u *Universe) Neighbors(x, y int) (uint8, error) {
	if _, err := u.index(x, y); err != nil {
		return 0, err
	}
	return countNeighbors(u.topology, u.cells, u.width, u.height, x, y), nil
}

// SetRules replaces the rule set. On error the previous rules remain.
func (u *Universe) SetRules(born, survives string) error {
	rules, err := ParseRules(born, survives)
	if err != nil {
		return err
	}
	u.rules = rules
	return nil
}

// SetTopology replaces the topology.
func (u *Universe) SetTopology(topo Topology) error {
	if !topo.Valid() {
		return fmt.Errorf("life: %v: %w", topo, ErrInvalidTopology)
	}
	u.topology = topo
	return nil
}

// AliveRatio returns the probability used when seeding cells.
func (u *Universe) AliveRatio() float64 { return u.aliveRatio }

// SetAliveRatio sets the seeding probability, clamped to [0, 1]. It takes
// effect on the next Restart.
func (u *Universe) SetAliveRatio(ratio float64) {
	u.aliveRatio = max(0, min(1, ratio))
}

// Clear kills every cell. Dimensions, rules, topology and generation are
// unchanged.
func (u *Universe) Clear() {
	for i := range u.cells {
		u.cells[i] = Dead
	}
}

// Clone returns an independent copy sharing only the random source.
func (u *Universe) Clone() *Universe {
	c := *u
	c.cells = append([]Cell(nil), u.cells...)
	c.next = make([]Cell, len(u.next))
	return &c
}
