package life

// Cell is the state of a single grid cell.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Value returns the numeric projection of the cell used when summing
// neighbors: Dead is 0, Alive is 1.
func (c Cell) Value() uint8 {
	if c == Alive {
		return 1
	}
	return 0
}

// Toggle returns the opposite state.
func (c Cell) Toggle() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

// String returns a human-readable name for the cell state.
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Coord addresses a cell: X is the column (0..width-1), Y the row.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}
