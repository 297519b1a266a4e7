package life

// Horizontal offset groups for the triangle topology, paired in order with
// the row offsets -1, 0, +1. Cells whose column and row parity match use the
// groups in reverse order. The grouping is a stylized approximation of
// triangular adjacency, not a geometric one; 12 positions are always
// visited and positions that coincide on narrow grids count once per visit.
var triangleGroups = [3][]int{
	{-1, 0, 1},
	{-2, -1, 1, 2},
	{-2, -1, 0, 1, 2},
}

// Hexagon offset rows, indexed by row offset -1, 0, +1.
var (
	hexEvenRows = [3][]int{{0, 1}, {-1, 1}, {0, 1}}
	hexOddRows  = [3][]int{{-1, 0}, {-1, 1}, {-1, 0}}
)

var rowOffsets = [3]int{-1, 0, 1}

// wrap returns (v+d) mod n in [0, n).
func wrap(v, d, n int) int {
	return ((v+d)%n + n) % n
}

// countNeighbors dispatches to the counter for topo. Callers guarantee a
// non-empty grid and in-range coordinates.
func countNeighbors(topo Topology, cells []Cell, width, height, x, y int) uint8 {
	switch topo {
	case Triangle:
		return countTriangle(cells, width, height, x, y)
	case Hexagon:
		return countHexagon(cells, width, height, x, y)
	default:
		return countSquare(cells, width, height, x, y)
	}
}

// countSquare sums the 8-cell Moore neighborhood. Range [0,8]. Offsets that
// wrap onto the same cell are each counted, so on a one-row torus the cell
// itself is seen twice and a full grid still yields 8.
func countSquare(cells []Cell, width, height, x, y int) uint8 {
	var count uint8
	for _, dy := range rowOffsets {
		ny := wrap(y, dy, height)
		for _, dx := range rowOffsets {
			if dx == 0 && dy == 0 {
				continue
			}
			count += cells[wrap(x, dx, width)+ny*width].Value()
		}
	}
	return count
}

// countTriangle sums the 12 positions of the parity-dependent triangle
// table. Range [0,12].
func countTriangle(cells []Cell, width, height, x, y int) uint8 {
	reversed := x%2 == y%2
	var count uint8
	for i, dy := range rowOffsets {
		group := triangleGroups[i]
		if reversed {
			group = triangleGroups[len(triangleGroups)-1-i]
		}
		ny := wrap(y, dy, height)
		for _, dx := range group {
			count += cells[wrap(x, dx, width)+ny*width].Value()
		}
	}
	return count
}

// countHexagon sums the 6 offset-coordinate hex neighbors. Range [0,6].
func countHexagon(cells []Cell, width, height, x, y int) uint8 {
	rows := hexOddRows
	if y%2 == 0 {
		rows = hexEvenRows
	}
	var count uint8
	for i, dy := range rowOffsets {
		ny := wrap(y, dy, height)
		for _, dx := range rows[i] {
			count += cells[wrap(x, dx, width)+ny*width].Value()
		}
	}
	return count
}
