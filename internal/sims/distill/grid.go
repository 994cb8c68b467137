package distill

import "github.com/msonrm/distillation-tower/internal/core"

// Grid is the fixed-size lattice of cells owned by one simulation session.
type Grid struct {
	core.Lattice
	cells []Cell

	// delta is the heat pass scratch buffer, reused across frames.
	delta []float64
}

// NewGrid allocates a grid of Air cells.
func NewGrid(w, h int) *Grid {
	l := core.NewLattice(w, h)
	return &Grid{Lattice: l, cells: make([]Cell, l.Len())}
}

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Cell { return g.cells }

// At returns the cell at (x, y). The caller guarantees the coordinates are in bounds.
func (g *Grid) At(x, y int) Cell { return g.cells[g.Index(x, y)] }

// Set overwrites the cell at (x, y).
func (g *Grid) Set(x, y int, c Cell) { g.cells[g.Index(x, y)] = c }

// Neighbors writes the indices of the in-bounds von Neumann neighbours of
// (x, y) into out and returns the count.
func (g *Grid) Neighbors(x, y int, out *[4]int) int {
	return g.Neighbors4(x, y, out)
}

// CountKeys tallies cells by substance+phase.
func (g *Grid) CountKeys() [NumKeys]int {
	var counts [NumKeys]int
	for _, c := range g.cells {
		counts[c.Key()]++
	}
	return counts
}
