package core

// Lattice describes a bounded rectangular grid stored in row-major order.
// Coordinates outside the rectangle are never wrapped.
type Lattice struct {
	W, H int
}

// NewLattice returns a lattice with the given dimensions, clamped to at least 1x1.
func NewLattice(w, h int) Lattice {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Lattice{W: w, H: h}
}

// Len returns the number of sites.
func (l Lattice) Len() int { return l.W * l.H }

// Index returns the linear slice index for coordinates (x, y).
func (l Lattice) Index(x, y int) int { return y*l.W + x }

// Coord is the inverse of Index.
func (l Lattice) Coord(idx int) (int, int) { return idx % l.W, idx / l.W }

// InBounds reports whether (x, y) lies on the lattice.
func (l Lattice) InBounds(x, y int) bool {
	return x >= 0 && x < l.W && y >= 0 && y < l.H
}

// Direction offsets for the von Neumann neighbourhood: up, down, left, right.
var (
	DirX = [4]int{0, 0, -1, 1}
	DirY = [4]int{-1, 1, 0, 0}
)

// Neighbors4 writes the indices of the in-bounds axis-aligned neighbours of
// (x, y) into out and returns how many were written.
func (l Lattice) Neighbors4(x, y int, out *[4]int) int {
	n := 0
	for d := 0; d < 4; d++ {
		nx, ny := x+DirX[d], y+DirY[d]
		if !l.InBounds(nx, ny) {
			continue
		}
		out[n] = ny*l.W + nx
		n++
	}
	return n
}

// Neighbor returns the index of the site one step from (x, y) in direction
// dir (an index into DirX/DirY). ok is false when that site is off the lattice.
func (l Lattice) Neighbor(x, y, dir int) (idx int, ok bool) {
	nx, ny := x+DirX[dir], y+DirY[dir]
	if !l.InBounds(nx, ny) {
		return 0, false
	}
	return ny*l.W + nx, true
}
