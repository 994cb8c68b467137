package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighbors4FiltersOutOfBounds(t *testing.T) {
	l := NewLattice(3, 3)
	var buf [4]int

	tests := []struct {
		name string
		x, y int
		want []int
	}{
		{"corner", 0, 0, []int{l.Index(0, 1), l.Index(1, 0)}},
		{"edge", 1, 0, []int{l.Index(1, 1), l.Index(0, 0), l.Index(2, 0)}},
		{"centre", 1, 1, []int{l.Index(1, 0), l.Index(1, 2), l.Index(0, 1), l.Index(2, 1)}},
		{"far corner", 2, 2, []int{l.Index(2, 1), l.Index(1, 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := l.Neighbors4(tt.x, tt.y, &buf)
			assert.Equal(t, tt.want, buf[:n])
		})
	}
}

func TestLatticeCoordRoundTrip(t *testing.T) {
	l := NewLattice(7, 5)
	for idx := 0; idx < l.Len(); idx++ {
		x, y := l.Coord(idx)
		assert.Equal(t, idx, l.Index(x, y))
	}
}

func TestNewLatticeClampsDimensions(t *testing.T) {
	l := NewLattice(0, -3)
	assert.Equal(t, Lattice{W: 1, H: 1}, l)
}

func TestNeighbors4DoesNotAllocate(t *testing.T) {
	l := NewLattice(16, 16)
	var buf [4]int
	allocs := testing.AllocsPerRun(100, func() {
		l.Neighbors4(5, 5, &buf)
	})
	assert.Zero(t, allocs)
}

func TestNeighborDirection(t *testing.T) {
	l := NewLattice(4, 4)
	idx, ok := l.Neighbor(0, 0, 1)
	assert.True(t, ok)
	assert.Equal(t, l.Index(0, 1), idx)

	_, ok = l.Neighbor(0, 0, 0)
	assert.False(t, ok, "up from the top row is off the lattice")
	_, ok = l.Neighbor(3, 2, 3)
	assert.False(t, ok, "right from the last column is off the lattice")
}
