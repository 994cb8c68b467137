package distill

import (
	"math"

	"github.com/msonrm/distillation-tower/pkg/core"
)

// trialSwap exchanges the payloads of two cells and remembers the originals
// so the exchange can be settled one way or the other.
type trialSwap struct {
	g     *Grid
	i, j  int
	saved [2]Cell
}

func beginSwap(g *Grid, i, j int) trialSwap {
	s := trialSwap{g: g, i: i, j: j, saved: [2]Cell{g.cells[i], g.cells[j]}}
	g.cells[i], g.cells[j] = s.saved[1], s.saved[0]
	return s
}

// settle keeps the swapped payloads when accept is true and restores the
// originals otherwise.
func (s trialSwap) settle(accept bool) bool {
	if !accept {
		s.g.cells[s.i] = s.saved[0]
		s.g.cells[s.j] = s.saved[1]
	}
	return accept
}

// metropolis accepts downhill moves outright and uphill moves with
// probability exp(-beta*dE), where beta falls as the local temperature rises.
func metropolis(dE, localTemp float64, p *Params, rng *core.RNG) bool {
	if dE < 0 {
		return true
	}
	beta := 1 / (localTemp*p.BetaScale + p.BetaOffset)
	return rng.Float64() < math.Exp(-beta*dE)
}

// exchangeSweep runs one Kawasaki sweep over the cells of the given
// checkerboard parity and returns the number of accepted swaps. Scan
// direction and per-cell neighbour order are randomised.
func exchangeSweep(g *Grid, p *Params, parity int, rng *core.RNG) int {
	yForward := rng.Bool()
	xForward := rng.Bool()
	accepted := 0

	for yi := 0; yi < g.H; yi++ {
		y := yi
		if !yForward {
			y = g.H - 1 - yi
		}
		for xi := 0; xi < g.W; xi++ {
			x := xi
			if !xForward {
				x = g.W - 1 - xi
			}
			if (x+y)&1 != parity {
				continue
			}
			if tryExchange(g, p, x, y, rng) {
				accepted++
			}
		}
	}
	return accepted
}

// tryExchange attempts the neighbours of (x, y) in random order until one swap
// is accepted.
func tryExchange(g *Grid, p *Params, x, y int, rng *core.RNG) bool {
	idx := g.Index(x, y)
	if g.cells[idx].IsWall() {
		return false
	}
	dirs := [4]int{0, 1, 2, 3}
	rng.Perm4(&dirs)
	for _, d := range dirs {
		nidx, ok := g.Neighbor(x, y, d)
		if !ok {
			continue
		}
		self, other := g.cells[idx], g.cells[nidx]
		if other.IsWall() || self.Key() == other.Key() {
			continue
		}
		nx, ny := g.Coord(nidx)
		before := CellEnergy(g, p, x, y) + CellEnergy(g, p, nx, ny)
		localTemp := (self.Temperature + other.Temperature) / 2

		swap := beginSwap(g, idx, nidx)
		after := CellEnergy(g, p, x, y) + CellEnergy(g, p, nx, ny)
		if swap.settle(metropolis(after-before, localTemp, p, rng)) {
			return true
		}
	}
	return false
}
