package distill

import "math"

const (
	cohesionWeight = 0.5
	tensionWeight  = 0.8
)

// CellEnergy evaluates the Hamiltonian contribution of the cell at (x, y):
// gravity, plus a cohesion reward for identical neighbours, plus the
// interfacial tension against every neighbour. Walls are +Inf.
func CellEnergy(g *Grid, p *Params, x, y int) float64 {
	c := g.cells[g.Index(x, y)]
	if c.IsWall() {
		return math.Inf(1)
	}
	k := c.Key()
	e := density(p, k) * float64(g.H-y) * p.Gravity

	var nb [4]int
	same := 0
	iface := 0.0
	n := g.Neighbors(x, y, &nb)
	for i := 0; i < n; i++ {
		nk := g.cells[nb[i]].Key()
		if nk == k {
			same++
		}
		iface += p.Tension.Get(k, nk) * tensionWeight
	}
	return e - cohesion(p, k)*cohesionWeight*float64(same) + iface
}

// TotalEnergy sums CellEnergy over every non-wall cell.
func TotalEnergy(g *Grid, p *Params) float64 {
	total := 0.0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.cells[g.Index(x, y)].IsWall() {
				continue
			}
			total += CellEnergy(g, p, x, y)
		}
	}
	return total
}
