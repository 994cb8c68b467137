package distill

const (
	// conductivityEpsilon keeps the harmonic mean finite when both sides are zero.
	conductivityEpsilon = 0.001
	// capacityEpsilon keeps the flux divisor finite at zero heat capacity.
	capacityEpsilon = 0.1
)

// pinFixed forces the top and bottom boundary walls to their configured
// temperatures. Side and interior walls keep whatever they were created with.
func pinFixed(g *Grid, p *Params) {
	for x := 0; x < g.W; x++ {
		for _, y := range [2]int{0, g.H - 1} {
			idx := g.Index(x, y)
			if !g.cells[idx].IsWall() {
				continue
			}
			if t, ok := boundaryTemperature(p, g.W, g.H, x, y); ok {
				g.cells[idx].Temperature = t
			}
		}
	}
}

// updateHeat runs natural cooling and conduction. Every delta is computed from
// the temperatures at the start of the pass, then applied together and
// clamped. Walls are excluded from both.
func updateHeat(g *Grid, p *Params) {
	pinFixed(g, p)

	if len(g.delta) != len(g.cells) {
		g.delta = make([]float64, len(g.cells))
	}
	delta := g.delta

	var nb [4]int
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			idx := g.Index(x, y)
			c := g.cells[idx]
			if c.IsWall() {
				delta[idx] = 0
				continue
			}
			k := c.Key()
			d := -(c.Temperature - p.AmbientTemp) * p.Cooling

			kSelf := conductivity(p, k)
			flux := 0.0
			n := g.Neighbors(x, y, &nb)
			for i := 0; i < n; i++ {
				other := g.cells[nb[i]]
				kOther := conductivity(p, other.Key())
				kEff := 2 * kSelf * kOther / (kSelf + kOther + conductivityEpsilon)
				flux += kEff * (other.Temperature - c.Temperature)
			}
			d += flux / (heatCapacity(p, k) + capacityEpsilon) * p.ConductionDamping
			delta[idx] = d
		}
	}

	for idx := range g.cells {
		c := &g.cells[idx]
		if c.IsWall() {
			continue
		}
		c.Temperature = clamp(c.Temperature+delta[idx], p.TempMin, p.TempMax)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
