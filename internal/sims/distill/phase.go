package distill

import (
	"math"

	"github.com/msonrm/distillation-tower/pkg/core"
)

// Scale denominators of the probabilistic model: how far past the boiling
// point a cell must be before its flip probability saturates.
const (
	vaporizeSpan = 50.0
	condenseSpan = 30.0
)

// updatePhase advances liquid<->gas transitions and returns how many cells flipped.
func updatePhase(g *Grid, p *Params, parity int, rng *core.RNG) int {
	if p.PhaseMode == PhaseModeProbabilistic {
		return updatePhaseProbabilistic(g, p, parity, rng)
	}
	return updatePhaseAccumulator(g, p)
}

// updatePhaseAccumulator moves every A/B cell through the latent heat state
// machine. A liquid at or above its boiling point banks the excess and is held
// at the boiling point until the bank reaches the threshold; a gas below its
// boiling point drains the bank the same way until it is empty.
func updatePhaseAccumulator(g *Grid, p *Params) int {
	flips := 0
	for i := range g.cells {
		c := &g.cells[i]
		props, ok := p.Substance(c.Substance)
		if !ok {
			continue
		}
		bp := props.BoilingPoint
		switch c.Phase {
		case PhaseLiquid:
			if c.Temperature < bp {
				continue
			}
			c.LatentHeat += c.Temperature - bp
			c.Temperature = bp
			if c.LatentHeat >= props.LatentHeatThreshold {
				c.Phase = PhaseGas
				c.LatentHeat = props.LatentHeatThreshold
				flips++
			}
		case PhaseGas:
			if c.Temperature >= bp {
				continue
			}
			c.LatentHeat -= bp - c.Temperature
			c.Temperature = bp
			if c.LatentHeat <= 0 {
				c.Phase = PhaseLiquid
				c.LatentHeat = 0
				flips++
			}
		}
	}
	return flips
}

// updatePhaseProbabilistic flips cells of the active parity with a
// probability that grows with the distance from the boiling point. The
// latent heat field is not used in this mode.
func updatePhaseProbabilistic(g *Grid, p *Params, parity int, rng *core.RNG) int {
	flips := 0
	prob := p.Probabilistic
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if (x+y)&1 != parity {
				continue
			}
			c := &g.cells[g.Index(x, y)]
			props, ok := p.Substance(c.Substance)
			if !ok {
				continue
			}
			bp := props.BoilingPoint
			switch {
			case c.Phase == PhaseLiquid && c.Temperature > bp:
				chance := math.Min(1, (c.Temperature-bp)/vaporizeSpan) * prob.VaporizeRate
				if rng.Float64() < chance {
					c.Phase = PhaseGas
					c.Temperature = clamp(c.Temperature-prob.LatentVaporize, p.TempMin, p.TempMax)
					flips++
				}
			case c.Phase == PhaseGas && c.Temperature < bp:
				chance := math.Min(1, (bp-c.Temperature)/condenseSpan) * prob.CondenseRate
				if rng.Float64() < chance {
					c.Phase = PhaseLiquid
					c.Temperature = clamp(c.Temperature+prob.LatentCondense, p.TempMin, p.TempMax)
					flips++
				}
			}
		}
	}
	return flips
}
