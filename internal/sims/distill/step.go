package distill

import "github.com/msonrm/distillation-tower/pkg/core"

// Streams are the random sources consumed by one step. Keeping them separate
// means toggling the phase model does not shift the exchange sequence.
type Streams struct {
	Phase    *core.RNG
	Exchange *core.RNG
}

// NewStreams derives the per-subsystem streams from a master generator.
func NewStreams(master *core.RNG) Streams {
	return Streams{
		Phase:    master.Derive("phase"),
		Exchange: master.Derive("exchange"),
	}
}

// StepReport summarises what one step changed.
type StepReport struct {
	Frame      int
	PhaseFlips int
	Swaps      int
}

// SimulateStep advances the grid by one frame in place: heat (cooling then
// conduction), phase transitions, then ExchangeSweeps Kawasaki sweeps on the
// checkerboard parity selected by frame.
func SimulateStep(g *Grid, p *Params, frame int, rs Streams) StepReport {
	parity := frame & 1
	report := StepReport{Frame: frame}

	updateHeat(g, p)
	report.PhaseFlips = updatePhase(g, p, parity, rs.Phase)
	for i := 0; i < p.ExchangeSweeps; i++ {
		report.Swaps += exchangeSweep(g, p, parity, rs.Exchange)
	}
	return report
}
