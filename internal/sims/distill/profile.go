package distill

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// RowProfile is the composition of one grid row, excluding walls.
type RowProfile struct {
	Y      int
	Counts [NumKeys]int
	Fluid  int
	// MeanDensity is the mean density of the A/B cells in the row, 0 when
	// the row holds none.
	MeanDensity float64
}

// Fraction returns the share of non-wall cells in the row carrying key k.
func (r RowProfile) Fraction(k Key) float64 {
	total := 0
	for i, n := range r.Counts {
		if Key(i) != KeyWall {
			total += n
		}
	}
	if total == 0 || int(k) >= NumKeys {
		return 0
	}
	return float64(r.Counts[k]) / float64(total)
}

// RowProfiles returns one profile per row, top to bottom.
func RowProfiles(g *Grid, p *Params) []RowProfile {
	out := make([]RowProfile, g.H)
	for y := 0; y < g.H; y++ {
		r := RowProfile{Y: y}
		sum := 0.0
		for x := 0; x < g.W; x++ {
			c := g.cells[g.Index(x, y)]
			k := c.Key()
			r.Counts[k]++
			if c.IsFluid() {
				r.Fluid++
				sum += density(p, k)
			}
		}
		if r.Fluid > 0 {
			r.MeanDensity = sum / float64(r.Fluid)
		}
		out[y] = r
	}
	return out
}

// StratificationIndex is the Pearson correlation between row index and the
// mean density of the A/B cells in that row, over rows that contain any.
// A column with the densest material at the bottom scores close to +1. The
// index is 0 when fewer than two rows qualify or either series is constant.
func StratificationIndex(g *Grid, p *Params) float64 {
	var depth, dens []float64
	for _, r := range RowProfiles(g, p) {
		if r.Fluid == 0 {
			continue
		}
		depth = append(depth, float64(r.Y))
		dens = append(dens, r.MeanDensity)
	}
	if len(depth) < 2 {
		return 0
	}
	c := stat.Correlation(depth, dens, nil)
	if math.IsNaN(c) {
		return 0
	}
	return c
}

// ScenarioResult captures telemetry from a deterministic headless run.
type ScenarioResult struct {
	Steps int
	// Energy holds TotalEnergy sampled at frame 0 and every sampleEvery frames.
	Energy         []float64
	Final          Statistics
	Stratification float64
	Swaps          int
	PhaseFlips     int
}

// RunScenario builds a session from cfg, advances it steps frames and
// reports the trace. A non-positive sampleEvery records only the first and
// last energy.
func RunScenario(cfg Config, steps, sampleEvery int) (ScenarioResult, error) {
	return runScenario(context.Background(), cfg, steps, sampleEvery)
}

func runScenario(ctx context.Context, cfg Config, steps, sampleEvery int) (ScenarioResult, error) {
	s, err := NewWithConfig(cfg)
	if err != nil {
		return ScenarioResult{}, err
	}
	p := &s.cfg.Params
	res := ScenarioResult{Energy: []float64{TotalEnergy(s.grid, p)}}
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		s.Step()
		res.Steps++
		res.Swaps += s.last.Swaps
		res.PhaseFlips += s.last.PhaseFlips
		if (sampleEvery > 0 && res.Steps%sampleEvery == 0) || res.Steps == steps {
			res.Energy = append(res.Energy, TotalEnergy(s.grid, p))
		}
	}
	res.Final = s.Stats()
	res.Stratification = StratificationIndex(s.grid, p)
	return res, nil
}

// SweepResult pairs one candidate value with its scenario telemetry.
type SweepResult struct {
	Param  string
	Value  float64
	Result ScenarioResult
}

// Sweep evaluates base with param set to each of values, running up to
// workers scenarios concurrently. Results keep the order of values.
func Sweep(ctx context.Context, base Config, param string, values []float64, steps, workers int) ([]SweepResult, error) {
	f, ok := lookupField(param)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKey, param)
	}
	if workers <= 0 {
		workers = 1
	}

	out := make([]SweepResult, len(values))
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for i, v := range values {
		cfg := base
		f.set(&cfg, v)
		grp.Go(func() error {
			res, err := runScenario(gctx, cfg, steps, 0)
			if err != nil {
				return fmt.Errorf("%s=%g: %w", param, v, err)
			}
			out[i] = SweepResult{Param: param, Value: v, Result: res}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
