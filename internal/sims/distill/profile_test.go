package distill

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowProfiles(t *testing.T) {
	p := DefaultParams()
	g := boxGrid(6, 5, 25)
	for x := 1; x < 5; x++ {
		g.Set(x, 3, Cell{Substance: SubstanceB, Phase: PhaseLiquid})
	}
	g.Set(1, 1, Cell{Substance: SubstanceA, Phase: PhaseGas})

	rows := RowProfiles(g, &p)
	require.Len(t, rows, 5)
	assert.Equal(t, 4, rows[3].Fluid)
	assert.Equal(t, p.B.DensityLiquid, rows[3].MeanDensity)
	assert.Equal(t, 1.0, rows[3].Fraction(KeyBLiquid))
	assert.Equal(t, 0.25, rows[1].Fraction(KeyAGas))
	assert.Equal(t, 0.75, rows[1].Fraction(KeyAir))
	assert.Zero(t, rows[0].Fraction(KeyAir), "an all-wall row has no share")
	assert.Zero(t, rows[2].MeanDensity)
}

func TestStratificationIndex(t *testing.T) {
	p := DefaultParams()

	layered := boxGrid(8, 8, 25)
	for x := 1; x < 7; x++ {
		layered.Set(x, 2, Cell{Substance: SubstanceA, Phase: PhaseGas})
		layered.Set(x, 4, Cell{Substance: SubstanceA, Phase: PhaseLiquid})
		layered.Set(x, 6, Cell{Substance: SubstanceB, Phase: PhaseLiquid})
	}
	assert.Greater(t, StratificationIndex(layered, &p), 0.9)

	inverted := boxGrid(8, 8, 25)
	for x := 1; x < 7; x++ {
		inverted.Set(x, 2, Cell{Substance: SubstanceB, Phase: PhaseLiquid})
		inverted.Set(x, 6, Cell{Substance: SubstanceA, Phase: PhaseGas})
	}
	assert.Less(t, StratificationIndex(inverted, &p), 0.0)

	assert.Zero(t, StratificationIndex(boxGrid(5, 5, 25), &p), "no fluid rows")
}

func TestRunScenario(t *testing.T) {
	cfg := smallConfig(24, 24)

	res, err := RunScenario(cfg, 20, 5)
	require.NoError(t, err)
	assert.Equal(t, 20, res.Steps)
	assert.Len(t, res.Energy, 5)
	assert.Equal(t, 20, res.Final.Frame)
	assert.Positive(t, res.Swaps)

	again, err := RunScenario(cfg, 20, 5)
	require.NoError(t, err)
	assert.Equal(t, res, again, "seeded scenarios replay")

	_, err = RunScenario(Config{}, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSweep(t *testing.T) {
	base := smallConfig(20, 20)
	values := []float64{0, 2, 6}

	results, err := Sweep(context.Background(), base, "gravity", values, 10, 2)
	require.NoError(t, err)
	require.Len(t, results, len(values))
	for i, r := range results {
		assert.Equal(t, "gravity", r.Param)
		assert.Equal(t, values[i], r.Value)
		assert.Equal(t, 10, r.Result.Steps)
	}

	_, err = Sweep(context.Background(), base, "viscosity", values, 10, 2)
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, err = Sweep(context.Background(), base, "exchange_sweeps", []float64{1}, 10, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Sweep(ctx, base, "gravity", values, 10, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
