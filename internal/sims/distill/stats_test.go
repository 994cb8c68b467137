package distill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateStats(t *testing.T) {
	g := boxGrid(4, 4, 300)
	g.Set(1, 1, Cell{Substance: SubstanceA, Phase: PhaseLiquid, Temperature: 40})
	g.Set(2, 1, Cell{Substance: SubstanceB, Phase: PhaseGas, Temperature: 110})
	g.Set(1, 2, Cell{Substance: SubstanceB, Phase: PhaseGas, Temperature: 100})
	g.Set(2, 2, Cell{Substance: SubstanceAir, Phase: PhaseGas, Temperature: 10})

	s := CalculateStats(g)
	assert.Equal(t, 1, s.Count(KeyALiquid))
	assert.Equal(t, 2, s.Count(KeyBGas))
	assert.Equal(t, 1, s.Count(KeyAir))
	assert.Equal(t, 12, s.Count(KeyWall))
	assert.Equal(t, 1, s.Liquid())
	assert.Equal(t, 2, s.Gas())
	assert.InDelta(t, 65.0, s.AvgTemp, 1e-9, "walls are excluded from the mean")
	assert.Zero(t, s.Count(Key(99)))
}

func TestCalculateStatsAllWalls(t *testing.T) {
	g := NewGrid(3, 3)
	for i := range g.cells {
		g.cells[i] = Cell{Substance: SubstanceWall, Temperature: 150}
	}
	s := CalculateStats(g)
	assert.Zero(t, s.AvgTemp)
	assert.Equal(t, 9, s.Count(KeyWall))
}
