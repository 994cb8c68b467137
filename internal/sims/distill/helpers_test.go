package distill

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msonrm/distillation-tower/pkg/core"
)

// smallConfig returns a seeded column that is cheap enough for loops.
func smallConfig(w, h int) Config {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = 42
	cfg.Params.BandRows = h / 3
	return cfg
}

// flatParams removes every interaction except gravity.
func flatParams() Params {
	p := DefaultParams()
	p.Tension.Zero()
	for _, s := range []*SubstanceProperties{&p.A, &p.B} {
		s.CohesionLiquid = 0
		s.CohesionGas = 0
	}
	return p
}

// airGrid builds a w x h grid of Air at temp with no walls.
func airGrid(w, h int, temp float64) *Grid {
	g := NewGrid(w, h)
	for i := range g.cells {
		g.cells[i] = Cell{Substance: SubstanceAir, Phase: PhaseGas, Temperature: temp}
	}
	return g
}

// boxGrid surrounds an Air grid with walls at temp.
func boxGrid(w, h int, temp float64) *Grid {
	g := airGrid(w, h, temp)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				g.Set(x, y, Cell{Substance: SubstanceWall, Phase: PhaseLiquid, Temperature: temp})
			}
		}
	}
	return g
}

func wallSnapshot(g *Grid) map[int]Cell {
	out := map[int]Cell{}
	for i, c := range g.cells {
		if c.IsWall() {
			out[i] = c
		}
	}
	return out
}

func mustGrid(t *testing.T, cfg Config) *Grid {
	t.Helper()
	g, err := CreateGrid(cfg, core.NewRNG(cfg.Seed))
	require.NoError(t, err)
	return g
}
