package distill

import (
	"github.com/sirupsen/logrus"

	"github.com/msonrm/distillation-tower/pkg/core"
)

// CreateGrid builds the initial column: walls around the border (the top row
// pinned cold, the bottom row pinned hot under the heater), a stochastically
// filled liquid band resting on the floor, and Air everywhere else at ambient
// temperature.
func CreateGrid(cfg Config, rng *core.RNG) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &cfg.Params
	g := NewGrid(cfg.Width, cfg.Height)
	w, h := cfg.Width, cfg.Height
	bandTop := h - 1 - p.BandRows

	liquid := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := Cell{Substance: SubstanceAir, Phase: PhaseGas, Temperature: p.AmbientTemp}
			switch {
			case y == 0 || y == h-1 || x == 0 || x == w-1:
				c = Cell{Substance: SubstanceWall, Phase: PhaseLiquid, Temperature: p.AmbientTemp}
				if t, pinned := boundaryTemperature(p, w, h, x, y); pinned {
					c.Temperature = t
				}
			case y >= bandTop && rng.Float64() < p.FillChance:
				sub := SubstanceB
				if rng.Float64() < p.MixRatioA {
					sub = SubstanceA
				}
				c = Cell{Substance: sub, Phase: PhaseLiquid, Temperature: p.AmbientTemp}
				liquid++
			}
			g.Set(x, y, c)
		}
	}

	logrus.WithFields(logrus.Fields{
		"width":  w,
		"height": h,
		"liquid": liquid,
		"seed":   rng.Seed(),
	}).Debug("distill: grid created")
	return g, nil
}

// boundaryTemperature returns the configured temperature of a top or bottom
// row wall. Other cells report pinned=false and keep their own temperature.
func boundaryTemperature(p *Params, w, h, x, y int) (t float64, pinned bool) {
	switch y {
	case 0:
		return p.ColdTemp, true
	case h - 1:
		fx := float64(x)
		if fx > float64(w)*p.HeaterStart && fx < float64(w)*p.HeaterEnd {
			return p.HotTemp, true
		}
		return p.AmbientTemp, true
	}
	return 0, false
}
