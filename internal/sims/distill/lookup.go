package distill

import "github.com/sirupsen/logrus"

// Neutral coefficients for keys that did not come from this package's enum,
// e.g. a corrupted preset. Deliberate keys never reach these.
const (
	fallbackDensity      = 0.0
	fallbackCohesion     = 0.0
	fallbackConductivity = 0.1
	fallbackHeatCapacity = 1.0
	fallbackTension      = 0.5
)

func logFallback(table string, k Key) {
	logrus.WithFields(logrus.Fields{"table": table, "key": k.String()}).Debug("distill: neutral fallback for unknown key")
}

func density(p *Params, k Key) float64 {
	switch k {
	case KeyALiquid:
		return p.A.DensityLiquid
	case KeyAGas:
		return p.A.DensityGas
	case KeyBLiquid:
		return p.B.DensityLiquid
	case KeyBGas:
		return p.B.DensityGas
	case KeyAir, KeyWall:
		return 0
	}
	logFallback("density", k)
	return fallbackDensity
}

func cohesion(p *Params, k Key) float64 {
	switch k {
	case KeyALiquid:
		return p.A.CohesionLiquid
	case KeyAGas:
		return p.A.CohesionGas
	case KeyBLiquid:
		return p.B.CohesionLiquid
	case KeyBGas:
		return p.B.CohesionGas
	case KeyAir, KeyWall:
		return 0
	}
	logFallback("cohesion", k)
	return fallbackCohesion
}

func conductivity(p *Params, k Key) float64 {
	switch k {
	case KeyALiquid:
		return p.A.ConductivityLiquid
	case KeyAGas:
		return p.A.ConductivityGas
	case KeyBLiquid:
		return p.B.ConductivityLiquid
	case KeyBGas:
		return p.B.ConductivityGas
	case KeyAir:
		return p.Air.Conductivity
	case KeyWall:
		return p.Wall.Conductivity
	}
	logFallback("conductivity", k)
	return fallbackConductivity
}

func heatCapacity(p *Params, k Key) float64 {
	switch k {
	case KeyALiquid:
		return p.A.HeatCapacityLiquid
	case KeyAGas:
		return p.A.HeatCapacityGas
	case KeyBLiquid:
		return p.B.HeatCapacityLiquid
	case KeyBGas:
		return p.B.HeatCapacityGas
	case KeyAir:
		return p.Air.HeatCapacity
	case KeyWall:
		return p.Wall.HeatCapacity
	}
	logFallback("heat_capacity", k)
	return fallbackHeatCapacity
}
