package distill

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidConfig marks a configuration that violates a construction-time precondition.
	ErrInvalidConfig = errors.New("invalid distill config")
	// ErrUnknownKey is returned for unrecognised substance/phase or parameter names.
	ErrUnknownKey = errors.New("unknown key")
)

// minSide is the smallest grid edge: one interior row or column between walls.
const minSide = 3

// PhaseMode selects the liquid/gas transition model.
type PhaseMode string

const (
	// PhaseModeAccumulator drives transitions through a per-cell latent heat
	// accumulator, producing a temperature plateau at the boiling point.
	PhaseModeAccumulator PhaseMode = "accumulator"
	// PhaseModeProbabilistic flips cells with a temperature-dependent
	// probability and shifts their temperature by a fixed latent amount.
	PhaseModeProbabilistic PhaseMode = "probabilistic"
)

// SubstanceProperties holds the physical constants of one distillable substance.
type SubstanceProperties struct {
	BoilingPoint        float64 `yaml:"boiling_point"`
	LatentHeatThreshold float64 `yaml:"latent_heat_threshold"`
	DensityLiquid       float64 `yaml:"density_liquid"`
	DensityGas          float64 `yaml:"density_gas"`
	ConductivityLiquid  float64 `yaml:"conductivity_liquid"`
	ConductivityGas     float64 `yaml:"conductivity_gas"`
	HeatCapacityLiquid  float64 `yaml:"heat_capacity_liquid"`
	HeatCapacityGas     float64 `yaml:"heat_capacity_gas"`
	CohesionLiquid      float64 `yaml:"cohesion_liquid"`
	CohesionGas         float64 `yaml:"cohesion_gas"`
}

// FixedProperties holds the thermal constants of Air and Wall.
type FixedProperties struct {
	Conductivity float64 `yaml:"conductivity"`
	HeatCapacity float64 `yaml:"heat_capacity"`
}

// ProbabilisticPhase tunes PhaseModeProbabilistic.
type ProbabilisticPhase struct {
	VaporizeRate   float64 `yaml:"vaporize_rate"`
	CondenseRate   float64 `yaml:"condense_rate"`
	LatentVaporize float64 `yaml:"latent_vaporize"`
	LatentCondense float64 `yaml:"latent_condense"`
}

// Params is the full physical parameter set. It is read-only for the
// duration of one step.
type Params struct {
	Gravity float64 `yaml:"gravity"`
	Cooling float64 `yaml:"cooling"`

	AmbientTemp float64 `yaml:"ambient_temp"`
	HotTemp     float64 `yaml:"hot_temp"`
	ColdTemp    float64 `yaml:"cold_temp"`
	TempMin     float64 `yaml:"temp_min"`
	TempMax     float64 `yaml:"temp_max"`
	HeaterStart float64 `yaml:"heater_start"`
	HeaterEnd   float64 `yaml:"heater_end"`

	ConductionDamping float64 `yaml:"conduction_damping"`

	BetaScale      float64 `yaml:"beta_scale"`
	BetaOffset     float64 `yaml:"beta_offset"`
	ExchangeSweeps int     `yaml:"exchange_sweeps"`

	PhaseMode     PhaseMode          `yaml:"phase_mode"`
	Probabilistic ProbabilisticPhase `yaml:"probabilistic"`

	A    SubstanceProperties `yaml:"a"`
	B    SubstanceProperties `yaml:"b"`
	Air  FixedProperties     `yaml:"air"`
	Wall FixedProperties     `yaml:"wall"`

	Tension TensionMatrix `yaml:"tension"`

	BandRows   int     `yaml:"band_rows"`
	FillChance float64 `yaml:"fill_chance"`
	MixRatioA  float64 `yaml:"mix_ratio_a"`
}

// Config controls the simulation dimensions, seed and physics.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard two-substance column: an ethanol-like A
// over a water-like B, heated from the middle of the floor and cooled from
// the ceiling.
func DefaultConfig() Config {
	return Config{
		Width:  100,
		Height: 100,
		Params: DefaultParams(),
	}
}

// DefaultParams returns the standard physical parameters.
func DefaultParams() Params {
	return Params{
		Gravity:           2.0,
		Cooling:           0.002,
		AmbientTemp:       25,
		HotTemp:           200,
		ColdTemp:          15,
		TempMin:           0,
		TempMax:           300,
		HeaterStart:       0.3,
		HeaterEnd:         0.7,
		ConductionDamping: 0.1,
		BetaScale:         0.1,
		BetaOffset:        1,
		ExchangeSweeps:    3,
		PhaseMode:         PhaseModeAccumulator,
		Probabilistic: ProbabilisticPhase{
			VaporizeRate:   0.15,
			CondenseRate:   0.08,
			LatentVaporize: 20,
			LatentCondense: 15,
		},
		A: SubstanceProperties{
			BoilingPoint:        78,
			LatentHeatThreshold: 30,
			DensityLiquid:       0.79,
			DensityGas:          0.0016,
			ConductivityLiquid:  0.17,
			ConductivityGas:     0.015,
			HeatCapacityLiquid:  2.4,
			HeatCapacityGas:     1.4,
			CohesionLiquid:      0.6,
			CohesionGas:         0.1,
		},
		B: SubstanceProperties{
			BoilingPoint:        100,
			LatentHeatThreshold: 40,
			DensityLiquid:       1.0,
			DensityGas:          0.0006,
			ConductivityLiquid:  0.6,
			ConductivityGas:     0.02,
			HeatCapacityLiquid:  4.2,
			HeatCapacityGas:     2.0,
			CohesionLiquid:      0.8,
			CohesionGas:         0.1,
		},
		Air:        FixedProperties{Conductivity: 0.01, HeatCapacity: 1.0},
		Wall:       FixedProperties{Conductivity: 0.8, HeatCapacity: 1.0},
		Tension:    DefaultTension(),
		BandRows:   13,
		FillChance: 0.8,
		MixRatioA:  0.4,
	}
}

// Substance returns the properties of A or B. ok is false for Air and Wall.
func (p *Params) Substance(s Substance) (props *SubstanceProperties, ok bool) {
	switch s {
	case SubstanceA:
		return &p.A, true
	case SubstanceB:
		return &p.B, true
	default:
		return nil, false
	}
}

// Validate checks the construction-time preconditions. It reports the first
// violation found, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Width < minSide || c.Height < minSide {
		return fmt.Errorf("%w: grid must be at least 3x3, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if c.Params.BandRows > c.Height-2 {
		return fmt.Errorf("%w: band_rows %d does not fit inside height %d", ErrInvalidConfig, c.Params.BandRows, c.Height)
	}
	return nil
}

// Validate checks the physical parameters independently of grid size.
func (p Params) Validate() error {
	finite := []struct {
		name string
		v    float64
	}{
		{"gravity", p.Gravity},
		{"cooling", p.Cooling},
		{"ambient_temp", p.AmbientTemp},
		{"hot_temp", p.HotTemp},
		{"cold_temp", p.ColdTemp},
		{"temp_min", p.TempMin},
		{"temp_max", p.TempMax},
		{"conduction_damping", p.ConductionDamping},
		{"beta_scale", p.BetaScale},
		{"beta_offset", p.BetaOffset},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidConfig, f.name)
		}
	}
	switch {
	case p.Gravity < 0:
		return fmt.Errorf("%w: gravity must be non-negative, got %g", ErrInvalidConfig, p.Gravity)
	case p.Cooling < 0 || p.Cooling > 1:
		return fmt.Errorf("%w: cooling must be in [0,1], got %g", ErrInvalidConfig, p.Cooling)
	case p.TempMin >= p.TempMax:
		return fmt.Errorf("%w: temp_min %g must be below temp_max %g", ErrInvalidConfig, p.TempMin, p.TempMax)
	case p.TempMin < 0:
		return fmt.Errorf("%w: temp_min must be non-negative, got %g", ErrInvalidConfig, p.TempMin)
	case p.HeaterStart < 0 || p.HeaterEnd > 1 || p.HeaterStart > p.HeaterEnd:
		return fmt.Errorf("%w: heater span [%g,%g] must lie within [0,1]", ErrInvalidConfig, p.HeaterStart, p.HeaterEnd)
	case p.ConductionDamping < 0 || p.ConductionDamping > 1:
		return fmt.Errorf("%w: conduction_damping must be in [0,1], got %g", ErrInvalidConfig, p.ConductionDamping)
	case p.BetaScale < 0 || p.BetaOffset <= 0:
		return fmt.Errorf("%w: beta_scale must be >= 0 and beta_offset > 0", ErrInvalidConfig)
	case p.ExchangeSweeps < 2:
		return fmt.Errorf("%w: exchange_sweeps must be at least 2, got %d", ErrInvalidConfig, p.ExchangeSweeps)
	case p.BandRows < 0:
		return fmt.Errorf("%w: band_rows must be non-negative, got %d", ErrInvalidConfig, p.BandRows)
	case p.FillChance < 0 || p.FillChance > 1:
		return fmt.Errorf("%w: fill_chance must be in [0,1], got %g", ErrInvalidConfig, p.FillChance)
	case p.MixRatioA < 0 || p.MixRatioA > 1:
		return fmt.Errorf("%w: mix_ratio_a must be in [0,1], got %g", ErrInvalidConfig, p.MixRatioA)
	}
	switch p.PhaseMode {
	case PhaseModeAccumulator, PhaseModeProbabilistic:
	default:
		return fmt.Errorf("%w: phase_mode %q", ErrInvalidConfig, p.PhaseMode)
	}
	prob := p.Probabilistic
	if prob.VaporizeRate < 0 || prob.VaporizeRate > 1 || prob.CondenseRate < 0 || prob.CondenseRate > 1 {
		return fmt.Errorf("%w: probabilistic rates must be in [0,1]", ErrInvalidConfig)
	}
	if err := p.A.validate("a", p.TempMin, p.TempMax); err != nil {
		return err
	}
	if err := p.B.validate("b", p.TempMin, p.TempMax); err != nil {
		return err
	}
	fixed := []struct {
		name  string
		props FixedProperties
	}{
		{"air", p.Air},
		{"wall", p.Wall},
	}
	for _, f := range fixed {
		if f.props.Conductivity < 0 || f.props.HeatCapacity < 0 {
			return fmt.Errorf("%w: %s thermal constants must be non-negative", ErrInvalidConfig, f.name)
		}
	}
	if !p.Tension.Symmetric() {
		return fmt.Errorf("%w: tension matrix is not symmetric", ErrInvalidConfig)
	}
	if k1, k2, ok := p.Tension.firstNegative(); ok {
		return fmt.Errorf("%w: tension %s/%s must be non-negative", ErrInvalidConfig, k1, k2)
	}
	return nil
}

func (s SubstanceProperties) validate(name string, lo, hi float64) error {
	if s.BoilingPoint < lo || s.BoilingPoint > hi {
		return fmt.Errorf("%w: %s boiling_point %g outside [%g,%g]", ErrInvalidConfig, name, s.BoilingPoint, lo, hi)
	}
	if s.LatentHeatThreshold < 0 {
		return fmt.Errorf("%w: %s latent_heat_threshold must be non-negative", ErrInvalidConfig, name)
	}
	for _, v := range []float64{
		s.DensityLiquid, s.DensityGas,
		s.ConductivityLiquid, s.ConductivityGas,
		s.HeatCapacityLiquid, s.HeatCapacityGas,
		s.CohesionLiquid, s.CohesionGas,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s physical constants must be finite and non-negative", ErrInvalidConfig, name)
		}
	}
	return nil
}
