package distill

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msonrm/distillation-tower/internal/core"
)

const tensionPrefix = "tension:"

// paramField binds one numeric parameter key to its place in Config. The same
// table drives FromMap, the parameter snapshot and the control surface.
type paramField struct {
	key   string
	label string
	group string
	typ   core.ParamType

	step, min, max float64
	// fixed fields are configuration-time only and never exposed as controls.
	fixed bool
	// reset fields only shape the initial grid, so applying one rebuilds it.
	reset bool

	get func(*Config) float64
	set func(*Config, float64)
}

func floatField(group, key, label string, step, lo, hi float64, ptr func(*Config) *float64) paramField {
	return paramField{
		key: key, label: label, group: group, typ: core.ParamTypeFloat,
		step: step, min: lo, max: hi,
		get: func(c *Config) float64 { return *ptr(c) },
		set: func(c *Config, v float64) { *ptr(c) = v },
	}
}

func intField(group, key, label string, step, lo, hi float64, ptr func(*Config) *int) paramField {
	return paramField{
		key: key, label: label, group: group, typ: core.ParamTypeInt,
		step: step, min: lo, max: hi,
		get: func(c *Config) float64 { return float64(*ptr(c)) },
		set: func(c *Config, v float64) { *ptr(c) = int(v) },
	}
}

func resetOnApply(f paramField) paramField {
	f.reset = true
	return f
}

func substanceFields(group, prefix string, sp func(*Config) *SubstanceProperties) []paramField {
	f := func(key, label string, step, hi float64, ptr func(*SubstanceProperties) *float64) paramField {
		return floatField(group, prefix+key, label, step, 0, hi, func(c *Config) *float64 { return ptr(sp(c)) })
	}
	return []paramField{
		f("boiling_point", "Boiling point", 1, 300, func(s *SubstanceProperties) *float64 { return &s.BoilingPoint }),
		f("latent_heat_threshold", "Latent heat threshold", 1, 200, func(s *SubstanceProperties) *float64 { return &s.LatentHeatThreshold }),
		f("density_liquid", "Liquid density", 0.05, 5, func(s *SubstanceProperties) *float64 { return &s.DensityLiquid }),
		f("density_gas", "Gas density", 0.0005, 1, func(s *SubstanceProperties) *float64 { return &s.DensityGas }),
		f("conductivity_liquid", "Liquid conductivity", 0.01, 2, func(s *SubstanceProperties) *float64 { return &s.ConductivityLiquid }),
		f("conductivity_gas", "Gas conductivity", 0.005, 2, func(s *SubstanceProperties) *float64 { return &s.ConductivityGas }),
		f("heat_capacity_liquid", "Liquid heat capacity", 0.1, 10, func(s *SubstanceProperties) *float64 { return &s.HeatCapacityLiquid }),
		f("heat_capacity_gas", "Gas heat capacity", 0.1, 10, func(s *SubstanceProperties) *float64 { return &s.HeatCapacityGas }),
		f("cohesion_liquid", "Liquid cohesion", 0.05, 5, func(s *SubstanceProperties) *float64 { return &s.CohesionLiquid }),
		f("cohesion_gas", "Gas cohesion", 0.05, 5, func(s *SubstanceProperties) *float64 { return &s.CohesionGas }),
	}
}

var paramFields = buildParamFields()

func buildParamFields() []paramField {
	fields := []paramField{
		{key: "w", label: "Width", group: "World", typ: core.ParamTypeInt, fixed: true,
			get: func(c *Config) float64 { return float64(c.Width) },
			set: func(c *Config, v float64) { c.Width = int(v) }},
		{key: "h", label: "Height", group: "World", typ: core.ParamTypeInt, fixed: true,
			get: func(c *Config) float64 { return float64(c.Height) },
			set: func(c *Config, v float64) { c.Height = int(v) }},

		floatField("Thermal", "ambient_temp", "Ambient temp", 1, 0, 300, func(c *Config) *float64 { return &c.Params.AmbientTemp }),
		floatField("Thermal", "hot_temp", "Heater temp", 5, 0, 300, func(c *Config) *float64 { return &c.Params.HotTemp }),
		floatField("Thermal", "cold_temp", "Cooler temp", 1, 0, 300, func(c *Config) *float64 { return &c.Params.ColdTemp }),
		floatField("Thermal", "temp_min", "Temp floor", 1, 0, 300, func(c *Config) *float64 { return &c.Params.TempMin }),
		floatField("Thermal", "temp_max", "Temp ceiling", 1, 0, 1000, func(c *Config) *float64 { return &c.Params.TempMax }),
		floatField("Thermal", "heater_start", "Heater start", 0.05, 0, 1, func(c *Config) *float64 { return &c.Params.HeaterStart }),
		floatField("Thermal", "heater_end", "Heater end", 0.05, 0, 1, func(c *Config) *float64 { return &c.Params.HeaterEnd }),
		floatField("Thermal", "cooling", "Natural cooling", 0.001, 0, 1, func(c *Config) *float64 { return &c.Params.Cooling }),
		floatField("Thermal", "conduction_damping", "Conduction damping", 0.01, 0, 1, func(c *Config) *float64 { return &c.Params.ConductionDamping }),

		floatField("Exchange", "gravity", "Gravity", 0.1, 0, 20, func(c *Config) *float64 { return &c.Params.Gravity }),
		floatField("Exchange", "beta_scale", "Beta scale", 0.01, 0, 1, func(c *Config) *float64 { return &c.Params.BetaScale }),
		floatField("Exchange", "beta_offset", "Beta offset", 0.1, 0.1, 10, func(c *Config) *float64 { return &c.Params.BetaOffset }),
		intField("Exchange", "exchange_sweeps", "Sweeps per frame", 1, 2, 10, func(c *Config) *int { return &c.Params.ExchangeSweeps }),

		floatField("Phase", "vaporize_rate", "Vaporize rate", 0.01, 0, 1, func(c *Config) *float64 { return &c.Params.Probabilistic.VaporizeRate }),
		floatField("Phase", "condense_rate", "Condense rate", 0.01, 0, 1, func(c *Config) *float64 { return &c.Params.Probabilistic.CondenseRate }),
		floatField("Phase", "latent_vaporize", "Vaporize cooling", 1, 0, 100, func(c *Config) *float64 { return &c.Params.Probabilistic.LatentVaporize }),
		floatField("Phase", "latent_condense", "Condense heating", 1, 0, 100, func(c *Config) *float64 { return &c.Params.Probabilistic.LatentCondense }),
	}
	fields = append(fields, substanceFields("Substance A", "a_", func(c *Config) *SubstanceProperties { return &c.Params.A })...)
	fields = append(fields, substanceFields("Substance B", "b_", func(c *Config) *SubstanceProperties { return &c.Params.B })...)
	fields = append(fields,
		floatField("Air & Wall", "air_conductivity", "Air conductivity", 0.005, 0, 2, func(c *Config) *float64 { return &c.Params.Air.Conductivity }),
		floatField("Air & Wall", "air_heat_capacity", "Air heat capacity", 0.1, 0, 10, func(c *Config) *float64 { return &c.Params.Air.HeatCapacity }),
		floatField("Air & Wall", "wall_conductivity", "Wall conductivity", 0.05, 0, 2, func(c *Config) *float64 { return &c.Params.Wall.Conductivity }),
		floatField("Air & Wall", "wall_heat_capacity", "Wall heat capacity", 0.1, 0, 10, func(c *Config) *float64 { return &c.Params.Wall.HeatCapacity }),

		resetOnApply(intField("Initial Band", "band_rows", "Band rows", 1, 0, 1000, func(c *Config) *int { return &c.Params.BandRows })),
		resetOnApply(floatField("Initial Band", "fill_chance", "Fill chance", 0.05, 0, 1, func(c *Config) *float64 { return &c.Params.FillChance })),
		resetOnApply(floatField("Initial Band", "mix_ratio_a", "Share of A", 0.05, 0, 1, func(c *Config) *float64 { return &c.Params.MixRatioA })),
	)
	for a := 0; a < NumKeys; a++ {
		for b := a + 1; b < NumKeys; b++ {
			fields = append(fields, tensionField(Key(a), Key(b)))
		}
	}
	return fields
}

// TensionParamKey names the control for the unordered pair {a, b}.
func TensionParamKey(a, b Key) string {
	return tensionPrefix + a.String() + ":" + b.String()
}

func tensionField(a, b Key) paramField {
	return paramField{
		key:   TensionParamKey(a, b),
		label: "Tension " + a.String() + "/" + b.String(),
		group: "Tension",
		typ:   core.ParamTypeFloat,
		step:  0.05, min: 0, max: 5,
		get: func(c *Config) float64 { return c.Params.Tension.Get(a, b) },
		set: func(c *Config, v float64) { c.Params.Tension.Set(a, b, v) },
	}
}

func lookupField(key string) (paramField, bool) {
	for _, f := range paramFields {
		if f.key == key {
			return f, true
		}
	}
	// Accept either order of a tension pair.
	if rest, ok := strings.CutPrefix(key, tensionPrefix); ok {
		if an, bn, ok := strings.Cut(rest, ":"); ok {
			ka, errA := ParseKey(an)
			kb, errB := ParseKey(bn)
			if errA == nil && errB == nil && ka != kb {
				return tensionField(min(ka, kb), max(ka, kb)), true
			}
		}
	}
	return paramField{}, false
}

// FromMap converts a flag-style map into a Config on top of the defaults.
// Unknown keys and unparsable values are errors; the result is validated.
func FromMap(m map[string]string) (Config, error) {
	return DefaultConfig().WithOverrides(m)
}

// WithOverrides applies flag-style key/value overrides to a copy of cfg and
// validates the result.
func (c Config) WithOverrides(m map[string]string) (Config, error) {
	cfg := c
	if len(m) == 0 {
		return cfg, cfg.Validate()
	}
	for key, raw := range m {
		raw = strings.TrimSpace(raw)
		switch key {
		case "seed":
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return cfg, fmt.Errorf("%w: seed %q: %w", ErrInvalidConfig, raw, err)
			}
			cfg.Seed = v
			continue
		case "phase_mode":
			cfg.Params.PhaseMode = PhaseMode(raw)
			continue
		}
		f, ok := lookupField(key)
		if !ok {
			return cfg, fmt.Errorf("%w %q", ErrUnknownKey, key)
		}
		var v float64
		switch f.typ {
		case core.ParamTypeInt:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return cfg, fmt.Errorf("%w: %s %q: %w", ErrInvalidConfig, key, raw, err)
			}
			v = float64(n)
		default:
			x, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return cfg, fmt.Errorf("%w: %s %q: %w", ErrInvalidConfig, key, raw, err)
			}
			v = x
		}
		f.set(&cfg, v)
	}
	return cfg, cfg.Validate()
}

// Parameters reports the current configuration grouped for display.
func (s *Session) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{}
	index := map[string]int{}
	add := func(group string, p core.Parameter) {
		i, ok := index[group]
		if !ok {
			i = len(groups)
			index[group] = i
			groups = append(groups, core.ParameterGroup{Name: group})
		}
		groups[i].Params = append(groups[i].Params, p)
	}

	for _, f := range paramFields {
		v := f.get(&s.cfg)
		if f.typ == core.ParamTypeInt {
			add(f.group, intParam(f.key, f.label, int(v)))
		} else {
			add(f.group, floatParam(f.key, f.label, v))
		}
		if f.key == "h" {
			add(f.group, int64Param("seed", "Seed", s.cfg.Seed))
		}
	}
	add("Phase", core.Parameter{
		Key:         "phase_mode",
		Label:       "Phase model",
		Type:        core.ParamTypeString,
		Value:       string(s.cfg.Params.PhaseMode),
		Description: "accumulator or probabilistic",
	})
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters that can be tuned while running.
func (s *Session) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, 0, len(paramFields))
	for _, f := range paramFields {
		if f.fixed {
			continue
		}
		out = append(out, core.ParameterControl{
			Key:    f.key,
			Label:  f.label,
			Type:   f.typ,
			Step:   f.step,
			Min:    f.min,
			Max:    f.max,
			HasMin: true,
			HasMax: true,
		})
	}
	return out
}

// SetFloatParameter updates a float parameter, clamped to its control range.
// It reports false for unknown keys and for values the config rejects.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	f, ok := lookupField(key)
	if !ok || f.fixed || f.typ != core.ParamTypeFloat {
		return false
	}
	return s.apply(f, clamp(value, f.min, f.max))
}

// SetIntParameter updates an integer parameter, clamped to its control range.
func (s *Session) SetIntParameter(key string, value int) bool {
	f, ok := lookupField(key)
	if !ok || f.fixed || f.typ != core.ParamTypeInt {
		return false
	}
	return s.apply(f, clamp(float64(value), f.min, f.max))
}

func (s *Session) apply(f paramField, v float64) bool {
	next := s.cfg
	f.set(&next, v)
	if err := s.SetParams(next.Params); err != nil {
		return false
	}
	if f.reset {
		s.Reset(0)
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
