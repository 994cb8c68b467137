package distill

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny grid", func(c *Config) { c.Width = 2 }},
		{"negative height", func(c *Config) { c.Height = -5 }},
		{"band taller than interior", func(c *Config) { c.Height = 10 }},
		{"single sweep", func(c *Config) { c.Params.ExchangeSweeps = 1 }},
		{"negative gravity", func(c *Config) { c.Params.Gravity = -1 }},
		{"nan cooling", func(c *Config) { c.Params.Cooling = math.NaN() }},
		{"inverted range", func(c *Config) { c.Params.TempMin = 300 }},
		{"heater outside floor", func(c *Config) { c.Params.HeaterEnd = 1.5 }},
		{"zero beta offset", func(c *Config) { c.Params.BetaOffset = 0 }},
		{"fill above one", func(c *Config) { c.Params.FillChance = 1.2 }},
		{"unknown phase mode", func(c *Config) { c.Params.PhaseMode = "instant" }},
		{"boiling point above ceiling", func(c *Config) { c.Params.B.BoilingPoint = 400 }},
		{"negative density", func(c *Config) { c.Params.A.DensityLiquid = -0.1 }},
		{"negative wall capacity", func(c *Config) { c.Params.Wall.HeatCapacity = -1 }},
		{"asymmetric tension", func(c *Config) { c.Params.Tension.v[KeyALiquid][KeyAir] = 9 }},
		{"negative tension", func(c *Config) { c.Params.Tension.Set(KeyAGas, KeyBGas, -0.1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestValidateReportsFirstViolationInOrder(t *testing.T) {
	p := DefaultParams()
	p.Cooling = math.NaN()
	p.BetaOffset = math.Inf(1)
	p.TempMax = math.NaN()

	q := DefaultParams()
	q.A.BoilingPoint = -1
	q.B.BoilingPoint = -1

	r := DefaultParams()
	r.Air.Conductivity = -1
	r.Wall.Conductivity = -1

	for i := 0; i < 20; i++ {
		assert.ErrorContains(t, p.Validate(), "cooling must be finite")
		assert.ErrorContains(t, q.Validate(), ": a boiling_point")
		assert.ErrorContains(t, r.Validate(), ": air thermal")
	}
}

func TestCreateGridRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0

	g, err := CreateGrid(cfg, nil)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewWithConfig(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
