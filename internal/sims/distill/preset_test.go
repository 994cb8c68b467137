package distill

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePresetOverlaysDefaults(t *testing.T) {
	data := []byte(`
width: 30
seed: 5
params:
  gravity: 1.5
  phase_mode: probabilistic
  a:
    boiling_point: 70
  tension:
    - {a: b_liquid, b: a_liquid, value: 0.9}
`)
	cfg, err := ParsePreset(data)
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, def.Height, cfg.Height)
	assert.Equal(t, int64(5), cfg.Seed)
	assert.Equal(t, 1.5, cfg.Params.Gravity)
	assert.Equal(t, PhaseModeProbabilistic, cfg.Params.PhaseMode)
	assert.Equal(t, 70.0, cfg.Params.A.BoilingPoint)
	assert.Equal(t, def.Params.A.LatentHeatThreshold, cfg.Params.A.LatentHeatThreshold)
	assert.Equal(t, 0.9, cfg.Params.Tension.Get(KeyALiquid, KeyBLiquid))
	assert.Equal(t, 0.9, cfg.Params.Tension.Get(KeyBLiquid, KeyALiquid))
	assert.Equal(t, def.Params.Tension.Get(KeyALiquid, KeyAir), cfg.Params.Tension.Get(KeyALiquid, KeyAir))
}

func TestParsePresetRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"typo", "params:\n  gravty: 1\n"},
		{"unknown tension key", "params:\n  tension:\n    - {a: lava, b: air, value: 1}\n"},
		{"negative tension", "params:\n  tension:\n    - {a: air, b: wall, value: -1}\n"},
		{"misspelled tension value", "params:\n  tension:\n    - {a: a_liquid, b: air, vlaue: 3}\n"},
		{"extra tension field", "params:\n  tension:\n    - {a: a_liquid, b: air, value: 3, weight: 1}\n"},
		{"tension without value", "params:\n  tension:\n    - {a: a_liquid, b: air}\n"},
		{"tension without pair", "params:\n  tension:\n    - {a: a_liquid, value: 1}\n"},
		{"tension not a list", "params:\n  tension: {a: a_liquid, b: air, value: 1}\n"},
		{"tension value not a number", "params:\n  tension:\n    - {a: a_liquid, b: air, value: hot}\n"},
		{"invalid values", "params:\n  exchange_sweeps: 1\n"},
		{"not yaml", "width: [1, 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePreset([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestTensionEntriesCheckedOnAnyDecoder(t *testing.T) {
	m := DefaultTension()
	err := yaml.Unmarshal([]byte("- {a: a_liquid, b: air, vlaue: 3}\n"), &m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vlaue")
	assert.Equal(t, DefaultTension(), m)

	require.NoError(t, yaml.Unmarshal([]byte("- {a: air, b: a_liquid, value: 2.5}\n"), &m))
	assert.Equal(t, 2.5, m.Get(KeyALiquid, KeyAir))
	assert.Equal(t, DefaultTension().Get(KeyBLiquid, KeyAir), m.Get(KeyBLiquid, KeyAir))
}

func TestEmptyPresetIsDefault(t *testing.T) {
	cfg, err := ParsePreset(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestWritePresetRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	cfg.Params.Tension.Set(KeyAGas, KeyBGas, 0)
	cfg.Params.Tension.Set(KeyAir, KeyAir, 0.3)

	var buf bytes.Buffer
	require.NoError(t, WritePreset(&buf, cfg))

	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	got, err := LoadPreset(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadPresetMissingFile(t *testing.T) {
	_, err := LoadPreset(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
