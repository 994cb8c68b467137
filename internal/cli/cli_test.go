package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msonrm/distillation-tower/internal/core"
	"github.com/msonrm/distillation-tower/internal/sims/distill"
)

var smallColumn = []string{"--log", "error", "--set", "w=20", "--set", "h=20", "--set", "band_rows=6"}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunReportsFinalFrame(t *testing.T) {
	args := append([]string{"run", "--steps", "5", "--every", "0", "--seed", "7"}, smallColumn...)
	out, err := execute(t, args...)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "frame=5 "), "got %q", out)
	assert.Contains(t, out, "stratification=")
}

func TestRunIsReproducibleWithSeed(t *testing.T) {
	args := append([]string{"run", "--steps", "8", "--every", "4", "--seed", "99"}, smallColumn...)
	first, err := execute(t, args...)
	require.NoError(t, err)
	second, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunRejectsBadInput(t *testing.T) {
	_, err := execute(t, append([]string{"run", "--set", "nope=1"}, smallColumn...)...)
	assert.ErrorIs(t, err, distill.ErrUnknownKey)

	_, err = execute(t, append([]string{"run", "--set", "gravity"}, smallColumn...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key=value")

	_, err = execute(t, append([]string{"run", "--set", "gravity=-1"}, smallColumn...)...)
	assert.ErrorIs(t, err, distill.ErrInvalidConfig)

	_, err = execute(t, append([]string{"run", "--steps", "-1"}, smallColumn...)...)
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "run", "--log", "loud", "--steps", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestSweepKeepsValueOrder(t *testing.T) {
	args := append([]string{"sweep", "--param", "gravity", "--values", "0,2,4", "--steps", "3", "--workers", "2", "--seed", "5"}, smallColumn...)
	out, err := execute(t, args...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "gravity=0 "))
	assert.True(t, strings.HasPrefix(lines[1], "gravity=2 "))
	assert.True(t, strings.HasPrefix(lines[2], "gravity=4 "))
}

func TestSweepArguments(t *testing.T) {
	_, err := execute(t, append([]string{"sweep", "--values", "1,2"}, smallColumn...)...)
	assert.Error(t, err)

	_, err = execute(t, append([]string{"sweep", "--param", "warp", "--values", "1"}, smallColumn...)...)
	assert.ErrorIs(t, err, distill.ErrUnknownKey)
}

func TestPresetRoundTripsOverrides(t *testing.T) {
	out, err := execute(t, "preset", "--log", "error", "--set", "gravity=3.5", "--seed", "11")
	require.NoError(t, err)

	cfg, err := distill.ParsePreset([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 3.5, cfg.Params.Gravity)
	assert.Equal(t, int64(11), cfg.Seed)
	assert.Equal(t, distill.DefaultConfig().Width, cfg.Width)
}

func TestPresetFileFeedsRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "column.yaml")
	_, err := execute(t, append([]string{"preset", "-o", path, "--set", "exchange_sweeps=4"}, smallColumn...)...)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	cfg, err := distill.ParsePreset(data)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Params.ExchangeSweeps)
	assert.Equal(t, 20, cfg.Width)

	out, err := execute(t, "run", "--log", "error", "--preset", path, "--steps", "2", "--every", "0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "frame=2 "))

	_, err = execute(t, "run", "--log", "error", "--preset", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseOverrides(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    map[string]string
		wantErr bool
	}{
		{name: "empty", in: nil, want: map[string]string{}},
		{name: "trims key", in: []string{" gravity =2"}, want: map[string]string{"gravity": "2"}},
		{name: "value keeps equals", in: []string{"phase_mode=a=b"}, want: map[string]string{"phase_mode": "a=b"}},
		{name: "last wins", in: []string{"seed=1", "seed=2"}, want: map[string]string{"seed": "2"}},
		{name: "missing equals", in: []string{"gravity"}, wantErr: true},
		{name: "missing key", in: []string{"=3"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOverrides(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildSimThroughRegistry(t *testing.T) {
	cf := configFlags{sets: []string{"w=12", "h=10", "band_rows=3"}, seed: 4}
	sim, err := buildSim("distill", &cf)
	require.NoError(t, err)
	assert.Equal(t, "distill", sim.Name())
	assert.Equal(t, 12, sim.Size().W)

	s, ok := sim.(*distill.Session)
	require.True(t, ok)
	assert.Equal(t, int64(4), s.Config().Seed)

	_, err = buildSim("sandpile", &cf)
	assert.ErrorIs(t, err, core.ErrUnknownSim)

	cf.preset = "column.yaml"
	_, err = buildSim("sandpile", &cf)
	assert.Error(t, err)
}
