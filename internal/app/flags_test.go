package app

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := pflag.NewFlagSet("gui", pflag.ContinueOnError)
	cfg.Bind(fs)

	require.NoError(t, fs.Parse([]string{"--scale=3", "--seed", "11", "--show-temp", "--paused=false"}))

	assert.Equal(t, 3, cfg.Scale)
	assert.Equal(t, int64(11), cfg.Seed)
	assert.True(t, cfg.ShowTemp)
	assert.False(t, cfg.Paused)
	assert.Equal(t, 30, cfg.TPS)
	assert.Equal(t, 300, cfg.HUDWidth)
}
