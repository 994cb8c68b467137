package app

import (
	"errors"

	"github.com/spf13/pflag"
)

// ErrNoGUI is returned by Run when the binary was built without the ebiten tag.
var ErrNoGUI = errors.New("the interactive window requires building with the 'ebiten' tag")

// Config represents the window options of the interactive host.
type Config struct {
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int
	ShowTemp bool
	Paused   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 6, TPS: 30, HUDWidth: 300, Paused: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for reset (0 = config seed, else unseeded)")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.BoolVar(&c.ShowTemp, "show-temp", c.ShowTemp, "start with temperature shading enabled")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start stopped; press space to run")
}
