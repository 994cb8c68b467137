package distill

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteProvidesDistinctEntries(t *testing.T) {
	palette := Palette()
	require.Len(t, palette, NumKeys)

	seen := map[color.RGBA]Key{}
	for i, c := range palette {
		if prev, dup := seen[c]; dup {
			t.Fatalf("keys %s and %s share colour %v", prev, Key(i), c)
		}
		seen[c] = Key(i)
		assert.Equal(t, uint8(255), c.A)
	}

	palette[0] = color.RGBA{}
	assert.NotEqual(t, color.RGBA{}, Palette()[0], "Palette returns a copy")
}

func TestSessionPaletteIsPrivateToCaller(t *testing.T) {
	a, b := New(5, 5), New(5, 5)
	pa := a.Palette()
	pa[KeyWall] = color.RGBA{R: 1}

	assert.Equal(t, Palette(), b.Palette())
	assert.Equal(t, Palette(), a.Palette())
}

func TestTemperatureColor(t *testing.T) {
	base := BaseColor(KeyBLiquid)

	assert.Equal(t, base, TemperatureColor(20, base))
	assert.Equal(t, base, TemperatureColor(-5, base))
	assert.Equal(t, hotTint, TemperatureColor(200, base))
	assert.Equal(t, hotTint, TemperatureColor(300, base))

	mid := TemperatureColor(110, base)
	assert.Greater(t, mid.R, base.R)
	assert.Less(t, mid.R, hotTint.R)
}

func TestFillRGBA(t *testing.T) {
	cfg := smallConfig(20, 10)
	s, err := NewWithConfig(cfg)
	require.NoError(t, err)

	buf := make([]byte, 20*10*4)
	s.FillRGBA(buf, false)

	px := func(x, y int) color.NRGBA {
		o := (y*20 + x) * 4
		return color.NRGBA{R: buf[o], G: buf[o+1], B: buf[o+2], A: buf[o+3]}
	}
	assert.Equal(t, coolerTint, px(5, 0))
	assert.Equal(t, heaterTint, px(10, 9))
	assert.Equal(t, BaseColor(KeyWall), px(0, 5))
	assert.Equal(t, BaseColor(KeyAir), px(5, 1))

	// Shading only applies to fluid cells.
	s.Grid().Set(5, 2, Cell{Substance: SubstanceA, Phase: PhaseGas, Temperature: 200})
	s.FillRGBA(buf, true)
	assert.Equal(t, hotTint, px(5, 2))
	assert.Equal(t, BaseColor(KeyAir), px(5, 1))

	// Short buffers are left untouched.
	short := make([]byte, 8)
	s.FillRGBA(short, true)
	assert.Equal(t, make([]byte, 8), short)
}
