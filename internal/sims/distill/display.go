package distill

import (
	"image/color"
	"math"
)

// Temperature shading normalises (T - shadeFloor) / shadeSpan into [0,1] and
// blends the base colour toward hotTint by that fraction.
const (
	shadeFloor = 20.0
	shadeSpan  = 180.0
)

var (
	hotTint    = color.NRGBA{R: 239, G: 50, B: 96, A: 255}
	heaterTint = color.NRGBA{R: 0xef, G: 0x44, B: 0x44, A: 255}
	coolerTint = color.NRGBA{R: 0x06, G: 0xb6, B: 0xd4, A: 255}
)

var distillPalette = buildPalette()

// BaseColor returns the unshaded colour of a key.
func BaseColor(k Key) color.NRGBA {
	switch k {
	case KeyALiquid:
		return color.NRGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 255}
	case KeyAGas:
		return color.NRGBA{R: 0xfc, G: 0xd3, B: 0x4d, A: 255}
	case KeyBLiquid:
		return color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 255}
	case KeyBGas:
		return color.NRGBA{R: 0x93, G: 0xc5, B: 0xfd, A: 255}
	case KeyWall:
		return color.NRGBA{R: 0x37, G: 0x41, B: 0x51, A: 255}
	default:
		return color.NRGBA{R: 0x0d, G: 0x11, B: 0x17, A: 255}
	}
}

// Palette exposes the colours indexed by the codes Cells returns. Callers
// get their own copy.
func (s *Session) Palette() []color.RGBA {
	return Palette()
}

// Palette returns the key colour table.
func Palette() []color.RGBA {
	out := make([]color.RGBA, len(distillPalette))
	copy(out, distillPalette)
	return out
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, NumKeys)
	for i := range palette {
		palette[i] = toRGBA(BaseColor(Key(i)))
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// TemperatureColor shades base by temperature: at or below 20 degrees it is
// unchanged, at 200 and above it is fully hotTint.
func TemperatureColor(temp float64, base color.NRGBA) color.NRGBA {
	if math.IsNaN(temp) {
		return base
	}
	n := clamp((temp-shadeFloor)/shadeSpan, 0, 1)
	return blendColors(base, hotTint, n)
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}

// cellColor picks the display colour of one cell. Walls pinned hotter or
// colder than ambient get the heater or cooler tint.
func (s *Session) cellColor(c Cell, showTemp bool) color.NRGBA {
	k := c.Key()
	base := BaseColor(k)
	if k == KeyWall {
		p := &s.cfg.Params
		switch {
		case c.Temperature > p.AmbientTemp:
			return heaterTint
		case c.Temperature < p.AmbientTemp:
			return coolerTint
		}
		return base
	}
	if showTemp && k != KeyAir {
		return TemperatureColor(c.Temperature, base)
	}
	return base
}

// FillRGBA writes one RGBA pixel per cell into buf, which must hold at least
// 4*W*H bytes. With showTemp set, fluid cells are shaded by temperature.
func (s *Session) FillRGBA(buf []byte, showTemp bool) {
	cells := s.grid.cells
	if len(buf) < len(cells)*4 {
		return
	}
	for i, c := range cells {
		col := s.cellColor(c, showTemp)
		o := i * 4
		buf[o+0] = col.R
		buf[o+1] = col.G
		buf[o+2] = col.B
		buf[o+3] = col.A
	}
}
