package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Codes past
// the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	n := min(len(cells), len(buf)/4)
	if len(palette) == 0 {
		clear(buf[:n*4])
		return
	}

	last := len(palette) - 1
	for i := 0; i < n; i++ {
		idx := int(cells[i])
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillGradientRGBA paints a horizontal w x h gradient by sampling shade at
// evenly spaced points in [0,1]. Used for legends.
func FillGradientRGBA(buf []byte, w, h int, shade func(t float64) color.RGBA) {
	if w <= 0 || h <= 0 || len(buf) < w*h*4 {
		return
	}
	for x := 0; x < w; x++ {
		t := 0.0
		if w > 1 {
			t = float64(x) / float64(w-1)
		}
		col := shade(t)
		for y := 0; y < h; y++ {
			base := (y*w + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
