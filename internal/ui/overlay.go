//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/msonrm/distillation-tower/internal/core"
	"github.com/msonrm/distillation-tower/internal/render"
	"github.com/msonrm/distillation-tower/internal/sims/distill"
)

type statsProvider interface {
	Stats() distill.Statistics
}

// Overlay draws the statistics readout and the temperature legend on top of
// the simulation view. H toggles it.
type Overlay struct {
	sim     core.Sim
	scale   int
	hidden  bool
	running bool

	backdrop  *ebiten.Image
	legend    *ebiten.Image
	legendBuf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.backdrop = ebiten.NewImage(1, 1)
	o.backdrop.Fill(color.RGBA{A: 170})

	o.legend = ebiten.NewImage(legendWidth, legendHeight)
	o.legendBuf = make([]byte, legendWidth*legendHeight*4)
	base := distill.BaseColor(distill.KeyBLiquid)
	render.FillGradientRGBA(o.legendBuf, legendWidth, legendHeight, func(t float64) color.RGBA {
		c := distill.TemperatureColor(legendMin+t*(legendMax-legendMin), base)
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	})
	o.legend.WritePixels(o.legendBuf)
	return o
}

// Update records the run state and handles the visibility toggle.
func (o *Overlay) Update(running bool) {
	o.running = running
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.hidden {
		return
	}
	provider, ok := o.sim.(statsProvider)
	if !ok {
		return
	}
	lines := StatusLines(provider.Stats(), o.running)

	face := basicfont.Face7x13
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, text.BoundString(face, l).Dx())
	}
	boxW += 2 * overlayPadding
	boxH := len(lines)*overlayLine + 2*overlayPadding + legendHeight + overlayLine

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(max(boxW, legendWidth+2*overlayPadding)), float64(boxH))
	op.GeoM.Translate(overlayMargin, overlayMargin)
	screen.DrawImage(o.backdrop, op)

	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	y := overlayMargin + overlayPadding + overlayLine - 3
	for _, l := range lines {
		text.Draw(screen, l, face, overlayMargin+overlayPadding, y, fg)
		y += overlayLine
	}

	lop := &ebiten.DrawImageOptions{}
	lop.GeoM.Translate(overlayMargin+overlayPadding, float64(y-overlayLine+6))
	screen.DrawImage(o.legend, lop)
	ly := y - overlayLine + 6 + legendHeight + overlayLine - 3
	text.Draw(screen, "20C", face, overlayMargin+overlayPadding, ly, fg)
	text.Draw(screen, "200C", face, overlayMargin+overlayPadding+legendWidth-28, ly, fg)
}

const (
	overlayMargin  = 6
	overlayPadding = 6
	overlayLine    = 15
	legendWidth    = 160
	legendHeight   = 8
	legendMin      = 20.0
	legendMax      = 200.0
)
