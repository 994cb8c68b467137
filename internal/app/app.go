//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/msonrm/distillation-tower/internal/core"
	"github.com/msonrm/distillation-tower/internal/render"
	"github.com/msonrm/distillation-tower/internal/ui"
)

type rgbaFiller interface {
	FillRGBA(buf []byte, showTemp bool)
}

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	hudWidth int
	running  bool
	tickOnce bool
	showTemp bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg Config) *Game {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, scale),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		scale:    scale,
		hudWidth: max(cfg.HUDWidth, 0),
		running:  !cfg.Paused,
		showTemp: cfg.ShowTemp,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.running = !g.running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.showTemp = !g.showTemp
	}

	g.overlay.Update(g.running)
	g.hud.Update(g.sim.Size().W * g.scale)

	if g.running || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	switch sim := g.sim.(type) {
	case rgbaFiller:
		g.painter.BlitFunc(screen, func(buf []byte) { sim.FillRGBA(buf, g.showTemp) }, g.scale)
	case paletteProvider:
		g.painter.BlitPalette(screen, g.sim.Cells(), sim.Palette(), g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}

// Run opens the window and blocks until it is closed.
func Run(sim core.Sim, cfg Config) error {
	game := New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("distillation tower: " + sim.Name())
	ebiten.SetTPS(max(cfg.TPS, 1))
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
