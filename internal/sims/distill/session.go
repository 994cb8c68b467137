package distill

import (
	"github.com/sirupsen/logrus"

	icore "github.com/msonrm/distillation-tower/internal/core"
	"github.com/msonrm/distillation-tower/pkg/core"
)

// Session owns one distillation column: its configuration, grid, frame
// counter and random streams. It is not safe for concurrent use; hosts drive
// it from a single goroutine.
type Session struct {
	cfg     Config
	grid    *Grid
	frame   int
	rng     *core.RNG
	streams Streams
	last    StepReport
	display []uint8
}

// New returns a session with the provided dimensions using defaults.
// Dimensions are raised to the 3x3 minimum and the band height shrinks to fit
// very short grids.
func New(w, h int) *Session {
	w, h = max(w, minSide), max(h, minSide)
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	if cfg.Params.BandRows > h-2 {
		cfg.Params.BandRows = max(h-2, 0)
	}
	s, err := NewWithConfig(cfg)
	if err != nil {
		logrus.WithError(err).Warn("distill: falling back to default config")
		s, _ = NewWithConfig(DefaultConfig())
	}
	return s
}

// NewWithConfig validates cfg and builds the initial grid from cfg.Seed.
func NewWithConfig(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{cfg: cfg}
	if err := s.reset(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the simulation identifier.
func (s *Session) Name() string { return "distill" }

// Size reports the grid dimensions.
func (s *Session) Size() icore.Size { return icore.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Cells exposes the display buffer: one Key per cell, row-major.
func (s *Session) Cells() []uint8 {
	for i, c := range s.grid.cells {
		s.display[i] = uint8(c.Key())
	}
	return s.display
}

// Grid exposes the live grid. Callers must not retain it across Reset.
func (s *Session) Grid() *Grid { return s.grid }

// Config returns a copy of the active configuration.
func (s *Session) Config() Config { return s.cfg }

// Frame is the number of steps taken since the last reset.
func (s *Session) Frame() int { return s.frame }

// LastReport describes the most recent step.
func (s *Session) LastReport() StepReport { return s.last }

// Seed reports the effective master seed, including a clock-derived one.
func (s *Session) Seed() uint64 { return s.rng.Seed() }

// Stats aggregates the current grid.
func (s *Session) Stats() Statistics {
	st := CalculateStats(s.grid)
	st.Frame = s.frame
	return st
}

// Reset rebuilds the initial column. A zero seed falls back to the configured
// seed; if that is zero too the run is unseeded.
func (s *Session) Reset(seed int64) {
	if err := s.reset(seed); err != nil {
		// The config was validated on the way in, so this only fires if a
		// caller bypassed SetParams.
		logrus.WithError(err).Error("distill: reset failed")
	}
}

func (s *Session) reset(seed int64) error {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	rng := core.NewRNG(effective)
	g, err := CreateGrid(s.cfg, rng.Derive("init"))
	if err != nil {
		return err
	}
	s.rng = rng
	s.streams = NewStreams(rng)
	s.grid = g
	s.frame = 0
	s.last = StepReport{}
	s.display = make([]uint8, g.Len())
	return nil
}

// Step advances the column by one frame.
func (s *Session) Step() {
	s.last = SimulateStep(s.grid, &s.cfg.Params, s.frame, s.streams)
	s.frame++
}

// SetParams replaces the physical parameters after validating them. The grid
// is left as is; callers reset when the change affects initialisation.
func (s *Session) SetParams(p Params) error {
	next := s.cfg
	next.Params = p
	if err := next.Validate(); err != nil {
		return err
	}
	s.cfg = next
	logrus.WithField("phase_mode", p.PhaseMode).Debug("distill: parameters replaced")
	return nil
}

// Reconfigure swaps the whole configuration, including dimensions, and
// resets from the new seed.
func (s *Session) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	prev := s.cfg
	s.cfg = cfg
	if err := s.reset(cfg.Seed); err != nil {
		s.cfg = prev
		return err
	}
	return nil
}

func init() {
	icore.Register("distill", func(cfg map[string]string) (icore.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		s, err := NewWithConfig(c)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
