package core

import "time"

// Pacer meters simulation steps at a steady ticks-per-second rate. It plays
// the part of an animation scheduler for hosts that have none. A zero rate
// means "unpaced": every call to Ready reports true.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewPacer constructs a Pacer targeting the given TPS.
func NewPacer(tps int) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetTPS(tps)
	return p
}

// SetTPS changes the tick rate. Non-positive values disable pacing.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		p.step = 0
		return
	}
	p.step = time.Second / time.Duration(tps)
}

// Interval returns the target duration of one tick, or 0 when unpaced.
func (p *Pacer) Interval() time.Duration { return p.step }

// Ready reports whether the host should advance the simulation by one tick.
// Elapsed time accumulates across calls so a slow frame is caught up on the
// following calls.
func (p *Pacer) Ready() bool {
	if p.step == 0 {
		return true
	}
	now := p.now()
	if p.last.IsZero() {
		p.last = now
		p.accumulator = p.step
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}

// Wait blocks until the next tick is due.
func (p *Pacer) Wait() {
	for !p.Ready() {
		time.Sleep(p.step / 4)
	}
}
