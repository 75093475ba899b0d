// Package clock provides the frame clock that produces per-tick delta times.
package clock

import "time"

// MinDT is the floor applied to every delta so animation timers always
// make forward progress, even when the OS timer reports zero elapsed time.
const MinDT = 0.001

// FrameClock tracks wall-clock time between ticks.
//
// Frame pacing itself is delegated to ebiten's fixed tick scheduler;
// TPS reports the target rate main should install with ebiten.SetTPS.
type FrameClock struct {
	now   func() time.Time
	last  time.Time
	minDT float64
	tps   int
}

// New creates a frame clock targeting the given ticks per second.
func New(tps int) *FrameClock {
	return &FrameClock{
		now:   time.Now,
		minDT: MinDT,
		tps:   tps,
	}
}

// Tick returns the elapsed time in seconds since the previous call,
// clamped to MinDT. The first call returns MinDT.
func (c *FrameClock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return c.minDT
	}

	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < c.minDT {
		dt = c.minDT
	}
	return dt
}

// TPS returns the target tick rate.
func (c *FrameClock) TPS() int {
	return c.tps
}

// Interval returns the duration of one tick at the target rate.
func (c *FrameClock) Interval() time.Duration {
	return time.Second / time.Duration(c.tps)
}
