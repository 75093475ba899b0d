package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeNow returns a controllable time source
func fakeNow(t *time.Time) func() time.Time {
	return func() time.Time { return *t }
}

func TestFrameClock_FirstTickReturnsFloor(t *testing.T) {
	now := time.Unix(0, 0)
	c := New(60)
	c.now = fakeNow(&now)

	dt := c.Tick()
	assert.Equal(t, MinDT, dt, "first tick has no previous sample")
}

func TestFrameClock_TickMatchesElapsed(t *testing.T) {
	now := time.Unix(100, 0)
	c := New(60)
	c.now = fakeNow(&now)
	c.Tick()

	now = now.Add(16 * time.Millisecond)
	dt := c.Tick()
	assert.InDelta(t, 0.016, dt, 1e-9)

	now = now.Add(250 * time.Millisecond)
	dt = c.Tick()
	assert.InDelta(t, 0.25, dt, 1e-9)
}

func TestFrameClock_ZeroElapsedClampedToFloor(t *testing.T) {
	now := time.Unix(100, 0)
	c := New(60)
	c.now = fakeNow(&now)
	c.Tick()

	// Same timestamp twice: timer resolution anomaly
	dt := c.Tick()
	assert.Equal(t, MinDT, dt)

	// Time going backwards must not produce a negative dt
	now = now.Add(-time.Second)
	dt = c.Tick()
	assert.Equal(t, MinDT, dt)
}

func TestFrameClock_DTAlwaysPositive(t *testing.T) {
	now := time.Unix(0, 0)
	c := New(60)
	c.now = fakeNow(&now)

	steps := []time.Duration{0, time.Microsecond, 16 * time.Millisecond, 0, time.Second}
	for _, step := range steps {
		now = now.Add(step)
		dt := c.Tick()
		assert.GreaterOrEqual(t, dt, MinDT)
	}
}

func TestFrameClock_TPS(t *testing.T) {
	c := New(60)
	assert.Equal(t, 60, c.TPS())
	assert.Equal(t, time.Second/60, c.Interval())
}
