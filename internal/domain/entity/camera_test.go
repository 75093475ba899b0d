package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamera_ResetCenters(t *testing.T) {
	c := NewCamera(800, 600)
	c.Reset(1000, 1000)

	assert.InDelta(t, 600.0, c.OffsetX, 1e-9)
	assert.InDelta(t, 700.0, c.OffsetY, 1e-9)

	x, y := c.Apply(1000, 1000)
	assert.InDelta(t, 400.0, x, 1e-9)
	assert.InDelta(t, 300.0, y, 1e-9)
}

func TestCamera_DeadZoneHoldsStill(t *testing.T) {
	c := NewCamera(800, 600)
	c.Reset(400, 300) // offset 0,0; target at screen center

	// Small movement inside the dead zone: camera must not scroll
	for i := 0; i < 60; i++ {
		c.Update(410, 305, 1.0/60)
	}
	assert.InDelta(t, 0.0, c.OffsetX, 1e-9)
	assert.InDelta(t, 0.0, c.OffsetY, 1e-9)
}

func TestCamera_FollowsOutsideDeadZone(t *testing.T) {
	c := NewCamera(800, 600)
	c.Reset(400, 300)

	// Move the target far right; after enough updates the camera
	// converges so the target sits on the dead zone's right edge.
	for i := 0; i < 600; i++ {
		c.Update(1200, 300, 1.0/60)
	}
	sx, _ := c.Apply(1200, 300)
	assert.InDelta(t, 440.0, sx, 0.5, "target rests at dead zone right edge")
}

func TestCamera_SmoothingIsGradual(t *testing.T) {
	c := NewCamera(800, 600)
	c.Reset(400, 300)

	c.Update(1200, 300, 1.0/60)
	first := c.OffsetX
	assert.Greater(t, first, 0.0)

	c.Update(1200, 300, 1.0/60)
	assert.Greater(t, c.OffsetX, first, "offset keeps approaching the target")
	assert.Less(t, c.OffsetX, 760.0)
}

func TestCamera_LargeDTClamped(t *testing.T) {
	c := NewCamera(800, 600)
	c.Reset(400, 300)

	// A one-second stall must not overshoot the target offset
	c.Update(1200, 300, 1.0)
	sx, _ := c.Apply(1200, 300)
	assert.InDelta(t, 440.0, sx, 1e-6)
}

func TestCamera_ResizeRecomputesDeadZone(t *testing.T) {
	c := NewCamera(800, 600)
	c.Resize(400, 400)

	assert.Equal(t, 400, c.Width)
	assert.Equal(t, 400, c.Height)

	// New dead zone is 40x40 centered at 200,200
	assert.InDelta(t, 180.0, c.deadLeft, 1e-9)
	assert.InDelta(t, 220.0, c.deadRight, 1e-9)
}
