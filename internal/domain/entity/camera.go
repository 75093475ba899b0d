package entity

// Camera follows a target with a dead zone: the target can move inside
// the zone without the camera scrolling, and the offset eases toward the
// target with lerp smoothing once it leaves.
type Camera struct {
	Width   int
	Height  int
	OffsetX float64
	OffsetY float64

	smoothing       float64
	deadZonePercent float64

	deadLeft, deadRight float64
	deadTop, deadBottom float64
}

// NewCamera creates a camera for the given viewport size.
func NewCamera(width, height int) *Camera {
	c := &Camera{
		Width:           width,
		Height:          height,
		smoothing:       5.0,
		deadZonePercent: 0.1,
	}
	c.updateDeadZone()
	return c
}

func (c *Camera) updateDeadZone() {
	zw := float64(c.Width) * c.deadZonePercent
	zh := float64(c.Height) * c.deadZonePercent
	c.deadLeft = float64(c.Width)/2 - zw/2
	c.deadRight = c.deadLeft + zw
	c.deadTop = float64(c.Height)/2 - zh/2
	c.deadBottom = c.deadTop + zh
}

// Update eases the camera toward the target's world position.
func (c *Camera) Update(targetX, targetY, dt float64) {
	screenX := targetX - c.OffsetX
	screenY := targetY - c.OffsetY

	wantX := c.OffsetX
	wantY := c.OffsetY

	if screenX < c.deadLeft {
		wantX = targetX - c.deadLeft
	} else if screenX > c.deadRight {
		wantX = targetX - c.deadRight
	}
	if screenY < c.deadTop {
		wantY = targetY - c.deadTop
	} else if screenY > c.deadBottom {
		wantY = targetY - c.deadBottom
	}

	t := c.smoothing * dt
	if t > 1.0 {
		t = 1.0
	}
	c.OffsetX = lerp(c.OffsetX, wantX, t)
	c.OffsetY = lerp(c.OffsetY, wantY, t)
}

// Apply converts a world position to a screen position.
func (c *Camera) Apply(x, y float64) (float64, float64) {
	return x - c.OffsetX, y - c.OffsetY
}

// Reset centers the camera on a world position immediately.
func (c *Camera) Reset(centerX, centerY float64) {
	c.OffsetX = centerX - float64(c.Width)/2
	c.OffsetY = centerY - float64(c.Height)/2
}

// Resize adjusts the viewport and recomputes the dead zone.
func (c *Camera) Resize(width, height int) {
	c.Width = width
	c.Height = height
	c.updateDeadZone()
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
