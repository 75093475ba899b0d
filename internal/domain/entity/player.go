package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/awaking/internal/infrastructure/assets"
)

// Player is the controllable character: a world position, a movement
// direction and a named animation set.
type Player struct {
	X, Y        float64
	Speed       float64
	FacingRight bool

	anims   map[string]*assets.Animation
	current string
	frame   int
	timer   float64

	dirX, dirY float64
}

// NewPlayer creates a player at the given world position.
// anims maps animation names ("idle", "walking", ...) to frame sets.
func NewPlayer(x, y, speed float64, anims map[string]*assets.Animation) *Player {
	return &Player{
		X:           x,
		Y:           y,
		Speed:       speed,
		FacingRight: true,
		anims:       anims,
		current:     "idle",
	}
}

// Move sets the movement direction for the next update. The direction is
// expected to be normalized already. Selects the walking or idle
// animation and updates facing.
func (p *Player) Move(dx, dy float64) {
	p.dirX, p.dirY = dx, dy

	if dx != 0 || dy != 0 {
		p.setAnimation("walking")
		if dx > 0 {
			p.FacingRight = true
		} else if dx < 0 {
			p.FacingRight = false
		}
	} else {
		p.setAnimation("idle")
	}
}

// Update advances position and animation.
func (p *Player) Update(dt float64) {
	if dt < 0.001 {
		dt = 0.001
	}
	p.animate(dt)
	p.X += p.dirX * p.Speed * dt
	p.Y += p.dirY * p.Speed * dt
}

func (p *Player) setAnimation(name string) {
	if name == p.current {
		return
	}
	if _, ok := p.anims[name]; !ok {
		return
	}
	p.current = name
	p.frame = 0
	p.timer = 0
}

func (p *Player) animate(dt float64) {
	anim := p.anims[p.current]
	if anim == nil || len(anim.Frames) == 0 || anim.FrameTime <= 0 {
		return
	}
	p.timer += dt
	for p.timer >= anim.FrameTime {
		p.timer -= anim.FrameTime
		p.frame = (p.frame + 1) % len(anim.Frames)
	}
}

// Frame returns the current animation frame, or nil if no art is loaded.
func (p *Player) Frame() *ebiten.Image {
	anim := p.anims[p.current]
	if anim == nil {
		return nil
	}
	return anim.FrameAt(p.frame)
}

// Animation returns the current animation name.
func (p *Player) Animation() string {
	return p.current
}

// FrameIndex returns the current frame index within the animation.
func (p *Player) FrameIndex() int {
	return p.frame
}

// Size returns the current frame dimensions in pixels.
func (p *Player) Size() (int, int) {
	f := p.Frame()
	if f == nil {
		return assets.PlaceholderSize, assets.PlaceholderSize
	}
	b := f.Bounds()
	return b.Dx(), b.Dy()
}
