package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-tick input snapshot handed to the current view.
type Input struct {
	// Normalized movement direction from WASD
	DirX float64
	DirY float64

	MouseX int
	MouseY int
	Click  bool // Left button just pressed

	Escape   bool // Escape just pressed
	Interact bool // E just pressed
}

// WithoutPointer returns a copy with mouse state stripped. Used while
// gameplay owns input and menu-style pointer events must not leak through.
func (in Input) WithoutPointer() Input {
	in.MouseX = -1
	in.MouseY = -1
	in.Click = false
	return in
}

// InputSystem reads the live keyboard and mouse state.
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Snapshot reads the current input state
func (s *InputSystem) Snapshot() Input {
	mx, my := ebiten.CursorPosition()

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	dx, dy = Normalize(dx, dy)

	return Input{
		DirX:     dx,
		DirY:     dy,
		MouseX:   mx,
		MouseY:   my,
		Click:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Escape:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Interact: inpututil.IsKeyJustPressed(ebiten.KeyE),
	}
}

// Normalize scales a direction vector to unit length so diagonal
// movement is not faster than cardinal movement.
func Normalize(dx, dy float64) (float64, float64) {
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0
	}
	return dx / length, dy / length
}
