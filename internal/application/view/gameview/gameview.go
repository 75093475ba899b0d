// Package gameview provides the gameplay view: a tile world, the player,
// a wandering NPC population and a dead-zone camera.
package gameview

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/awaking/internal/application/system"
	"github.com/younwookim/awaking/internal/application/view"
	"github.com/younwookim/awaking/internal/domain/entity"
)

var tileColors = map[entity.TileKind]color.RGBA{
	entity.TileGrass: {34, 139, 34, 255},
	entity.TilePath:  {210, 180, 140, 255},
	entity.TileWater: {65, 105, 225, 255},
	entity.TileWall:  {105, 105, 105, 255},
}

var (
	colorBG       = color.RGBA{12, 16, 12, 255}
	colorFallback = color.RGBA{255, 0, 255, 255}
)

// Config carries the game view's collaborators, built by the loader.
type Config struct {
	SwitchView view.SwitchFunc
	World      *entity.World
	Player     *entity.Player
	NPCs       *entity.NPCManager
	Width      int
	Height     int
}

// GameView is the in-game view. It satisfies view.Resumable so the
// orchestrator can pause it behind the in-game settings menu and resume
// the same session afterwards.
type GameView struct {
	switchView view.SwitchFunc
	world      *entity.World
	player     *entity.Player
	npcs       *entity.NPCManager
	camera     *entity.Camera

	width, height int
	paused        bool
}

// New creates a game view with the camera centered on the player.
func New(cfg Config) *GameView {
	g := &GameView{
		switchView: cfg.SwitchView,
		world:      cfg.World,
		player:     cfg.Player,
		npcs:       cfg.NPCs,
		camera:     entity.NewCamera(cfg.Width, cfg.Height),
		width:      cfg.Width,
		height:     cfg.Height,
	}
	pw, ph := cfg.Player.Size()
	g.camera.Reset(cfg.Player.X+float64(pw)/2, cfg.Player.Y+float64(ph)/2)
	return g
}

// HandleInput processes movement, interaction and the pause key
// (implements view.View)
func (g *GameView) HandleInput(in system.Input) {
	if in.Escape {
		g.switchView(view.RequestGameSettings)
		return
	}
	dx, dy := system.Normalize(in.DirX, in.DirY)
	g.player.Move(dx, dy)
	if in.Interact {
		g.npcs.HandleInteraction()
	}
}

// Update advances the simulation. A paused view holds its state
// untouched until Resume (implements view.View)
func (g *GameView) Update(dt float64) {
	if g.paused {
		return
	}

	oldX, oldY := g.player.X, g.player.Y
	g.player.Update(dt)
	g.collide(oldX, oldY)

	pw, ph := g.player.Size()
	cx := g.player.X + float64(pw)/2
	cy := g.player.Y + float64(ph)/2
	g.camera.Update(cx, cy, dt)
	g.npcs.Update(dt, cx, cy, g.camera)
}

// collide reverts movement per axis when the player's center lands on a
// non-walkable tile, so sliding along walls still works.
func (g *GameView) collide(oldX, oldY float64) {
	pw, ph := g.player.Size()
	halfW := float64(pw) / 2
	halfH := float64(ph) / 2

	if !g.world.WalkableAt(int(g.player.X+halfW), int(oldY+halfH)) {
		g.player.X = oldX
	}
	if !g.world.WalkableAt(int(g.player.X+halfW), int(g.player.Y+halfH)) {
		g.player.Y = oldY
	}

	ww, wh := g.world.PixelSize()
	g.player.X = clamp(g.player.X, 0, float64(ww-pw))
	g.player.Y = clamp(g.player.Y, 0, float64(wh-ph))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Draw renders the world with camera culling, then NPCs and the player
// (implements view.View)
func (g *GameView) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	g.drawTiles(screen)
	for _, n := range g.npcs.NPCs() {
		g.drawCharacter(screen, n.Frame(), n.X, n.Y, n.FacingRight)
		if n.CanInteract {
			sx, sy := g.camera.Apply(n.X, n.Y)
			ebitenutil.DebugPrintAt(screen, "E", int(sx), int(sy)-18)
		}
	}
	g.drawCharacter(screen, g.player.Frame(), g.player.X, g.player.Y, g.player.FacingRight)
}

func (g *GameView) drawTiles(screen *ebiten.Image) {
	ts := g.world.TileSize

	startTx := int(g.camera.OffsetX) / ts
	startTy := int(g.camera.OffsetY) / ts
	if startTx < 0 {
		startTx = 0
	}
	if startTy < 0 {
		startTy = 0
	}
	endTx := (int(g.camera.OffsetX)+g.width)/ts + 1
	endTy := (int(g.camera.OffsetY)+g.height)/ts + 1
	if endTx > g.world.Width {
		endTx = g.world.Width
	}
	if endTy > g.world.Height {
		endTy = g.world.Height
	}

	for ty := startTy; ty < endTy; ty++ {
		for tx := startTx; tx < endTx; tx++ {
			sx, sy := g.camera.Apply(float64(tx*ts), float64(ty*ts))
			ebitenutil.DrawRect(screen, sx, sy, float64(ts), float64(ts),
				tileColors[g.world.Tile(tx, ty).Kind])
		}
	}
}

func (g *GameView) drawCharacter(screen *ebiten.Image, frame *ebiten.Image, x, y float64, facingRight bool) {
	sx, sy := g.camera.Apply(x, y)
	if frame == nil {
		ebitenutil.DrawRect(screen, sx, sy, 32, 32, colorFallback)
		return
	}

	op := &ebiten.DrawImageOptions{}
	if !facingRight {
		w := frame.Bounds().Dx()
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(w), 0)
	}
	op.GeoM.Translate(sx, sy)
	screen.DrawImage(frame, op)
}

// HandleResize updates the camera viewport and NPC culling bounds
// (implements view.View)
func (g *GameView) HandleResize(w, h int) {
	g.width, g.height = w, h
	g.camera.Resize(w, h)
	g.npcs.Resize(w, h)
}

// Pause freezes the simulation (implements view.Resumable)
func (g *GameView) Pause() {
	g.paused = true
	g.player.Move(0, 0)
}

// Resume unfreezes the simulation (implements view.Resumable)
func (g *GameView) Resume() {
	g.paused = false
}

// Paused reports whether the view is currently paused.
func (g *GameView) Paused() bool {
	return g.paused
}

// Camera exposes the camera for tests.
func (g *GameView) Camera() *entity.Camera {
	return g.camera
}
