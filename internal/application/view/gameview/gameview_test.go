package gameview

import (
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/awaking/internal/application/system"
	"github.com/younwookim/awaking/internal/application/view"
	"github.com/younwookim/awaking/internal/domain/entity"
	"github.com/younwookim/awaking/internal/infrastructure/assets"
)

func testAnims() map[string]*assets.Animation {
	return map[string]*assets.Animation{
		"idle":    {Frames: make([]*ebiten.Image, 2), FrameTime: 0.1},
		"walking": {Frames: make([]*ebiten.Image, 4), FrameTime: 0.08},
	}
}

// grassWorld builds a fully walkable 20x20 world with 40px tiles.
func grassWorld() *entity.World {
	w := &entity.World{Width: 20, Height: 20, TileSize: 40, SpawnX: 400, SpawnY: 300}
	w.Tiles = make([][]entity.Tile, w.Height)
	for ty := range w.Tiles {
		w.Tiles[ty] = make([]entity.Tile, w.Width)
		for tx := range w.Tiles[ty] {
			w.Tiles[ty][tx] = entity.Tile{Kind: entity.TileGrass, Walkable: true}
		}
	}
	return w
}

func newGameView(t *testing.T) (*GameView, *[]view.Request) {
	t.Helper()
	var switched []view.Request
	world := grassWorld()
	player := entity.NewPlayer(400, 300, 200, testAnims())
	npcs := entity.NewNPCManager(testAnims(), 100, 0, 1.0, 1020, 620, rand.New(rand.NewSource(1)))
	g := New(Config{
		SwitchView: func(r view.Request) { switched = append(switched, r) },
		World:      world,
		Player:     player,
		NPCs:       npcs,
		Width:      1020,
		Height:     620,
	})
	return g, &switched
}

func TestGameView_ImplementsResumable(t *testing.T) {
	g, _ := newGameView(t)
	var _ view.Resumable = g
}

func TestGameView_CameraStartsOnPlayer(t *testing.T) {
	g, _ := newGameView(t)

	// Player center is at (416, 316); the camera centers there.
	assert.InDelta(t, 416.0-1020.0/2, g.Camera().OffsetX, 0.001)
	assert.InDelta(t, 316.0-620.0/2, g.Camera().OffsetY, 0.001)
}

func TestGameView_EscapeOpensInGameSettings(t *testing.T) {
	g, switched := newGameView(t)

	g.HandleInput(system.Input{Escape: true})

	require.Len(t, *switched, 1)
	assert.Equal(t, view.RequestGameSettings, (*switched)[0])
}

func TestGameView_MovementAppliesSpeed(t *testing.T) {
	g, _ := newGameView(t)

	g.HandleInput(system.Input{DirX: 1})
	g.Update(0.1)

	assert.InDelta(t, 420.0, g.player.X, 0.001)
	assert.InDelta(t, 300.0, g.player.Y, 0.001)
}

func TestGameView_WallBlocksMovement(t *testing.T) {
	g, _ := newGameView(t)

	// Wall column immediately to the player's right
	for ty := 0; ty < g.world.Height; ty++ {
		g.world.Tiles[ty][11] = entity.Tile{Kind: entity.TileWall, Walkable: false}
	}

	g.HandleInput(system.Input{DirX: 1})
	for i := 0; i < 60; i++ {
		g.Update(0.1)
	}

	// Player center never enters tile column 11 (x >= 440)
	assert.Less(t, g.player.X+16, 440.0)
}

func TestGameView_WallSlideKeepsFreeAxis(t *testing.T) {
	g, _ := newGameView(t)
	for ty := 0; ty < g.world.Height; ty++ {
		g.world.Tiles[ty][11] = entity.Tile{Kind: entity.TileWall, Walkable: false}
	}

	g.HandleInput(system.Input{DirX: 1, DirY: 1})
	startY := g.player.Y
	for i := 0; i < 10; i++ {
		g.Update(0.1)
	}

	assert.Less(t, g.player.X+16, 440.0, "x is blocked by the wall")
	assert.Greater(t, g.player.Y, startY, "y keeps moving along the wall")
}

func TestGameView_ClampedToWorldBounds(t *testing.T) {
	g, _ := newGameView(t)

	g.HandleInput(system.Input{DirX: -1, DirY: -1})
	for i := 0; i < 200; i++ {
		g.Update(0.1)
	}

	assert.GreaterOrEqual(t, g.player.X, 0.0)
	assert.GreaterOrEqual(t, g.player.Y, 0.0)
}

func TestGameView_PauseFreezesSimulation(t *testing.T) {
	g, _ := newGameView(t)

	g.HandleInput(system.Input{DirX: 1})
	g.Update(0.1)
	x := g.player.X

	g.Pause()
	assert.True(t, g.Paused())
	g.Update(0.1)
	g.Update(0.1)
	assert.Equal(t, x, g.player.X, "paused view holds its state")

	g.Resume()
	assert.False(t, g.Paused())
	g.HandleInput(system.Input{DirX: 1})
	g.Update(0.1)
	assert.Greater(t, g.player.X, x, "the same session continues after resume")
}

func TestGameView_HandleResize(t *testing.T) {
	g, _ := newGameView(t)

	g.HandleResize(1920, 1080)

	assert.Equal(t, 1920, g.Camera().Width)
	assert.Equal(t, 1080, g.Camera().Height)
}
