package entity

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/awaking/internal/infrastructure/assets"
)

// NPC is a wandering townsperson. It walks horizontally, occasionally
// turns around, and can hold a short interaction with the player.
type NPC struct {
	X, Y        float64
	Speed       float64
	FacingRight bool
	CanInteract bool

	anims   map[string]*assets.Animation
	current string
	frame   int
	timer   float64

	dir           float64 // -1 or +1
	turnChance    float64
	offscreenTime float64
	interactTime  float64
}

const (
	npcTurnChance       = 0.005
	npcOffscreenLimit   = 2.0
	npcSpacing          = 40.0
	interactionDuration = 2.0
	interactionRange    = 60.0
)

// NewNPC creates an NPC walking in the given horizontal direction.
func NewNPC(x, y, speed float64, dir int, anims map[string]*assets.Animation) *NPC {
	return &NPC{
		X:           x,
		Y:           y,
		Speed:       speed,
		FacingRight: dir > 0,
		anims:       anims,
		current:     "walking",
		dir:         float64(dir),
		turnChance:  npcTurnChance,
	}
}

// Interacting reports whether the NPC is currently held in an interaction.
func (n *NPC) Interacting() bool {
	return n.interactTime > 0
}

// Interact starts an interaction: the NPC stops and faces the player.
func (n *NPC) Interact() {
	n.interactTime = interactionDuration
	n.setAnimation("idle")
}

// Update advances movement, wandering and animation.
func (n *NPC) Update(dt float64, rng *rand.Rand) {
	if dt < 0.001 {
		dt = 0.001
	}
	n.animate(dt)

	if n.interactTime > 0 {
		n.interactTime -= dt
		if n.interactTime <= 0 {
			n.interactTime = 0
			n.setAnimation("walking")
		}
		return
	}

	if rng.Float64() < n.turnChance {
		n.dir = -n.dir
		n.FacingRight = n.dir > 0
	}

	n.X += n.dir * n.Speed * dt
}

func (n *NPC) setAnimation(name string) {
	if name == n.current {
		return
	}
	if _, ok := n.anims[name]; !ok {
		return
	}
	n.current = name
	n.frame = 0
	n.timer = 0
}

func (n *NPC) animate(dt float64) {
	anim := n.anims[n.current]
	if anim == nil || len(anim.Frames) == 0 || anim.FrameTime <= 0 {
		return
	}
	n.timer += dt
	for n.timer >= anim.FrameTime {
		n.timer -= anim.FrameTime
		n.frame = (n.frame + 1) % len(anim.Frames)
	}
}

// Frame returns the current animation frame, or nil if no art is loaded.
func (n *NPC) Frame() *ebiten.Image {
	anim := n.anims[n.current]
	if anim == nil {
		return nil
	}
	return anim.FrameAt(n.frame)
}

// NPCManager spawns and updates the NPC population around the camera.
type NPCManager struct {
	anims         map[string]*assets.Animation
	speed         float64
	maxCount      int
	spawnInterval float64
	spawnTimer    float64
	spawnOffset   float64
	viewW, viewH  int
	npcs          []*NPC
	rng           *rand.Rand
}

// NewNPCManager creates a manager spawning up to maxCount NPCs.
func NewNPCManager(anims map[string]*assets.Animation, speed float64, maxCount int, spawnInterval float64, viewW, viewH int, rng *rand.Rand) *NPCManager {
	return &NPCManager{
		anims:         anims,
		speed:         speed,
		maxCount:      maxCount,
		spawnInterval: spawnInterval,
		spawnOffset:   20,
		viewW:         viewW,
		viewH:         viewH,
		rng:           rng,
	}
}

// NPCs returns the live population.
func (m *NPCManager) NPCs() []*NPC {
	return m.npcs
}

// Resize adjusts the viewport used for spawn placement and culling.
func (m *NPCManager) Resize(w, h int) {
	m.viewW = w
	m.viewH = h
}

// Update advances every NPC, spawns new ones on a timer, culls NPCs that
// stayed offscreen too long, and flags the one in interaction range of
// the player.
func (m *NPCManager) Update(dt, playerX, playerY float64, cam *Camera) {
	m.spawnTimer += dt
	if m.spawnTimer >= m.spawnInterval && len(m.npcs) < m.maxCount {
		m.spawnTimer = 0
		m.spawn(cam)
	}

	anyInteracting := false
	for _, n := range m.npcs {
		if n.Interacting() {
			anyInteracting = true
			break
		}
	}

	alive := m.npcs[:0]
	for _, n := range m.npcs {
		oldX, oldY := n.X, n.Y
		n.Update(dt, m.rng)
		if !n.Interacting() {
			m.avoid(n, oldX, oldY)
		}

		if m.offscreen(n, cam) {
			n.offscreenTime += dt
			if n.offscreenTime > npcOffscreenLimit {
				continue
			}
		} else {
			n.offscreenTime = 0
		}

		if anyInteracting {
			n.CanInteract = false
		} else {
			n.CanInteract = math.Hypot(playerX-n.X, playerY-n.Y) < interactionRange
		}
		alive = append(alive, n)
	}
	m.npcs = alive
}

// HandleInteraction starts an interaction with the closest interactable
// NPC. Returns true when one was started.
func (m *NPCManager) HandleInteraction() bool {
	for _, n := range m.npcs {
		if n.Interacting() {
			return false
		}
	}
	for _, n := range m.npcs {
		if n.CanInteract {
			n.Interact()
			return true
		}
	}
	return false
}

// avoid backs an NPC out of another's personal space and turns it
// around, so wanderers pass without stacking on each other.
func (m *NPCManager) avoid(n *NPC, oldX, oldY float64) {
	for _, other := range m.npcs {
		if other == n {
			continue
		}
		if math.Hypot(other.X-n.X, other.Y-n.Y) < npcSpacing {
			n.X, n.Y = oldX, oldY
			n.dir = -n.dir
			n.FacingRight = n.dir > 0
			return
		}
	}
}

func (m *NPCManager) offscreen(n *NPC, cam *Camera) bool {
	if cam == nil {
		return false
	}
	margin := 100.0
	sx, sy := cam.Apply(n.X, n.Y)
	return sx < -margin || sx > float64(m.viewW)+margin ||
		sy < -margin || sy > float64(m.viewH)+margin
}

// spawn places a new NPC just outside the left or right edge of the
// camera view, at a random vertical zone, walking inward.
func (m *NPCManager) spawn(cam *Camera) {
	fromLeft := m.rng.Intn(2) == 0

	var centerX float64
	var centerY float64
	if cam != nil {
		centerX = cam.OffsetX + float64(m.viewW)/2
		centerY = cam.OffsetY + float64(m.viewH)/2
	} else {
		centerX = float64(m.viewW) / 2
		centerY = float64(m.viewH) / 2
	}

	var x float64
	var dir int
	if fromLeft {
		x = centerX - float64(m.viewW)/2 - m.spawnOffset
		dir = 1
	} else {
		x = centerX + float64(m.viewW)/2 + m.spawnOffset
		dir = -1
	}

	zoneHeight := 100.0
	zones := int(float64(m.viewH) / zoneHeight)
	if zones < 1 {
		zones = 1
	}
	zone := m.rng.Intn(zones)
	y := centerY - float64(m.viewH)/2 + float64(zone)*zoneHeight + zoneHeight/2 +
		float64(m.rng.Intn(61)-30)

	// Keep spawns spread out
	for _, n := range m.npcs {
		if math.Hypot(n.X-x, n.Y-y) < 100 {
			return
		}
	}

	m.npcs = append(m.npcs, NewNPC(x, y, m.speed, dir, m.anims))
}
