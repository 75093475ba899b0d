// Package transition implements the fade-to-black view transition: fade
// in, run an asynchronous loader behind the covered screen, then fade
// out once its result is ready.
package transition

import (
	"image/color"
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/awaking/internal/application/view"
	"github.com/younwookim/awaking/internal/ui"
)

// State is the transition's lifecycle phase.
type State int

const (
	StateFadingIn State = iota
	StateLoading
	StateFadingOut
	StateComplete
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateFadingIn:
		return "fading_in"
	case StateLoading:
		return "loading"
	case StateFadingOut:
		return "fading_out"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DefaultFadeStep is the per-tick alpha increment used when the
// configured step is not positive.
const DefaultFadeStep = 8

// LoadFunc builds the destination view. It runs on its own goroutine and
// reports progress as a 0-100 percentage.
type LoadFunc func(report func(pct int)) (view.View, error)

type loadResult struct {
	view view.View
	err  error
}

// Controller drives one transition from start to Complete (or Failed).
// A fresh controller is created for every view switch.
type Controller struct {
	state State
	alpha int
	step  int

	width, height int

	started  bool
	progress int32
	resultCh chan loadResult
	result   view.View
	err      error

	spinnerAngle int
}

// New creates a controller fading over the given screen size.
func New(width, height, step int) *Controller {
	if step <= 0 {
		step = DefaultFadeStep
	}
	return &Controller{
		width:    width,
		height:   height,
		step:     step,
		resultCh: make(chan loadResult, 1),
	}
}

// State returns the current phase.
func (c *Controller) State() State {
	return c.state
}

// Alpha returns the overlay opacity (0-255).
func (c *Controller) Alpha() int {
	return c.alpha
}

// Progress returns the loader's last reported percentage.
func (c *Controller) Progress() int {
	return int(atomic.LoadInt32(&c.progress))
}

// StartLoad launches the loader goroutine. Extra calls are ignored so a
// transition never runs two loaders.
func (c *Controller) StartLoad(load LoadFunc) {
	if c.started {
		return
	}
	c.started = true

	go func() {
		v, err := load(func(pct int) {
			atomic.StoreInt32(&c.progress, int32(pct))
		})
		c.resultCh <- loadResult{view: v, err: err}
	}()
}

// Update advances the transition by one tick.
func (c *Controller) Update() {
	c.spinnerAngle = (c.spinnerAngle + 6) % 360

	switch c.state {
	case StateFadingIn:
		c.alpha += c.step
		if c.alpha >= 255 {
			c.alpha = 255
			c.state = StateLoading
		}
	case StateLoading:
		select {
		case res := <-c.resultCh:
			if res.err != nil {
				log.Printf("transition: load failed: %v", res.err)
				c.err = res.err
				c.state = StateFailed
				return
			}
			c.result = res.view
			c.state = StateFadingOut
		default:
		}
	case StateFadingOut:
		c.alpha -= c.step
		if c.alpha <= 0 {
			c.alpha = 0
			c.state = StateComplete
		}
	}
}

// TakeResult hands over the loaded view once and nils it out.
func (c *Controller) TakeResult() view.View {
	v := c.result
	c.result = nil
	return v
}

// Err returns the loader error after a Failed transition.
func (c *Controller) Err() error {
	return c.err
}

// Resize adjusts the overlay to a new screen size mid-transition.
func (c *Controller) Resize(width, height int) {
	c.width = width
	c.height = height
}

// showsLoadingContent reports whether the overlay covers enough of the
// screen to render the loading indicators over it. Tied to alpha only,
// so the indicators linger through the first fading-out ticks.
func (c *Controller) showsLoadingContent() bool {
	return c.alpha > 200
}

// Draw renders the fade overlay, plus the loading indicators while the
// screen is mostly covered.
func (c *Controller) Draw(screen *ebiten.Image) {
	if c.alpha <= 0 {
		return
	}
	ebitenutil.DrawRect(screen, 0, 0, float64(c.width), float64(c.height),
		color.RGBA{0, 0, 0, uint8(c.alpha)})

	if c.showsLoadingContent() {
		cx := float64(c.width) / 2
		cy := float64(c.height) / 2
		ebitenutil.DebugPrintAt(screen, "Loading...", c.width/2-30, c.height/2-60)
		ui.DrawProgressBar(screen, cx-100, cy+50, 200, 16, c.Progress())
		ui.DrawSpinner(screen, cx, cy, c.spinnerAngle)
	}
}
