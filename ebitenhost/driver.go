// Package ebitenhost drives a motion.Stage from an Ebitengine game loop. It
// samples the mouse wheel, cursor, and window size once per tick and feeds
// them to the stage before advancing it by one frame.
package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/motion"
)

// DefaultScrollSpeed is the number of pixels scrolled per wheel notch.
const DefaultScrollSpeed = 60.0

// Input is the subset of Ebitengine input the driver reads. EbitenInput
// forwards to the ebiten package; tests substitute a fake.
type Input interface {
	CursorPosition() (x, y int)
	Wheel() (dx, dy float64)
	TPS() int
}

// EbitenInput reads live input from Ebitengine.
type EbitenInput struct{}

func (EbitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }
func (EbitenInput) Wheel() (float64, float64)  { return ebiten.Wheel() }
func (EbitenInput) TPS() int                   { return ebiten.TPS() }

// Config configures a Driver.
type Config struct {
	// ScrollSpeed is pixels per wheel notch. Zero uses DefaultScrollSpeed.
	ScrollSpeed float64
	// ContentHeight is the document height. Scrolling is clamped to
	// [0, ContentHeight-viewport height]. Zero disables the upper clamp.
	ContentHeight float64
	// Input overrides the input source. Nil reads from Ebitengine.
	Input Input
}

// Driver adapts a motion.Stage to Ebitengine's Update/Layout cycle. Embed it
// in an ebiten.Game, or call Layout and Update from your own.
type Driver struct {
	stage *motion.Stage
	input Input
	speed float64

	contentHeight float64
	scrollY       float64

	width, height   int
	sized           bool
	resizePending   bool
	pointerInWindow bool
	cursorX         int
	cursorY         int
}

// New creates a driver for stage.
func New(stage *motion.Stage, cfg Config) *Driver {
	d := &Driver{
		stage:         stage,
		input:         cfg.Input,
		speed:         cfg.ScrollSpeed,
		contentHeight: cfg.ContentHeight,
	}
	if d.input == nil {
		d.input = EbitenInput{}
	}
	if d.speed <= 0 {
		d.speed = DefaultScrollSpeed
	}
	vp := stage.Viewport()
	d.scrollY = vp.ScrollY
	return d
}

// Stage returns the driven stage.
func (d *Driver) Stage() *motion.Stage {
	return d.stage
}

// ScrollY returns the accumulated scroll offset.
func (d *Driver) ScrollY() float64 {
	return d.scrollY
}

// SetContentHeight changes the document height and re-clamps the scroll
// offset. Call it when layout changes, followed by the next Update.
func (d *Driver) SetContentHeight(h float64) {
	d.contentHeight = h
	d.scrollY = d.clampScroll(d.scrollY)
}

// ScrollTo jumps to y, clamped to the scrollable range.
func (d *Driver) ScrollTo(y float64) {
	d.scrollY = d.clampScroll(y)
}

// Layout records the outside size as the viewport size and returns it
// unchanged, so one screen pixel equals one layout pixel.
func (d *Driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !d.sized || outsideWidth != d.width || outsideHeight != d.height {
		d.width, d.height = outsideWidth, outsideHeight
		d.sized = true
		d.resizePending = true
	}
	return outsideWidth, outsideHeight
}

// Update samples input and advances the stage by one tick.
func (d *Driver) Update() error {
	if d.resizePending {
		d.resizePending = false
		d.stage.Resize(float64(d.width), float64(d.height))
		d.scrollY = d.clampScroll(d.scrollY)
		d.stage.Scroll(d.scrollY)
		d.stage.OnViewportChange()
	}

	if _, wy := d.input.Wheel(); wy != 0 {
		// Wheel up is positive; scrolling down the page is a negative notch.
		d.scrollY = d.clampScroll(d.scrollY - wy*d.speed)
	}
	d.stage.Scroll(d.scrollY)

	cx, cy := d.input.CursorPosition()
	inside := d.sized && cx >= 0 && cy >= 0 && cx < d.width && cy < d.height
	switch {
	case inside && (!d.pointerInWindow || cx != d.cursorX || cy != d.cursorY):
		d.stage.PointerMove(float64(cx), float64(cy))
	case !inside && d.pointerInWindow:
		d.stage.PointerLeave()
	}
	d.pointerInWindow = inside
	d.cursorX, d.cursorY = cx, cy

	tps := d.input.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	d.stage.Update(1 / float32(tps))
	return nil
}

func (d *Driver) clampScroll(y float64) float64 {
	if math.IsNaN(y) {
		return 0
	}
	hi := math.Inf(1)
	if d.contentHeight > 0 {
		hi = max(d.contentHeight-float64(d.height), 0)
	}
	return min(max(y, 0), hi)
}
