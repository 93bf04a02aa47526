package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/motion"
)

const hudRefresh = 0.5

// HUD is an overlay showing FPS, TPS, scroll offset, and how many tweens,
// triggers, and scopes the stage is running. It redraws its text every half
// second.
type HUD struct {
	stage *motion.Stage
	img   *ebiten.Image
	since float64
	text  string
}

// NewHUD creates a HUD for stage. The backing image is allocated on the first
// Draw.
func NewHUD(stage *motion.Stage) *HUD {
	return &HUD{stage: stage, since: hudRefresh}
}

// Update advances the refresh timer by dt seconds and rebuilds the text when
// it expires.
func (h *HUD) Update(dt float64) {
	h.since += dt
	if h.since < hudRefresh {
		return
	}
	h.since = 0
	h.text = h.status(ebiten.ActualFPS(), ebiten.ActualTPS())
}

// Text returns the current overlay text.
func (h *HUD) Text() string {
	return h.text
}

func (h *HUD) status(fps, tps float64) string {
	vp := h.stage.Viewport()
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nscroll: %.0f\ntweens: %d\nscopes: %d",
		fps, tps, vp.ScrollY, h.stage.Engine().Active(), len(h.stage.Scopes()))
}

// Draw renders the overlay at the top-left of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h.img == nil {
		// 140x80 fits five lines of debug text.
		h.img = ebiten.NewImage(140, 80)
	}
	h.img.Clear()
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, h.text)
	screen.DrawImage(h.img, nil)
}
