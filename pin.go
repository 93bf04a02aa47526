package motion

import "github.com/tanema/gween/ease"

// PinOptions configures a pinned horizontal-scroll section.
type PinOptions struct {
	// Smoothing, when positive, lets the inner content's horizontal offset
	// lag the scroll position by roughly this many seconds. The outer
	// section itself always stays exactly fixed.
	Smoothing float64
	// OnToggle runs when the section becomes pinned or is released.
	OnToggle func(pinned bool)
}

// PinHandle is a registered pinned section. While the viewport's scroll
// offset is inside the pin band [start, start+distance), the outer target is
// held at the viewport top (its PropPinY follows the scroll) and the inner
// target slides left by the same amount (PropPinX = -offset). The pin writes
// only its own channels, so the same targets may also be revealed or moved
// through PropX and PropY.
type PinHandle struct {
	stage *Stage
	scope *Scope
	outer Target
	inner Target
	opts  PinOptions

	start    float64
	distance float64
	goal     float64
	offset   float64
	pinned   bool
	smooth   smoother

	outerTween *Tween
	innerTween *Tween
	removed    bool
}

// Distance returns the scrollable distance: inner content width minus
// viewport width, or zero when the content fits.
func (h *PinHandle) Distance() float64 {
	if h == nil {
		return 0
	}
	return h.distance
}

// Spacing returns the extra vertical space the host must reserve after the
// section so that content below it is not covered while it is pinned.
func (h *PinHandle) Spacing() float64 {
	return h.Distance()
}

// Offset returns the current horizontal offset of the inner content in
// [0, Distance()].
func (h *PinHandle) Offset() float64 {
	if h == nil {
		return 0
	}
	return h.offset
}

// Progress returns Offset() / Distance(), or 0 for an unpinnable section.
func (h *PinHandle) Progress() float64 {
	if h == nil || h.distance <= 0 {
		return 0
	}
	return h.offset / h.distance
}

// Pinned reports whether the section is currently held in place.
func (h *PinHandle) Pinned() bool {
	return h != nil && h.pinned
}

// Active reports whether the pin is still registered.
func (h *PinHandle) Active() bool {
	return h != nil && !h.removed
}

// Refresh recomputes the scrollable distance from the current content and
// viewport size. Call it after the inner content changes width.
func (h *PinHandle) Refresh() {
	if h == nil || h.removed {
		return
	}
	h.refresh(h.stage.vp)
	h.update(h.stage.vp)
}

// Unpin removes the pin and returns both targets to rest. Safe to call more
// than once.
func (h *PinHandle) Unpin() {
	if h == nil || h.removed {
		return
	}
	h.stage.removePin(h)
	if h.scope != nil {
		h.scope.pins = removeItem(h.scope.pins, h)
	}
}

func (h *PinHandle) teardown() {
	h.removed = true
	h.outerTween.Cancel()
	h.innerTween.Cancel()
	h.outerTween, h.innerTween = nil, nil
	if !targetDisposed(h.outer) {
		h.outer.SetProperty(PropPinY, PropPinY.Rest())
	}
	if !targetDisposed(h.inner) {
		h.inner.SetProperty(PropPinX, PropPinX.Rest())
	}
	h.pinned = false
	h.offset = 0
}

// refresh recomputes the pin band. The two scrub tweens are rebuilt when the
// distance changes so that seeking stays a linear map onto [0, distance].
func (h *PinHandle) refresh(vp Viewport) {
	h.start = h.outer.Bounds().Y
	d := 0.0
	if !vp.Empty() {
		d = h.inner.Bounds().Width - vp.Width
	}
	if d < 0 {
		d = 0
	}
	if d == h.distance && (d == 0 || h.innerTween != nil) {
		return
	}
	h.distance = d

	h.outerTween.Cancel()
	h.innerTween.Cancel()
	h.outerTween, h.innerTween = nil, nil
	if d == 0 {
		h.outer.SetProperty(PropPinY, PropPinY.Rest())
		h.inner.SetProperty(PropPinX, PropPinX.Rest())
		h.offset = 0
		h.smooth.reset(0)
		return
	}

	lin := AnimationSpec{Duration: 1, TweenOptions: TweenOptions{Ease: ease.Linear}}
	h.outerTween = h.stage.engine.scrub(h.outer, lin,
		[]channel{{prop: PropPinY, span: Span{From: 0, To: d}}}, h.scope)
	h.innerTween = h.stage.engine.scrub(h.inner, lin,
		[]channel{{prop: PropPinX, span: Span{From: 0, To: -d}}}, h.scope)
	if h.offset > d {
		h.offset = d
	}
	h.smooth.reset(h.offset)
}

// update maps the scroll position onto the pin band.
func (h *PinHandle) update(vp Viewport) {
	if h.removed {
		return
	}
	travel := vp.ScrollY - h.start
	h.goal = clamp(travel, 0, h.distance)

	pinned := h.distance > 0 && travel >= 0 && travel < h.distance
	if pinned != h.pinned {
		h.pinned = pinned
		typ := EventPinRelease
		if pinned {
			typ = EventPinEnter
		}
		h.stage.emit(Event{Type: typ, Scope: h.scope.Name(), Target: h.outer, Offset: h.goal})
		if h.opts.OnToggle != nil {
			h.opts.OnToggle(pinned)
		}
		if h.removed {
			return
		}
	}

	if h.distance <= 0 {
		return
	}
	h.outerTween.Seek(h.goal / h.distance)
	if !h.smooth.enabled() {
		h.offset = h.goal
		h.innerTween.Seek(h.offset / h.distance)
	}
}

// step advances inner-content smoothing by one frame.
func (h *PinHandle) step(dt float32) {
	if h.removed || h.distance <= 0 || !h.smooth.enabled() {
		return
	}
	if h.smooth.settled(h.goal) && h.offset == h.goal {
		return
	}
	h.offset = clamp(h.smooth.step(dt, h.goal), 0, h.distance)
	h.innerTween.Seek(h.offset / h.distance)
}
