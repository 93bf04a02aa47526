package motion

// Trigger describes a visibility rule for one target.
type Trigger struct {
	// Threshold is the fraction of the target (0..1) that must be inside the
	// viewport before a one-shot trigger fires. Zero fires as soon as any
	// part is visible. A target larger than the viewport fires once it
	// covers as much of the viewport as it can.
	Threshold float64
	// Mode selects one-shot or scrubbed playback.
	Mode TriggerMode
	// Animation is the tween template. One-shot triggers resolve it at
	// registration: From values are applied immediately so the target starts
	// hidden, and the captured spans play when the trigger fires. Scrubbed
	// triggers seek the same template by scroll progress.
	Animation AnimationSpec
	// Distance, when positive, scrubs over this many pixels of scroll
	// starting when the target's top reaches the viewport top. Otherwise the
	// scrub spans the target's whole pass through the viewport.
	Distance float64
	// Smoothing, when positive, lets scrubbed progress lag the scroll
	// position by roughly this many seconds.
	Smoothing float64
	// OnEnter runs when a one-shot trigger fires.
	OnEnter func()
}

type triggerKey struct {
	target Target
	mode   TriggerMode
}

// TriggerHandle is a registered trigger.
type TriggerHandle struct {
	stage  *Stage
	scope  *Scope
	target Target
	trig   Trigger
	chans  []channel

	tween      *Tween
	fired      bool
	visibility float64
	goal       float64
	smooth     smoother
	removed    bool
}

// Target returns the trigger's target.
func (h *TriggerHandle) Target() Target {
	if h == nil {
		return nil
	}
	return h.target
}

// Fired reports whether a one-shot trigger has started its animation.
func (h *TriggerHandle) Fired() bool {
	return h != nil && h.fired
}

// Visibility returns the last computed visible fraction of the target.
func (h *TriggerHandle) Visibility() float64 {
	if h == nil {
		return 0
	}
	return h.visibility
}

// Progress returns the scrub progress last applied to the animation. For
// one-shot triggers it is the progress of the fired tween.
func (h *TriggerHandle) Progress() float64 {
	if h == nil || h.tween == nil {
		return 0
	}
	return h.tween.Progress()
}

// Tween returns the tween driven by this trigger, or nil before a one-shot
// trigger fires.
func (h *TriggerHandle) Tween() *Tween {
	if h == nil {
		return nil
	}
	return h.tween
}

// Active reports whether the trigger is still registered.
func (h *TriggerHandle) Active() bool {
	return h != nil && !h.removed
}

// Unregister removes the trigger and cancels its animation. Safe to call
// more than once.
func (h *TriggerHandle) Unregister() {
	if h == nil || h.removed {
		return
	}
	h.stage.removeTrigger(h)
	if h.scope != nil {
		h.scope.triggers = removeItem(h.scope.triggers, h)
	}
}

func (h *TriggerHandle) teardown() {
	h.removed = true
	h.tween.Cancel()
}

// evaluate recomputes visibility and fires or scrubs the animation.
func (h *TriggerHandle) evaluate(vp Viewport) {
	if h.removed {
		return
	}
	b := h.target.Bounds()
	h.visibility = visibleFraction(b, vp)

	switch h.trig.Mode {
	case TriggerOnce:
		if h.fired || h.visibility <= 0 || h.visibility < min(h.trig.Threshold, reachableFraction(b, vp)) {
			return
		}
		h.fire()
	case TriggerScrub:
		h.goal = scrubProgress(b, vp, h.trig.Distance)
		if !h.smooth.enabled() {
			h.tween.Seek(h.goal)
		}
	}
}

func (h *TriggerHandle) fire() {
	h.fired = true
	h.tween = h.stage.engine.playResolved(h.target, h.trig.Animation, h.chans, h.scope)
	h.stage.emit(Event{
		Type:       EventTriggerFired,
		Scope:      h.scope.Name(),
		Target:     h.target,
		Visibility: h.visibility,
	})
	if h.trig.OnEnter != nil {
		h.trig.OnEnter()
	}
}

// step advances scrub smoothing by one frame.
func (h *TriggerHandle) step(dt float32) {
	if h.removed || h.tween == nil || h.trig.Mode != TriggerScrub || !h.smooth.enabled() {
		return
	}
	if h.smooth.settled(h.goal) && h.tween.sampled && h.tween.progress == h.goal {
		return
	}
	h.tween.Seek(h.smooth.step(dt, h.goal))
}

// visibleFraction returns the fraction of b's area inside the viewport.
// Empty targets and empty viewports are never visible.
func visibleFraction(b Rect, vp Viewport) float64 {
	if b.Empty() || vp.Empty() {
		return 0
	}
	v := vp.Rect()
	left := max(b.X, v.X)
	right := min(b.X+b.Width, v.X+v.Width)
	top := max(b.Y, v.Y)
	bottom := min(b.Y+b.Height, v.Y+v.Height)
	if right <= left || bottom <= top {
		return 0
	}
	return ((right - left) * (bottom - top)) / (b.Width * b.Height)
}

// reachableFraction returns the largest visible fraction b can have in vp.
func reachableFraction(b Rect, vp Viewport) float64 {
	if b.Empty() || vp.Empty() {
		return 0
	}
	return min(1, vp.Width/b.Width) * min(1, vp.Height/b.Height)
}

// scrubProgress maps the scroll position to [0, 1] for a scrubbed trigger.
// Without a distance, 0 is the target's top touching the viewport bottom and
// 1 is its bottom touching the viewport top.
func scrubProgress(b Rect, vp Viewport, distance float64) float64 {
	if b.Empty() || vp.Empty() {
		return 0
	}
	if distance > 0 {
		return clamp((vp.ScrollY-b.Y)/distance, 0, 1)
	}
	return clamp((vp.ScrollY+vp.Height-b.Y)/(vp.Height+b.Height), 0, 1)
}

func removeItem[T comparable](s []T, v T) []T {
	for i := range s {
		if s[i] == v {
			var zero T
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}
