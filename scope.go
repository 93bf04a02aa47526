package motion

// Scope owns every registration made for one view. Create one with
// Stage.BeginView when the view mounts and call DisposeAll when it unmounts
// or re-renders.
//
// All methods are safe on a nil Scope and on a disposed Scope; they do
// nothing and return nil handles.
type Scope struct {
	stage    *Stage
	name     string
	triggers []*TriggerHandle
	pins     []*PinHandle
	effects  []*EffectHandle
	disposed bool
}

// Name returns the name the scope was created with.
func (sc *Scope) Name() string {
	if sc == nil {
		return ""
	}
	return sc.name
}

// Disposed reports whether DisposeAll has run.
func (sc *Scope) Disposed() bool {
	return sc == nil || sc.disposed
}

// Len returns the number of live triggers, pins, and pointer effects owned
// by the scope.
func (sc *Scope) Len() int {
	if sc == nil {
		return 0
	}
	return len(sc.triggers) + len(sc.pins) + len(sc.effects)
}

func (sc *Scope) usable(op string, target Target) bool {
	if sc == nil {
		return false
	}
	if sc.disposed {
		sc.stage.warnf("%s on disposed scope %q ignored", op, sc.name)
		return false
	}
	if isNil(target) {
		sc.stage.warnf("%s with nil target in scope %q ignored", op, sc.name)
		return false
	}
	return true
}

// RegisterTrigger registers a visibility trigger for target and evaluates it
// against the current viewport straight away. Registering the same target
// and mode again replaces the earlier trigger.
func (sc *Scope) RegisterTrigger(target Target, trig Trigger) *TriggerHandle {
	if !sc.usable("RegisterTrigger", target) {
		return nil
	}
	s := sc.stage
	key := triggerKey{target: target, mode: trig.Mode}
	if prev := s.triggerIndex[key]; prev != nil {
		s.warnf("RegisterTrigger replaces existing %v trigger in scope %q", trig.Mode, prev.scope.Name())
		prev.Unregister()
	}
	trig.Threshold = clamp(trig.Threshold, 0, 1)

	h := &TriggerHandle{
		stage:  s,
		scope:  sc,
		target: target,
		trig:   trig,
		chans:  trig.Animation.resolve(target),
		smooth: newSmoother(trig.Smoothing),
	}
	switch trig.Mode {
	case TriggerOnce:
		trig.Animation.applyFrom(target)
	case TriggerScrub:
		h.tween = s.engine.scrub(target, trig.Animation, h.chans, sc)
	}

	s.triggerIndex[key] = h
	s.triggers = append(s.triggers, h)
	sc.triggers = append(sc.triggers, h)
	h.evaluate(s.vp)
	return h
}

// PinSection pins outer to the viewport while scroll is mapped onto inner's
// horizontal offset. Pinning the same outer target again replaces the
// earlier pin.
func (sc *Scope) PinSection(outer, inner Target, opts PinOptions) *PinHandle {
	if !sc.usable("PinSection", outer) {
		return nil
	}
	if isNil(inner) {
		sc.stage.warnf("PinSection with nil inner target in scope %q ignored", sc.name)
		return nil
	}
	s := sc.stage
	if prev := s.pinIndex[outer]; prev != nil {
		s.warnf("PinSection replaces existing pin in scope %q", prev.scope.Name())
		prev.Unpin()
	}

	h := &PinHandle{
		stage:  s,
		scope:  sc,
		outer:  outer,
		inner:  inner,
		opts:   opts,
		smooth: newSmoother(opts.Smoothing),
	}
	s.pinIndex[outer] = h
	s.pins = append(s.pins, h)
	sc.pins = append(sc.pins, h)
	h.refresh(s.vp)
	h.update(s.vp)
	return h
}

// AttachPointerEffect attaches a magnetic or tilt effect to target.
// Attaching the same kind to the same target again replaces the parameters
// without adding another listener.
func (sc *Scope) AttachPointerEffect(target Target, kind PointerKind, params PointerParams) *EffectHandle {
	if !sc.usable("AttachPointerEffect", target) {
		return nil
	}
	s := sc.stage
	key := effectKey{target: target, kind: kind}
	if prev := s.effectIndex[key]; prev != nil {
		if prev.scope == sc {
			prev.params = params.withDefaults()
			return prev
		}
		s.warnf("AttachPointerEffect replaces existing %v effect in scope %q", kind, prev.scope.Name())
		prev.Detach()
	}

	h := &EffectHandle{
		stage:  s,
		scope:  sc,
		target: target,
		kind:   kind,
		params: params.withDefaults(),
	}
	s.effectIndex[key] = h
	s.effects = append(s.effects, h)
	sc.effects = append(sc.effects, h)
	return h
}

// AttachMagnetic attaches a magnetic effect with the given strength.
func (sc *Scope) AttachMagnetic(target Target, strength float64) *EffectHandle {
	return sc.AttachPointerEffect(target, PointerMagnetic, PointerParams{Strength: strength})
}

// AttachTilt attaches a tilt effect clamped to maxAngle degrees.
func (sc *Scope) AttachTilt(target Target, maxAngle float64) *EffectHandle {
	return sc.AttachPointerEffect(target, PointerTilt, PointerParams{MaxAngle: maxAngle})
}

// Animate starts a free-running tween owned by the scope. It is cancelled by
// DisposeAll like every other animation of the scope.
func (sc *Scope) Animate(target Target, spec AnimationSpec) *Tween {
	if !sc.usable("Animate", target) {
		return nil
	}
	chans := spec.resolve(target)
	return sc.stage.engine.playResolved(target, spec, chans, sc)
}

// AnimateFrom applies spec.From immediately and then animates back to the
// target's current values.
func (sc *Scope) AnimateFrom(target Target, spec AnimationSpec) *Tween {
	if !sc.usable("AnimateFrom", target) {
		return nil
	}
	chans := spec.resolve(target)
	spec.applyFrom(target)
	return sc.stage.engine.playResolved(target, spec, chans, sc)
}

// OnScroll registers fn to run after each frame that saw a scroll change.
func (sc *Scope) OnScroll(fn func(Viewport)) ListenerHandle {
	if sc == nil || sc.disposed || fn == nil {
		return ListenerHandle{}
	}
	return sc.stage.listeners.addViewport(listenScroll, sc, fn)
}

// OnResize registers fn to run after each frame that saw a viewport resize.
func (sc *Scope) OnResize(fn func(Viewport)) ListenerHandle {
	if sc == nil || sc.disposed || fn == nil {
		return ListenerHandle{}
	}
	return sc.stage.listeners.addViewport(listenResize, sc, fn)
}

// OnFrame registers fn to run at the end of every Stage.Update.
func (sc *Scope) OnFrame(fn func(dt float32)) ListenerHandle {
	if sc == nil || sc.disposed || fn == nil {
		return ListenerHandle{}
	}
	return sc.stage.listeners.addFrame(sc, fn)
}

// DisposeAll cancels every tween of the scope, unregisters its triggers,
// pins, and pointer effects (returning pointer and pin targets to rest), and
// removes its listeners. When it returns, nothing registered through the
// scope runs again. Calling it more than once is a no-op.
func (sc *Scope) DisposeAll() {
	if sc == nil || sc.disposed {
		return
	}
	sc.disposed = true
	s := sc.stage

	s.listeners.removeOwned(sc)
	for _, h := range sc.effects {
		s.removeEffect(h)
	}
	for _, h := range sc.pins {
		s.removePin(h)
	}
	for _, h := range sc.triggers {
		s.removeTrigger(h)
	}
	s.engine.cancelOwned(sc)

	sc.triggers = nil
	sc.pins = nil
	sc.effects = nil
	s.scopes = removeItem(s.scopes, sc)
	s.emit(Event{Type: EventScopeDisposed, Scope: sc.name})
}
