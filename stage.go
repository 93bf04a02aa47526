package motion

import (
	"math"
	"time"
)

// StageConfig holds the initial viewport and diagnostics settings for
// NewStage.
type StageConfig struct {
	// Width and Height are the initial viewport size in pixels.
	Width, Height float64
	// ScrollY is the initial scroll offset.
	ScrollY float64
	// Debug enables warnings and per-frame stats on stderr.
	Debug bool
}

// Stage is the top-level object that owns the viewport and pointer samples,
// the tween engine, the registry of triggers, pins, and pointer effects, and
// the listeners added by scopes.
//
// A Stage is single-threaded: the host calls the input methods and Update
// from its one update loop.
type Stage struct {
	vp     Viewport
	engine *Engine
	sink   EventSink
	debug  bool

	scopes []*Scope

	// Registry, keyed by target identity. The slices keep registration order
	// for deterministic evaluation.
	triggers     []*TriggerHandle
	triggerIndex map[triggerKey]*TriggerHandle
	pins         []*PinHandle
	pinIndex     map[Target]*PinHandle
	effects      []*EffectHandle
	effectIndex  map[effectKey]*EffectHandle

	listeners listenerRegistry

	// Latest input samples; newer samples overwrite older ones.
	pointer     pointerSample
	scrollDirty bool
	resizeDirty bool

	injectQueue []syntheticInput
	script      *ScriptRunner
	frame       uint64

	triggerBuf []*TriggerHandle
	pinBuf     []*PinHandle
	effectBuf  []*EffectHandle
}

// NewStage creates a stage with the given viewport.
func NewStage(cfg StageConfig) *Stage {
	s := &Stage{
		vp:           Viewport{Width: cfg.Width, Height: cfg.Height, ScrollY: cfg.ScrollY},
		engine:       NewEngine(),
		triggerIndex: make(map[triggerKey]*TriggerHandle),
		pinIndex:     make(map[Target]*PinHandle),
		effectIndex:  make(map[effectKey]*EffectHandle),
	}
	s.SetDebugMode(cfg.Debug)
	return s
}

// BeginView creates a scope for one view. Every registration made through
// the scope is released by its DisposeAll.
func (s *Stage) BeginView(name string) *Scope {
	sc := &Scope{stage: s, name: name}
	s.scopes = append(s.scopes, sc)
	return sc
}

// Scopes returns the scopes that have not been disposed. The returned slice
// MUST NOT be mutated.
func (s *Stage) Scopes() []*Scope {
	return s.scopes
}

// Engine returns the stage's tween engine.
func (s *Stage) Engine() *Engine {
	return s.engine
}

// Viewport returns the current viewport sample.
func (s *Stage) Viewport() Viewport {
	return s.vp
}

// Frame returns the number of completed Update calls.
func (s *Stage) Frame() uint64 {
	return s.frame
}

// SetEventSink sets the optional event bridge.
func (s *Stage) SetEventSink(sink EventSink) {
	s.sink = sink
}

// --- Input ---

// Scroll records the viewport's vertical scroll offset. Triggers, pins, and
// pointer hover are re-evaluated on the next Update.
func (s *Stage) Scroll(y float64) {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return
	}
	if y == s.vp.ScrollY {
		return
	}
	s.vp.ScrollY = y
	s.scrollDirty = true
}

// Resize records a new viewport size. Geometry is refreshed on the next
// Update, or immediately by OnViewportChange.
func (s *Stage) Resize(w, h float64) {
	if math.IsNaN(w) || math.IsNaN(h) {
		return
	}
	w = max(w, 0)
	h = max(h, 0)
	if w == s.vp.Width && h == s.vp.Height {
		return
	}
	s.vp.Width = w
	s.vp.Height = h
	s.resizeDirty = true
}

// PointerMove records the pointer position in viewport coordinates.
func (s *Stage) PointerMove(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	s.pointer = pointerSample{x: x, y: y, inside: true, dirty: true}
}

// PointerLeave records that the pointer left the viewport.
func (s *Stage) PointerLeave() {
	s.pointer.inside = false
	s.pointer.dirty = true
}

// OnViewportChange recomputes every geometry-dependent registration right
// away: pin distances and bands, trigger visibility, and pointer hover. Hosts
// call it on window resize and when late-loading assets change layout.
func (s *Stage) OnViewportChange() {
	s.evaluateTriggers()
	s.refreshPins()
	s.updatePins()
	s.pointer.dirty = true
	s.processPointer()
}

// --- Frame ---

// Update runs one frame: scripted and injected input, then trigger
// evaluation, pin mapping, pointer effects, listeners, and finally the tween
// engine advanced by dt seconds.
func (s *Stage) Update(dt float32) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.script != nil {
		s.script.step(s)
	}
	s.processInjectedInput()

	scrolled := s.scrollDirty
	resized := s.resizeDirty
	s.scrollDirty = false
	s.resizeDirty = false

	if scrolled || resized {
		s.evaluateTriggers()
	}
	s.stepTriggers(dt)

	if resized {
		s.refreshPins()
	}
	if scrolled || resized {
		s.updatePins()
		s.pointer.dirty = true
	}
	s.stepPins(dt)

	s.processPointer()

	if resized {
		s.listeners.dispatchViewport(s.listeners.resize, s.vp)
	}
	if scrolled {
		s.listeners.dispatchViewport(s.listeners.scroll, s.vp)
	}

	s.engine.Update(dt)
	s.listeners.dispatchFrame(dt)
	s.frame++

	if s.debug {
		s.debugLog(frameStats{
			passTime:  time.Since(t0),
			tweens:    s.engine.Active(),
			triggers:  len(s.triggers),
			pins:      len(s.pins),
			effects:   len(s.effects),
			listeners: s.listeners.count(),
		})
	}
}

func (s *Stage) evaluateTriggers() {
	s.triggerBuf = append(s.triggerBuf[:0], s.triggers...)
	for _, h := range s.triggerBuf {
		h.evaluate(s.vp)
	}
	clear(s.triggerBuf)
}

func (s *Stage) stepTriggers(dt float32) {
	s.triggerBuf = append(s.triggerBuf[:0], s.triggers...)
	for _, h := range s.triggerBuf {
		h.step(dt)
	}
	clear(s.triggerBuf)
}

func (s *Stage) refreshPins() {
	s.pinBuf = append(s.pinBuf[:0], s.pins...)
	for _, h := range s.pinBuf {
		if !h.removed {
			h.refresh(s.vp)
		}
	}
	clear(s.pinBuf)
}

func (s *Stage) updatePins() {
	s.pinBuf = append(s.pinBuf[:0], s.pins...)
	for _, h := range s.pinBuf {
		h.update(s.vp)
	}
	clear(s.pinBuf)
}

func (s *Stage) stepPins(dt float32) {
	s.pinBuf = append(s.pinBuf[:0], s.pins...)
	for _, h := range s.pinBuf {
		h.step(dt)
	}
	clear(s.pinBuf)
}

// processPointer applies the latest pointer sample to every effect. Only the
// most recent sample is used; there is no backlog.
func (s *Stage) processPointer() {
	if !s.pointer.dirty {
		return
	}
	ps := s.pointer
	s.pointer.dirty = false
	s.effectBuf = append(s.effectBuf[:0], s.effects...)
	for _, h := range s.effectBuf {
		h.handle(ps, s.vp)
	}
	clear(s.effectBuf)
}

// --- Registry removal ---

func (s *Stage) removeTrigger(h *TriggerHandle) {
	if h.removed {
		return
	}
	h.teardown()
	s.triggers = removeItem(s.triggers, h)
	key := triggerKey{target: h.target, mode: h.trig.Mode}
	if s.triggerIndex[key] == h {
		delete(s.triggerIndex, key)
	}
}

func (s *Stage) removePin(h *PinHandle) {
	if h.removed {
		return
	}
	h.teardown()
	s.pins = removeItem(s.pins, h)
	if s.pinIndex[h.outer] == h {
		delete(s.pinIndex, h.outer)
	}
}

func (s *Stage) removeEffect(h *EffectHandle) {
	if h.removed {
		return
	}
	h.teardown()
	s.effects = removeItem(s.effects, h)
	key := effectKey{target: h.target, kind: h.kind}
	if s.effectIndex[key] == h {
		delete(s.effectIndex, key)
	}
}
