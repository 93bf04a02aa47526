package motion

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RepeatForever makes a tween loop until it is cancelled.
const RepeatForever = -1

// Span is the start and end value of one animated property.
type Span struct {
	From, To float64
}

// TweenOptions configures timing and completion of a tween.
type TweenOptions struct {
	// Delay is the number of seconds to wait before the first frame.
	Delay float32
	// Ease is the easing curve. Nil uses DefaultEase.
	Ease ease.TweenFunc
	// Repeat is the number of extra plays after the first, or RepeatForever.
	Repeat int
	// Yoyo plays every other repetition backwards.
	Yoyo bool
	// OnComplete runs once when the final repetition ends. It does not run
	// for cancelled tweens.
	OnComplete func()
}

// AnimationSpec is a tween template that is resolved against a target's
// current values when the animation starts. To animates from the current
// value to the given value, From animates from the given value back to the
// current value. A property listed in both animates From -> To.
type AnimationSpec struct {
	To       map[Property]float64
	From     map[Property]float64
	Duration float32

	// Path, when set, moves PropX and PropY through the waypoints with a
	// Catmull-Rom curve. Curviness scales the tangents (0 gives straight
	// segments, 1 a standard Catmull-Rom curve).
	Path      []Vec2
	Curviness float64

	TweenOptions
}

// resolve captures per-property spans from the target's current values.
func (s AnimationSpec) resolve(target Target) []channel {
	var chans []channel
	for p := Property(0); p < numProperties; p++ {
		to, hasTo := s.To[p]
		from, hasFrom := s.From[p]
		switch {
		case hasTo && hasFrom:
			chans = append(chans, channel{prop: p, span: Span{From: from, To: to}})
		case hasTo:
			chans = append(chans, channel{prop: p, span: Span{From: target.Property(p), To: to}})
		case hasFrom:
			chans = append(chans, channel{prop: p, span: Span{From: from, To: target.Property(p)}})
		}
	}
	if len(s.Path) > 0 {
		chans = dropChannel(chans, PropX)
		chans = dropChannel(chans, PropY)
		chans = append(chans, channel{prop: PropX, onPath: true}, channel{prop: PropY, onPath: true})
	}
	return chans
}

// applyFrom writes the From values straight to the target so that a
// revealed element starts in its hidden state.
func (s AnimationSpec) applyFrom(target Target) {
	for p := Property(0); p < numProperties; p++ {
		if v, ok := s.From[p]; ok {
			target.SetProperty(p, v)
		}
	}
}

type channel struct {
	prop   Property
	span   Span
	onPath bool
}

func dropChannel(chans []channel, p Property) []channel {
	for i := range chans {
		if chans[i].prop == p {
			copy(chans[i:], chans[i+1:])
			return chans[:len(chans)-1]
		}
	}
	return chans
}

type tweenState uint8

const (
	tweenRunning tweenState = iota
	tweenScrubbed
	tweenDone
	tweenCancelled
)

// Tween interpolates one or more properties of a target. Tweens are created
// by an Engine (or a Scope) and advanced by Engine.Update.
type Tween struct {
	engine *Engine
	target Target
	owner  *Scope
	chans  []channel
	path   *curvePath
	curve  *gween.Tween

	duration float32
	delay    float32
	waited   float32
	elapsed  float32
	played   int
	repeat   int
	yoyo     bool

	onComplete func()
	state      tweenState
	progress   float64
	sampled    bool
}

// Target returns the tween's target.
func (t *Tween) Target() Target {
	if t == nil {
		return nil
	}
	return t.target
}

// Done reports whether the tween has completed or been cancelled.
func (t *Tween) Done() bool {
	return t == nil || t.state == tweenDone || t.state == tweenCancelled
}

// Cancelled reports whether the tween was stopped before completing.
func (t *Tween) Cancelled() bool {
	return t != nil && t.state == tweenCancelled
}

// Progress returns the last sampled linear progress of the current
// repetition in [0, 1].
func (t *Tween) Progress() float64 {
	if t == nil {
		return 0
	}
	return t.progress
}

// Animates reports whether the tween still writes p.
func (t *Tween) Animates(p Property) bool {
	if t == nil || t.Done() {
		return false
	}
	for i := range t.chans {
		if t.chans[i].prop == p {
			return true
		}
	}
	return false
}

// Cancel stops the tween. Properties keep their last sampled values and
// OnComplete does not run. Safe to call more than once.
func (t *Tween) Cancel() {
	if t.Done() {
		return
	}
	t.state = tweenCancelled
	t.release()
}

// Finish jumps to the end of the final repetition, writes the end values,
// and runs OnComplete.
func (t *Tween) Finish() {
	if t.Done() {
		return
	}
	t.sample(t.endProgress())
	t.complete()
}

// Seek writes the properties at the given linear progress and stops the
// tween from advancing on its own. Seeking to the progress that was last
// sampled does nothing. Returns true if values were written.
func (t *Tween) Seek(progress float64) bool {
	if t.Done() {
		return false
	}
	t.state = tweenScrubbed
	progress = clamp(progress, 0, 1)
	if t.sampled && progress == t.progress {
		return false
	}
	if targetDisposed(t.target) {
		t.Cancel()
		return false
	}
	t.sample(progress)
	return true
}

// advance moves the tween forward by dt seconds.
func (t *Tween) advance(dt float32) {
	if t.state != tweenRunning {
		return
	}
	if targetDisposed(t.target) {
		t.Cancel()
		return
	}

	if t.waited < t.delay {
		t.waited += dt
		if t.waited < t.delay {
			return
		}
		dt = t.waited - t.delay
		t.waited = t.delay
	}

	if t.duration <= 0 {
		t.sample(t.endProgress())
		t.complete()
		return
	}

	t.elapsed += dt
	for t.elapsed >= t.duration {
		if t.repeat != RepeatForever && t.played >= t.repeat {
			t.sample(t.endProgress())
			t.complete()
			return
		}
		t.elapsed -= t.duration
		t.played++
	}

	p := float64(t.elapsed / t.duration)
	if t.yoyo && t.played%2 == 1 {
		p = 1 - p
	}
	t.sample(p)
}

// endProgress is the linear progress at which the last repetition ends.
func (t *Tween) endProgress() float64 {
	last := t.repeat
	if last == RepeatForever {
		last = t.played
	}
	if t.yoyo && last%2 == 1 {
		return 0
	}
	return 1
}

// sample writes eased values for linear progress p.
func (t *Tween) sample(p float64) {
	t.progress = p
	t.sampled = true

	eased := p
	if t.duration > 0 {
		v, _ := t.curve.Set(float32(p) * t.duration)
		eased = float64(v)
	} else if p >= 1 {
		eased = 1
	}

	var pos Vec2
	if t.path != nil {
		pos = t.path.at(eased)
	}
	for i := range t.chans {
		c := &t.chans[i]
		var v float64
		switch {
		case c.onPath && c.prop == PropX:
			v = pos.X
		case c.onPath && c.prop == PropY:
			v = pos.Y
		default:
			v = c.span.From + (c.span.To-c.span.From)*eased
		}
		t.target.SetProperty(c.prop, v)
	}
}

func (t *Tween) complete() {
	t.state = tweenDone
	t.release()
	if t.onComplete != nil {
		fn := t.onComplete
		t.onComplete = nil
		fn()
	}
}

// release hands the tween's properties back to the engine.
func (t *Tween) release() {
	if t.engine == nil {
		return
	}
	for i := range t.chans {
		key := channelKey{target: t.target, prop: t.chans[i].prop}
		if t.engine.owners[key] == t {
			delete(t.engine.owners, key)
		}
	}
}

// drop removes p from the tween after another tween took ownership of it.
// A tween with nothing left to animate is cancelled.
func (t *Tween) drop(p Property) {
	t.chans = dropChannel(t.chans, p)
	if len(t.chans) == 0 {
		t.Cancel()
	}
}

type channelKey struct {
	target Target
	prop   Property
}

// Engine owns the running tweens and guarantees that each (target, property)
// pair is written by at most one tween at a time: starting a tween takes the
// pair away from whichever tween held it.
//
// There is no global engine; a Stage owns one and advances it once per frame.
type Engine struct {
	tweens []*Tween
	owners map[channelKey]*Tween
}

// NewEngine creates an empty engine.
func NewEngine() *Engine {
	return &Engine{owners: make(map[channelKey]*Tween)}
}

// Animate starts a tween that moves each property in spans from its From to
// its To value over duration seconds.
func (e *Engine) Animate(target Target, spans map[Property]Span, duration float32, opts TweenOptions) *Tween {
	if isNil(target) || len(spans) == 0 {
		return nil
	}
	chans := make([]channel, 0, len(spans))
	for p := Property(0); p < numProperties; p++ {
		if s, ok := spans[p]; ok {
			chans = append(chans, channel{prop: p, span: s})
		}
	}
	return e.start(target, chans, nil, duration, opts, nil, false)
}

// Play resolves spec against the target's current values and starts it.
func (e *Engine) Play(target Target, spec AnimationSpec) *Tween {
	if isNil(target) {
		return nil
	}
	return e.playResolved(target, spec, spec.resolve(target), nil)
}

func (e *Engine) playResolved(target Target, spec AnimationSpec, chans []channel, owner *Scope) *Tween {
	if len(chans) == 0 {
		return nil
	}
	var path *curvePath
	if len(spec.Path) > 0 {
		path = newCurvePath(spec.Path, spec.Curviness)
	}
	return e.start(target, chans, path, spec.Duration, spec.TweenOptions, owner, false)
}

// scrub creates a tween that only moves when seeked.
func (e *Engine) scrub(target Target, spec AnimationSpec, chans []channel, owner *Scope) *Tween {
	if len(chans) == 0 {
		return nil
	}
	var path *curvePath
	if len(spec.Path) > 0 {
		path = newCurvePath(spec.Path, spec.Curviness)
	}
	opts := spec.TweenOptions
	opts.Delay = 0
	opts.Repeat = 0
	opts.Yoyo = false
	return e.start(target, chans, path, spec.Duration, opts, owner, true)
}

func (e *Engine) start(target Target, chans []channel, path *curvePath, duration float32, opts TweenOptions, owner *Scope, scrubbed bool) *Tween {
	fn := opts.Ease
	if fn == nil {
		fn = DefaultEase
	}
	d := duration
	if d <= 0 {
		d = 1 // gween needs a positive span; sample() bypasses it for zero durations
	}
	t := &Tween{
		engine:     e,
		target:     target,
		owner:      owner,
		chans:      chans,
		path:       path,
		curve:      gween.New(0, 1, d, fn),
		duration:   duration,
		delay:      opts.Delay,
		repeat:     opts.Repeat,
		yoyo:       opts.Yoyo,
		onComplete: opts.OnComplete,
	}
	if t.repeat < RepeatForever {
		t.repeat = 0
	}
	if scrubbed {
		t.state = tweenScrubbed
		if t.duration <= 0 {
			t.duration = 1
		}
	}

	for i := range chans {
		key := channelKey{target: target, prop: chans[i].prop}
		if prev := e.owners[key]; prev != nil && prev != t {
			prev.drop(chans[i].prop)
		}
		e.owners[key] = t
	}
	if !scrubbed {
		e.tweens = append(e.tweens, t)
	}
	return t
}

// Update advances every running tween by dt seconds and drops finished ones.
// Tweens started during the update (for example from OnComplete) first
// advance on the next call.
func (e *Engine) Update(dt float32) {
	n := len(e.tweens)
	for i := 0; i < n; i++ {
		e.tweens[i].advance(dt)
	}

	j := 0
	for _, t := range e.tweens {
		if t.state == tweenRunning {
			e.tweens[j] = t
			j++
		}
	}
	for k := j; k < len(e.tweens); k++ {
		e.tweens[k] = nil
	}
	e.tweens = e.tweens[:j]
}

// Active returns the number of running tweens.
func (e *Engine) Active() int {
	n := 0
	for _, t := range e.tweens {
		if t.state == tweenRunning {
			n++
		}
	}
	return n
}

// Owner returns the tween currently writing (target, p), or nil.
func (e *Engine) Owner(target Target, p Property) *Tween {
	if isNil(target) {
		return nil
	}
	return e.owners[channelKey{target: target, prop: p}]
}

// CancelTarget cancels every tween writing any property of target.
func (e *Engine) CancelTarget(target Target) {
	if isNil(target) {
		return
	}
	for p := Property(0); p < numProperties; p++ {
		if t := e.owners[channelKey{target: target, prop: p}]; t != nil {
			t.Cancel()
		}
	}
}

// cancelOwned cancels every tween created on behalf of owner.
func (e *Engine) cancelOwned(owner *Scope) {
	for _, t := range e.tweens {
		if t.owner == owner {
			t.Cancel()
		}
	}
	for _, t := range e.owners {
		if t.owner == owner {
			t.Cancel()
		}
	}
}
