package motion

import "github.com/tanema/gween/ease"

// Pointer effect defaults, matching the portfolio's hover behaviour.
const (
	DefaultMagneticStrength = 0.2
	DefaultMagneticLimit    = 40.0
	DefaultTiltDivisor      = 20.0
	DefaultTiltMaxAngle     = 15.0
	DefaultPerspective      = 1000.0
	DefaultFollowDuration   = 0.5
	DefaultRestDuration     = 0.7
)

// PointerParams configures a pointer effect. Zero fields take the package
// defaults.
type PointerParams struct {
	// Strength scales the pointer's distance from the target center into a
	// magnetic offset.
	Strength float64
	// MaxOffset clamps the magnetic offset on each axis, in pixels.
	MaxOffset float64
	// Divisor scales the pointer's distance from center into tilt degrees;
	// larger values give a subtler tilt.
	Divisor float64
	// MaxAngle clamps both tilt angles, in degrees.
	MaxAngle float64
	// Perspective is written to PropPerspective while tilting.
	Perspective float64

	FollowDuration float32
	FollowEase     ease.TweenFunc
	RestDuration   float32
	RestEase       ease.TweenFunc
}

func (p PointerParams) withDefaults() PointerParams {
	if p.Strength == 0 {
		p.Strength = DefaultMagneticStrength
	}
	if p.MaxOffset <= 0 {
		p.MaxOffset = DefaultMagneticLimit
	}
	if p.Divisor == 0 {
		p.Divisor = DefaultTiltDivisor
	}
	if p.MaxAngle <= 0 {
		p.MaxAngle = DefaultTiltMaxAngle
	}
	if p.Perspective <= 0 {
		p.Perspective = DefaultPerspective
	}
	if p.FollowDuration <= 0 {
		p.FollowDuration = DefaultFollowDuration
	}
	if p.FollowEase == nil {
		p.FollowEase = ease.OutCubic
	}
	if p.RestDuration <= 0 {
		p.RestDuration = DefaultRestDuration
	}
	if p.RestEase == nil {
		p.RestEase = ease.OutElastic
	}
	return p
}

// pointerSample is the latest pointer position in viewport coordinates.
type pointerSample struct {
	x, y   float64
	inside bool
	dirty  bool
}

type effectKey struct {
	target Target
	kind   PointerKind
}

// EffectHandle is a registered pointer effect.
type EffectHandle struct {
	stage  *Stage
	scope  *Scope
	target Target
	kind   PointerKind
	params PointerParams

	hovered bool
	follow  *Tween
	rest    *Tween
	removed bool
}

// Target returns the effect's target.
func (h *EffectHandle) Target() Target {
	if h == nil {
		return nil
	}
	return h.target
}

// Kind returns the effect kind.
func (h *EffectHandle) Kind() PointerKind {
	if h == nil {
		return PointerMagnetic
	}
	return h.kind
}

// Hovered reports whether the pointer is over the target.
func (h *EffectHandle) Hovered() bool {
	return h != nil && h.hovered
}

// Resting reports whether a return-to-rest tween is in flight.
func (h *EffectHandle) Resting() bool {
	return h != nil && h.rest != nil && !h.rest.Done()
}

// Active reports whether the effect is still attached.
func (h *EffectHandle) Active() bool {
	return h != nil && !h.removed
}

// Detach removes the effect and snaps the target back to rest. Safe to call
// more than once.
func (h *EffectHandle) Detach() {
	if h == nil || h.removed {
		return
	}
	h.stage.removeEffect(h)
	if h.scope != nil {
		h.scope.effects = removeItem(h.scope.effects, h)
	}
}

func (h *EffectHandle) props() []Property {
	if h.kind == PointerTilt {
		return tiltProps
	}
	return magneticProps
}

var (
	magneticProps = []Property{PropX, PropY}
	tiltProps     = []Property{PropRotationX, PropRotationY, PropPerspective}
)

func (h *EffectHandle) teardown() {
	h.removed = true
	h.hovered = false
	h.follow.Cancel()
	h.rest.Cancel()
	h.follow, h.rest = nil, nil
	if targetDisposed(h.target) {
		return
	}
	for _, p := range h.props() {
		if t := h.stage.engine.Owner(h.target, p); t != nil {
			t.Cancel()
		}
		h.target.SetProperty(p, p.Rest())
	}
}

// screenBox returns the target's layout box in viewport coordinates.
func (h *EffectHandle) screenBox(vp Viewport) Rect {
	b := h.target.Bounds()
	b.Y -= vp.ScrollY
	return b
}

// handle reacts to the latest pointer sample.
func (h *EffectHandle) handle(ps pointerSample, vp Viewport) {
	if h.removed {
		return
	}
	box := h.screenBox(vp)
	over := ps.inside && !box.Empty() && box.Contains(ps.x, ps.y)

	if !over {
		if h.hovered {
			h.hovered = false
			h.stage.emit(Event{Type: EventPointerLeave, Scope: h.scope.Name(), Target: h.target,
				Kind: h.kind, PointerX: ps.x, PointerY: ps.y})
			if !h.removed {
				h.toRest()
			}
		}
		return
	}

	if !h.hovered {
		h.hovered = true
		h.stage.emit(Event{Type: EventPointerEnter, Scope: h.scope.Name(), Target: h.target,
			Kind: h.kind, PointerX: ps.x, PointerY: ps.y})
		if h.removed {
			return
		}
	}
	h.followPointer(ps.x, ps.y, box)
}

// followPointer starts a short tween toward the offset for the pointer at
// (px, py), cancelling any return-to-rest tween first.
func (h *EffectHandle) followPointer(px, py float64, box Rect) {
	h.rest.Cancel()
	h.rest = nil

	c := box.Center()
	var spans map[Property]Span
	switch h.kind {
	case PointerTilt:
		rx, ry := TiltAngles(px, py, c, h.params.Divisor, h.params.MaxAngle)
		persp := h.params.Perspective
		spans = map[Property]Span{
			PropRotationX:   {From: h.target.Property(PropRotationX), To: rx},
			PropRotationY:   {From: h.target.Property(PropRotationY), To: ry},
			PropPerspective: {From: persp, To: persp},
		}
	default:
		dx, dy := MagneticOffset(px, py, c, h.params.Strength, h.params.MaxOffset)
		spans = map[Property]Span{
			PropX: {From: h.target.Property(PropX), To: dx},
			PropY: {From: h.target.Property(PropY), To: dy},
		}
	}
	h.follow = h.stage.engine.Animate(h.target, spans, h.params.FollowDuration, TweenOptions{Ease: h.params.FollowEase})
	h.follow.owner = h.scope
}

// toRest starts the return-to-rest tween. Any previous one is cancelled so
// that at most one is in flight.
func (h *EffectHandle) toRest() {
	h.follow.Cancel()
	h.follow = nil
	h.rest.Cancel()

	var spans map[Property]Span
	switch h.kind {
	case PointerTilt:
		spans = map[Property]Span{
			PropRotationX: {From: h.target.Property(PropRotationX), To: 0},
			PropRotationY: {From: h.target.Property(PropRotationY), To: 0},
		}
	default:
		spans = map[Property]Span{
			PropX: {From: h.target.Property(PropX), To: 0},
			PropY: {From: h.target.Property(PropY), To: 0},
		}
	}
	h.rest = h.stage.engine.Animate(h.target, spans, h.params.RestDuration, TweenOptions{Ease: h.params.RestEase})
	h.rest.owner = h.scope
}

// MagneticOffset returns the translation that pulls a target centered at c
// toward a pointer at (px, py): the distance from center scaled by strength,
// clamped to ±limit on each axis.
func MagneticOffset(px, py float64, c Vec2, strength, limit float64) (dx, dy float64) {
	dx = (px - c.X) * strength
	dy = (py - c.Y) * strength
	if limit > 0 {
		dx = clamp(dx, -limit, limit)
		dy = clamp(dy, -limit, limit)
	}
	return dx, dy
}

// TiltAngles returns the rotations (degrees) for a pointer at (px, py) over
// a target centered at c. The top edge tilts away when the pointer is below
// center; divisor controls sensitivity and maxAngle clamps both angles.
func TiltAngles(px, py float64, c Vec2, divisor, maxAngle float64) (rotX, rotY float64) {
	if divisor == 0 {
		return 0, 0
	}
	rotX = (py - c.Y) / divisor
	rotY = (c.X - px) / divisor
	if maxAngle > 0 {
		rotX = clamp(rotX, -maxAngle, maxAngle)
		rotY = clamp(rotY, -maxAngle, maxAngle)
	}
	return rotX, rotY
}
