package motion

// Vec2 is a 2D vector used for positions, offsets, and path waypoints.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Property identifies one animatable channel on a Target.
type Property uint8

const (
	PropX           Property = iota // horizontal translation in pixels
	PropY                           // vertical translation in pixels
	PropScale                       // uniform scale (rest 1)
	PropAlpha                       // opacity in [0, 1] (rest 1)
	PropRotation                    // in-plane rotation in degrees
	PropRotationX                   // 3D rotation about the horizontal axis, degrees
	PropRotationY                   // 3D rotation about the vertical axis, degrees
	PropPerspective                 // perspective distance for 3D rotations
	PropColorR                      // background tint red (rest 1)
	PropColorG                      // background tint green (rest 1)
	PropColorB                      // background tint blue (rest 1)
	PropColorA                      // background tint alpha (rest 1)
	PropPinX                        // horizontal pin offset in pixels, added to PropX
	PropPinY                        // vertical pin offset in pixels, added to PropY

	numProperties
)

var propertyNames = [numProperties]string{
	"x", "y", "scale", "alpha", "rotation", "rotationX", "rotationY",
	"perspective", "colorR", "colorG", "colorB", "colorA", "pinX", "pinY",
}

// String returns the short name of the property.
func (p Property) String() string {
	if p < numProperties {
		return propertyNames[p]
	}
	return "unknown"
}

// Rest returns the untransformed value of the property.
func (p Property) Rest() float64 {
	switch p {
	case PropScale, PropAlpha, PropColorR, PropColorG, PropColorB, PropColorA:
		return 1
	default:
		return 0
	}
}

// Viewport is the visible window onto the document: its size and the current
// vertical scroll offset.
type Viewport struct {
	Width, Height float64
	ScrollY       float64
}

// Rect returns the viewport in document coordinates.
func (v Viewport) Rect() Rect {
	return Rect{X: 0, Y: v.ScrollY, Width: v.Width, Height: v.Height}
}

// Empty reports whether the viewport has no visible area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// TriggerMode selects how a Trigger reacts to visibility.
type TriggerMode uint8

const (
	TriggerOnce  TriggerMode = iota // fire the animation once when the threshold is crossed
	TriggerScrub                    // drive animation progress from scroll position
)

// PointerKind selects a pointer-driven effect.
type PointerKind uint8

const (
	PointerMagnetic PointerKind = iota // translate toward the pointer
	PointerTilt                        // rotate in 3D away from the pointer
)

func (k PointerKind) String() string {
	switch k {
	case PointerMagnetic:
		return "magnetic"
	case PointerTilt:
		return "tilt"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of orchestration event.
type EventType uint8

const (
	EventTriggerFired  EventType = iota // a one-shot trigger started its animation
	EventPinEnter                       // a pinned section became pinned
	EventPinRelease                     // a pinned section released its pin
	EventPointerEnter                   // the pointer entered a pointer-effect target
	EventPointerLeave                   // the pointer left a pointer-effect target
	EventScopeDisposed                  // a scope finished DisposeAll
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m TriggerMode) String() string {
	switch m {
	case TriggerOnce:
		return "once"
	case TriggerScrub:
		return "scrub"
	default:
		return "unknown"
	}
}
