package motion

import "reflect"

// Target is the handle the presentation layer gives the core for one visual
// element. Bounds reports the element's layout box in document coordinates,
// before any animated transform. Property and SetProperty read and write the
// animated channels.
//
// Targets are compared by identity, so implementations should be pointer
// types. A target that also implements IsDisposed() bool stops receiving
// writes once it reports true.
type Target interface {
	Bounds() Rect
	Property(p Property) float64
	SetProperty(p Property, v float64)
}

type disposable interface {
	IsDisposed() bool
}

func targetDisposed(t Target) bool {
	if d, ok := t.(disposable); ok {
		return d.IsDisposed()
	}
	return false
}

// isNil reports whether t is nil or a typed nil wrapped in the interface.
// Host targets of any nilable kind are covered, not only *Element.
func isNil(t Target) bool {
	if t == nil {
		return true
	}
	if e, ok := t.(*Element); ok {
		return e == nil
	}
	v := reflect.ValueOf(t)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// elementIDCounter is not atomic; a Stage is driven from one goroutine.
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is a ready-made Target backed by plain fields. Hosts that already
// have their own visual objects implement Target directly instead.
type Element struct {
	// Identity
	ID   uint32
	Name string

	// Layout box in document coordinates.
	X, Y, Width, Height float64

	// Metadata
	UserData any

	props    [numProperties]float64
	writes   uint64
	disposed bool
}

// NewElement creates an element with the given layout box and every
// property at rest.
func NewElement(name string, x, y, w, h float64) *Element {
	e := &Element{ID: nextElementID(), Name: name, X: x, Y: y, Width: w, Height: h}
	for p := Property(0); p < numProperties; p++ {
		e.props[p] = p.Rest()
	}
	return e
}

// Bounds returns the layout box.
func (e *Element) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Property returns the current value of p.
func (e *Element) Property(p Property) float64 {
	if p >= numProperties {
		return 0
	}
	return e.props[p]
}

// SetProperty writes v to p. Writes to a disposed element are ignored.
func (e *Element) SetProperty(p Property, v float64) {
	if e.disposed || p >= numProperties {
		return
	}
	e.props[p] = v
	e.writes++
}

// Writes returns how many property writes the element has received.
func (e *Element) Writes() uint64 {
	return e.writes
}

// AtRest reports whether every property holds its rest value.
func (e *Element) AtRest() bool {
	for p := Property(0); p < numProperties; p++ {
		if e.props[p] != p.Rest() {
			return false
		}
	}
	return true
}

// ScreenBounds returns the element's visual box in viewport coordinates:
// the layout box shifted by its translation, pin offset and the viewport
// scroll, scaled about its center.
func (e *Element) ScreenBounds(vp Viewport) Rect {
	s := e.props[PropScale]
	w := e.Width * s
	h := e.Height * s
	return Rect{
		X:      e.X + e.props[PropX] + e.props[PropPinX] + (e.Width-w)/2,
		Y:      e.Y + e.props[PropY] + e.props[PropPinY] - vp.ScrollY + (e.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

// Dispose marks the element as disposed. Tweens targeting it stop on their
// next update and further writes are ignored.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.ID = 0
	e.UserData = nil
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}
