package motion

// EventSink receives orchestration events. Set one on a Stage to forward
// trigger, pin, pointer, and scope lifecycle events to another system, for
// example an ECS world (see the ecs subpackage).
type EventSink interface {
	EmitEvent(event Event)
}

// Event describes something the orchestration layer did.
type Event struct {
	Type EventType
	// Scope is the name of the scope that owns the registration.
	Scope string
	// Target is the element involved. Nil for EventScopeDisposed.
	Target Target
	// Kind is the pointer effect kind (EventPointerEnter, EventPointerLeave).
	Kind PointerKind
	// PointerX and PointerY are viewport coordinates of the pointer sample
	// that caused a pointer event.
	PointerX, PointerY float64
	// ScrollY is the scroll offset when the event was emitted.
	ScrollY float64
	// Visibility is the visible fraction of the target (EventTriggerFired).
	Visibility float64
	// Offset is the pinned section's horizontal offset (pin events).
	Offset float64
}

func (s *Stage) emit(e Event) {
	if s.sink == nil {
		return
	}
	e.ScrollY = s.vp.ScrollY
	s.sink.EmitEvent(e)
}
