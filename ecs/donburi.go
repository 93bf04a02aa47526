package ecs

import (
	"github.com/phanxgames/motion"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MotionEventType is the Donburi event type for motion events.
// Subscribe to this in your ECS systems to receive trigger, pin, pointer,
// and scope events.
var MotionEventType = events.NewEventType[motion.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are published to MotionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) motion.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event motion.Event) {
	MotionEventType.Publish(s.world, event)
}
