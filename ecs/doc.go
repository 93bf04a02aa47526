// Package ecs provides ECS adapters for motion's orchestration events.
//
// The primary adapter is [NewDonburiSink], which bridges motion events
// (trigger fired, pin enter/release, pointer enter/leave, scope disposed)
// into a [Donburi] world as typed events. Subscribe to [MotionEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	stage.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
