package ecs

import (
	"github.com/kestrelgames/sift"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for sift lifecycle events.
// Subscribe to this in your ECS systems to receive ingestion, classification,
// landing, eviction, and click events.
var LifecycleEventType = events.NewEventType[sift.LifecycleEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Lifecycle
// events are published to LifecycleEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) sift.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event sift.LifecycleEvent) {
	LifecycleEventType.Publish(s.world, event)
}
