// Package ecs provides ECS adapters for sift's lifecycle event stream.
//
// The primary adapter is [NewDonburiSink], which bridges engine lifecycle
// events (ingested, classified, landed, evicted, clicked) into a [Donburi]
// world as typed events. Subscribe to [LifecycleEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
