package ecs

import (
	"testing"

	"github.com/kestrelgames/sift"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []sift.LifecycleEvent
	LifecycleEventType.Subscribe(world, func(w donburi.World, e sift.LifecycleEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(sift.LifecycleEvent{
		Type:  sift.EventIngested,
		ID:    "txn-1",
		State: sift.StateSpawning,
		X:     -40,
		Y:     120,
	})

	sink.EmitEvent(sift.LifecycleEvent{
		Type:    sift.EventClassified,
		ID:      "txn-1",
		State:   sift.StateClearing,
		Verdict: sift.VerdictClear,
		Score:   0.12,
	})

	// Events are queued — process them.
	LifecycleEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != sift.EventIngested || e0.ID != "txn-1" {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.X != -40 || e0.Y != 120 {
		t.Errorf("event 0 position: (%v,%v)", e0.X, e0.Y)
	}

	e1 := received[1]
	if e1.Type != sift.EventClassified || e1.Verdict != sift.VerdictClear {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink sift.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	LifecycleEventType.Subscribe(world, func(w donburi.World, e sift.LifecycleEvent) {
		count1++
	})
	LifecycleEventType.Subscribe(world, func(w donburi.World, e sift.LifecycleEvent) {
		count2++
	})

	sink.EmitEvent(sift.LifecycleEvent{Type: sift.EventLanded})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiSink_EndToEnd(t *testing.T) {
	world := donburi.NewWorld()
	engine := sift.NewEngine(sift.EngineConfig{}, 800, 600)
	engine.SetEventSink(NewDonburiSink(world))

	var types []sift.EventType
	LifecycleEventType.Subscribe(world, func(w donburi.World, e sift.LifecycleEvent) {
		types = append(types, e.Type)
	})

	engine.Tick(0)
	engine.Ingest("txn-e2e", 2500, map[string]any{"category": "retail"})
	engine.Classify("txn-e2e", true, 0.97)
	LifecycleEventType.ProcessEvents(world)

	if len(types) != 2 {
		t.Fatalf("expected 2 events, got %d", len(types))
	}
	if types[0] != sift.EventIngested || types[1] != sift.EventClassified {
		t.Errorf("event order: %v", types)
	}
}
