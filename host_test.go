package sift

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestGameLayoutForwardsResize(t *testing.T) {
	engine := NewEngine(EngineConfig{}, 800, 600)
	game := NewGame(engine, NewVectorRenderer())

	w, h := game.Layout(1280, 720)
	if w != 1280 || h != 720 {
		t.Errorf("Layout returned (%d,%d), want passthrough", w, h)
	}
	if l := engine.Layout(); l.Width != 1280 || l.Height != 720 {
		t.Errorf("engine layout = %vx%v, want resized", l.Width, l.Height)
	}
}

func TestGameLayoutSkipsRedundantResize(t *testing.T) {
	engine := NewEngine(EngineConfig{}, 800, 600)
	game := NewGame(engine, NewVectorRenderer())

	before := engine.Layout()
	game.Layout(800, 600)
	if engine.Layout() != before {
		t.Error("same-size layout call should not change geometry")
	}
}

func TestGameUpdateTerminatesWhenStopped(t *testing.T) {
	engine := NewEngine(EngineConfig{}, 800, 600)
	game := NewGame(engine, NewVectorRenderer())

	engine.Stop()
	if err := game.Update(); err != ebiten.Termination {
		t.Errorf("Update = %v, want ebiten.Termination after Stop", err)
	}
}

func TestGameUpdateDriverRunsBeforeTick(t *testing.T) {
	engine := NewEngine(EngineConfig{}, 800, 600)
	game := NewGame(engine, NewVectorRenderer())

	game.SetDriver(func(now float64) {
		engine.Ingest("from-driver", 150, nil)
	})

	if err := game.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if engine.Stats().TotalCreated != 1 {
		t.Error("driver ingest should land in the same frame")
	}
}
