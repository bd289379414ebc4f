package sift

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// RGBA converts to a premultiplied color.RGBA, scaling by the extra alpha.
func (c Color) RGBA(alpha float64) color.RGBA {
	a := c.A * alpha
	return color.RGBA{
		R: uint8(c.R * a * 255),
		G: uint8(c.G * a * 255),
		B: uint8(c.B * a * 255),
		A: uint8(a * 255),
	}
}

// BloomPalette is the fixed set of colors a new bloom picks from at random.
var BloomPalette = []Color{
	{R: 0.55, G: 0.85, B: 0.45, A: 1}, // leaf green
	{R: 0.95, G: 0.75, B: 0.35, A: 1}, // marigold
	{R: 0.85, G: 0.45, B: 0.70, A: 1}, // mallow
	{R: 0.45, G: 0.70, B: 0.95, A: 1}, // cornflower
	{R: 0.95, G: 0.55, B: 0.45, A: 1}, // poppy
}

// Vec2 is a 2D point or vector. The coordinate system has its origin at the
// top-left, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// TxnState identifies a transaction token's position in its lifecycle.
// Transitions are monotonic through the state graph; StateDone is terminal.
type TxnState uint8

const (
	StateSpawning TxnState = iota // flying in from off-canvas to the scan zone
	StateScanning                 // orbiting the scan zone, awaiting a verdict
	StateFlagged                  // shaking, then ejecting off the top
	StateClearing                 // gliding toward the garden
	StateLanding                  // settling; completes by growing a bloom
	StateDone                     // terminal; never mutated again
)

// Terminal reports whether no further transition can occur from s.
func (s TxnState) Terminal() bool {
	return s == StateDone
}

func (s TxnState) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateScanning:
		return "scanning"
	case StateFlagged:
		return "flagged"
	case StateClearing:
		return "clearing"
	case StateLanding:
		return "landing"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Verdict is the classification applied to a transaction while it scans.
type Verdict uint8

const (
	VerdictNone   Verdict = iota // not yet classified
	VerdictThreat                // flagged as fraudulent
	VerdictClear                 // cleared as legitimate
)

func (v Verdict) String() string {
	switch v {
	case VerdictThreat:
		return "threat"
	case VerdictClear:
		return "clear"
	case VerdictNone:
		return "none"
	default:
		return "unknown"
	}
}

// Stats is a value snapshot of the engine's aggregate counters.
// TotalCreated, ThreatCount, and ClearCount are monotone; ActiveCount is
// derived (live non-terminal transactions) and may decrease.
type Stats struct {
	TotalCreated int
	ActiveCount  int
	ThreatCount  int
	ClearCount   int
	BloomCount   int
}

// EventType identifies a kind of lifecycle event.
type EventType uint8

const (
	EventIngested   EventType = iota // a new transaction entered the pipeline
	EventClassified                  // a verdict was applied
	EventLanded                      // a cleared transaction grew a bloom
	EventEvicted                     // a terminal transaction was reclaimed
	EventClicked                     // the pointer hit a live transaction
)

// LifecycleEvent carries lifecycle data for external sinks (see sift/ecs).
// Meta is a copy; mutating it never affects the originating transaction.
type LifecycleEvent struct {
	Type    EventType
	ID      string
	State   TxnState
	Verdict Verdict
	Score   float64
	X, Y    float64
	Meta    map[string]any
}

// EventSink receives lifecycle events from the engine.
// Set one with [Engine.SetEventSink].
type EventSink interface {
	EmitEvent(event LifecycleEvent)
}
