package sift

import (
	"hash/fnv"
	"maps"
	"math"
)

// Txn is one transaction token moving through the pipeline. All fields are
// owned by the engine's store; external callers only ever see [TxnView]
// copies. Mutated at most once per tick while non-terminal.
type Txn struct {
	ID string

	State   TxnState
	Verdict Verdict
	Score   float64 // risk score, set on classification

	Pos     Vec2
	PrevPos Vec2 // previous-frame position, for velocity-derived effects
	Start   Vec2 // Bezier start point of the active segment
	Ctrl    Vec2 // Bezier control point of the active segment
	Target  Vec2 // Bezier end point of the active segment

	// Size in pixels, derived once from the transaction amount.
	Size float64

	// Phase is the orbit phase offset, derived from hashing the ID at
	// creation so it survives identifier-format changes unmodified.
	Phase float64

	// StateEntry is the engine clock at the last state transition.
	StateEntry float64

	// Progress is the normalized position within the active state's
	// duration, recomputed every tick; always in [0, 1].
	Progress float64

	Meta map[string]any
}

// Terminal reports whether the transaction has reached its final state.
func (t *Txn) Terminal() bool {
	return t.State.Terminal()
}

// HitRadius is the pointer hit-test radius, derived from the token size.
func (t *Txn) HitRadius() float64 {
	return t.Size*0.6 + 2
}

// SizeForAmount maps a transaction amount to a token diameter in pixels.
// Logarithmic so a 100x larger amount reads as a modestly larger token.
func SizeForAmount(amount float64) float64 {
	return Clamp(math.Log10(amount/100+1)*6+6, 6, 32)
}

// orbitPhase hashes the identifier's bytes into a stable angular offset so
// every token orbits with its own phase without storing a random seed.
func orbitPhase(id string) float64 {
	h := fnv.New32a()
	h.Write([]byte(id))
	return float64(h.Sum32()%4096) * 0.5
}

// copyMeta returns a shallow copy of meta, never the original reference.
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	return maps.Clone(meta)
}

// Bloom is the growth object planted when a cleared transaction lands.
// Its stage is a pure function of age (see [Bloom.Stage]); nothing else
// about a bloom changes after creation.
type Bloom struct {
	Slot      int
	Pos       Vec2
	CreatedAt float64
	Label     string // category carried over from the originating Txn meta
	Color     Color  // picked from BloomPalette at creation
}

// Stage returns the growth stage in {0, 1, 2, 3} for the given engine clock
// and growth period. Monotonically non-decreasing as the clock advances.
func (b *Bloom) Stage(clock, period float64) int {
	if period <= 0 {
		return 3
	}
	age := clock - b.CreatedAt
	return int(Clamp(math.Floor(age/period*4), 0, 3))
}

// Pulse is a transient ring effect emitted at classification time.
type Pulse struct {
	Pos       Vec2
	Verdict   Verdict
	CreatedAt float64
}

// Burst is a transient particle-burst effect emitted when a bloom is planted.
type Burst struct {
	Pos       Vec2
	Color     Color
	CreatedAt float64
}
