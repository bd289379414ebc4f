package sift

// TxnView is a read-only copy of one transaction token.
type TxnView struct {
	ID       string
	State    TxnState
	Verdict  Verdict
	Score    float64
	Pos      Vec2
	PrevPos  Vec2
	Size     float64
	Progress float64
	Meta     map[string]any
}

// BloomView is a read-only copy of one garden bloom, with its stage
// resolved against the frame's clock.
type BloomView struct {
	Slot  int
	Stage int
	Pos   Vec2
	Label string
	Color Color
	Age   float64
}

// PulseView is a read-only copy of one classification pulse.
type PulseView struct {
	Pos     Vec2
	Verdict Verdict
	Age     float64
	Life    float64
}

// BurstView is a read-only copy of one landing burst.
type BurstView struct {
	Pos   Vec2
	Color Color
	Age   float64
	Life  float64
}

// Frame is the immutable per-tick view handed to the render adapter.
// Terminal transactions are included until evicted; renderers are expected
// to skip drawing done tokens. Nothing in a Frame aliases engine state.
type Frame struct {
	Clock  float64
	Layout Layout
	Txns   []TxnView
	Blooms []BloomView
	Pulses []PulseView
	Bursts []BurstView
	Stats  Stats
}

// Snapshot builds a Frame from the engine's current state. Metadata maps are
// copied, never shared; mutating a Frame has no effect on the engine.
func (e *Engine) Snapshot() Frame {
	s := e.store

	f := Frame{
		Clock:  e.clock,
		Layout: e.layout,
		Txns:   make([]TxnView, 0, len(s.ids)),
		Blooms: make([]BloomView, 0, len(s.blooms)),
		Pulses: make([]PulseView, 0, len(s.pulses)),
		Bursts: make([]BurstView, 0, len(s.bursts)),
		Stats:  s.stats(),
	}

	for _, id := range s.ids {
		f.Txns = append(f.Txns, txnView(s.txns[id]))
	}
	for i := range s.blooms {
		b := &s.blooms[i]
		f.Blooms = append(f.Blooms, BloomView{
			Slot:  b.Slot,
			Stage: b.Stage(e.clock, e.cfg.GrowthPeriod),
			Pos:   b.Pos,
			Label: b.Label,
			Color: b.Color,
			Age:   e.clock - b.CreatedAt,
		})
	}
	for _, p := range s.pulses {
		f.Pulses = append(f.Pulses, PulseView{
			Pos:     p.Pos,
			Verdict: p.Verdict,
			Age:     e.clock - p.CreatedAt,
			Life:    e.cfg.PulseLife,
		})
	}
	for _, b := range s.bursts {
		f.Bursts = append(f.Bursts, BurstView{
			Pos:   b.Pos,
			Color: b.Color,
			Age:   e.clock - b.CreatedAt,
			Life:  e.cfg.BurstLife,
		})
	}
	return f
}

// txnView copies a transaction into its external view form.
func txnView(t *Txn) TxnView {
	return TxnView{
		ID:       t.ID,
		State:    t.State,
		Verdict:  t.Verdict,
		Score:    t.Score,
		Pos:      t.Pos,
		PrevPos:  t.PrevPos,
		Size:     t.Size,
		Progress: t.Progress,
		Meta:     copyMeta(t.Meta),
	}
}
