package sift

import (
	"math"
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// Flagged-exit motion: upward speed in px/s grows with the exit sub-progress,
// and the token is done once it clears the viewport top by exitMargin.
const (
	exitBaseSpeed = 260.0
	exitGainSpeed = 520.0
	exitMargin    = 48.0

	// scanCycle is the period, in seconds, of the scanning orbit's
	// breathing progress (scanning has no nominal duration).
	scanCycle = 2.0
)

// Engine is the lifecycle scheduler. It owns the entity store and layout and
// is the single mutation point: all state advances inside [Engine.Tick],
// driven once per display frame by the host. Ingest and Classify may arrive
// between ticks on the same goroutine.
//
// No ambient globals: construct with [NewEngine], tear down with
// [Engine.Stop].
type Engine struct {
	cfg    EngineConfig
	layout Layout
	store  *store

	// clock is the engine's monotone time in seconds. It advances by at
	// most cfg.MaxStep per tick, so frame stalls and timestamp regressions
	// degrade to slow motion, never to skipped transitions.
	clock   float64
	lastNow float64
	started bool
	stopped bool

	sink EventSink
}

// NewEngine creates an engine for a canvas of the given size. Zero-valued
// config fields fall back to defaults.
func NewEngine(cfg EngineConfig, width, height float64) *Engine {
	cfg = cfg.normalized()
	return &Engine{
		cfg:    cfg,
		layout: ComputeLayout(width, height, cfg.GardenColumns),
		store:  newStore(),
	}
}

// SetEventSink attaches an optional lifecycle event sink (see sift/ecs).
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}

// Layout returns the current zone geometry.
func (e *Engine) Layout() Layout {
	return e.layout
}

// Clock returns the engine's internal monotone time in seconds.
func (e *Engine) Clock() float64 {
	return e.clock
}

// Stats returns a value snapshot of the aggregate counters.
func (e *Engine) Stats() Stats {
	return e.store.stats()
}

// Stopped reports whether Stop has been called.
func (e *Engine) Stopped() bool {
	return e.stopped
}

// Stop halts the engine: subsequent Tick, Ingest, and Classify calls are
// no-ops and the event sink is detached. In-flight entities are abandoned
// where they are; nothing is torn down per-entity.
func (e *Engine) Stop() {
	e.stopped = true
	e.sink = nil
}

// Resize recomputes zone geometry for new canvas dimensions. Entities keep
// their existing Bezier targets and control points until their next state
// transition; a resize never teleports a token mid-flight.
func (e *Engine) Resize(width, height float64) {
	e.layout = ComputeLayout(width, height, e.cfg.GardenColumns)
}

// Ingest adds a transaction to the pipeline in the spawning state.
// A duplicate id is a silent no-op: duplicate submission is expected under
// retry-prone upstream delivery and must not disturb the live token.
func (e *Engine) Ingest(id string, amount float64, meta map[string]any) {
	if e.stopped {
		return
	}
	if e.store.get(id) != nil {
		return
	}

	l := e.layout
	start := Vec2{
		X: -40,
		Y: l.Height * (0.25 + rand.Float64()*0.4),
	}
	target := Vec2{
		X: l.ScanCenter.X + (rand.Float64()-0.5)*l.ScanRadius*0.6,
		Y: l.ScanCenter.Y + (rand.Float64()-0.5)*l.ScanRadius*0.6,
	}
	ctrl := Vec2{
		X: l.Width * (0.08 + rand.Float64()*0.08),
		Y: start.Y + (rand.Float64()-0.5)*l.Height*0.25,
	}

	t := &Txn{
		ID:         id,
		State:      StateSpawning,
		Pos:        start,
		PrevPos:    start,
		Start:      start,
		Ctrl:       ctrl,
		Target:     target,
		Size:       SizeForAmount(amount),
		Phase:      orbitPhase(id),
		StateEntry: e.clock,
		Meta:       copyMeta(meta),
	}
	e.store.insert(t)
	e.emit(EventIngested, t)

	for _, ev := range e.store.evictTerminal(e.cfg.MaxTxns) {
		e.emit(EventEvicted, ev)
	}
}

// Classify applies a verdict to a live transaction. Unknown ids, terminal
// transactions, and repeated classifications are silent no-ops: late or
// duplicate verdicts must never corrupt a completed token, and the first
// verdict always wins.
//
// A transaction that has not yet reached the scan zone is classified anyway,
// short-circuiting its spawn flight.
func (e *Engine) Classify(id string, threat bool, score float64) {
	if e.stopped {
		return
	}
	t := e.store.get(id)
	if t == nil || t.Terminal() || t.Verdict != VerdictNone {
		return
	}

	t.Score = score
	if t.Meta == nil {
		t.Meta = make(map[string]any, 1)
	}
	t.Meta["score"] = score
	t.StateEntry = e.clock
	t.Progress = 0
	t.Start = t.Pos

	if threat {
		t.Verdict = VerdictThreat
		t.State = StateFlagged
		e.store.threatCount++
	} else {
		t.Verdict = VerdictClear
		t.State = StateClearing
		e.store.clearCount++

		g := e.layout.Garden
		t.Target = Vec2{
			X: g.X + g.Width*(0.15+rand.Float64()*0.7),
			Y: g.Y + g.Height*(0.15+rand.Float64()*0.7),
		}
		t.Ctrl = Vec2{
			X: (t.Start.X + t.Target.X) / 2,
			Y: math.Min(t.Start.Y, t.Target.Y) - 80 - rand.Float64()*60,
		}
	}

	e.store.pulses = append(e.store.pulses, Pulse{
		Pos:       t.Pos,
		Verdict:   t.Verdict,
		CreatedAt: e.clock,
	})
	e.emit(EventClassified, t)
}

// Tick advances every live entity by the wall-clock timestamp now, in
// seconds. Timestamps must be non-decreasing in the normal case; a
// regression is treated as zero elapsed time for the tick, never an error.
func (e *Engine) Tick(now float64) {
	if e.stopped {
		return
	}

	if !e.started {
		e.started = true
	} else {
		dt := now - e.lastNow
		if dt < 0 {
			dt = 0
		}
		if dt > e.cfg.MaxStep {
			dt = e.cfg.MaxStep
		}
		e.clock += dt
	}
	e.lastNow = now

	for _, id := range e.store.ids {
		e.advance(e.store.txns[id])
	}

	e.store.expireEffects(e.clock, e.cfg.PulseLife, e.cfg.BurstLife)
	e.store.pruneBlooms(e.cfg.MaxBlooms)
}

// advance moves one transaction through its state machine for this tick.
// Terminal tokens are frozen: position, state, and progress never change
// again. All motion derives from absolute elapsed time within the state, so
// repeated calls with the same clock are idempotent.
func (e *Engine) advance(t *Txn) {
	if t.Terminal() {
		return
	}

	t.PrevPos = t.Pos
	elapsed := e.clock - t.StateEntry

	switch t.State {
	case StateSpawning:
		t.Progress = Clamp(elapsed/e.cfg.SpawnDur, 0, 1)
		p := float64(ease.OutCubic(float32(t.Progress), 0, 1, 1))
		t.Pos = QuadBezier(t.Start, t.Ctrl, t.Target, p)
		if t.Progress >= 1 {
			t.State = StateScanning
			t.StateEntry = e.clock
			t.Progress = 0
		}

	case StateScanning:
		// No nominal duration: progress breathes on a fixed cycle and the
		// orbit radius follows it, giving a slow in-and-out spiral.
		t.Progress = 0.5 - 0.5*math.Cos(elapsed/scanCycle*2*math.Pi)
		a := e.clock*2.5 + t.Phase
		c := e.layout.ScanCenter
		r := e.layout.ScanRadius * (0.3 + 0.7*t.Progress)
		t.Pos.X = c.X + math.Cos(a)*r
		t.Pos.Y = c.Y + math.Sin(a)*r*0.6

	case StateFlagged:
		t.Progress = Clamp(elapsed/(e.cfg.ShakeDur+e.cfg.ExitDur), 0, 1)
		if elapsed < e.cfg.ShakeDur {
			// Stationary jitter around the position held at classification.
			t.Pos.X = t.Start.X + math.Sin(e.clock*40+t.Phase)*3
			t.Pos.Y = t.Start.Y + math.Cos(e.clock*34+t.Phase)*2
		} else {
			exitElapsed := elapsed - e.cfg.ShakeDur
			p2 := Clamp(exitElapsed/e.cfg.ExitDur, 0, 1)
			t.Pos.X = t.Start.X
			t.Pos.Y = t.Start.Y - exitElapsed*(exitBaseSpeed+exitGainSpeed*p2)
			if t.Pos.Y < -exitMargin {
				t.State = StateDone
				t.Progress = 1
			}
		}

	case StateClearing:
		t.Progress = Clamp(elapsed/e.cfg.ClearDur, 0, 1)
		p := float64(ease.InOutQuad(float32(t.Progress), 0, 1, 1))
		t.Pos = QuadBezier(t.Start, t.Ctrl, t.Target, p)
		if t.Progress >= 1 {
			t.State = StateLanding
			t.StateEntry = e.clock
			t.Progress = 0
		}

	case StateLanding:
		// Position holds at the landing point while the token settles.
		t.Progress = Clamp(elapsed/e.cfg.LandDur, 0, 1)
		if t.Progress >= 1 {
			e.land(t)
		}
	}
}

// land completes a cleared transaction: plants one bloom on the next garden
// slot, emits one burst, and freezes the token. Runs exactly once per token
// because the state flips to done in the same step.
func (e *Engine) land(t *Txn) {
	slot := e.store.bloomSeq % e.layout.SlotCount()
	e.store.bloomSeq++

	label := ""
	if v, ok := t.Meta["category"].(string); ok {
		label = v
	}

	bloom := Bloom{
		Slot:      slot,
		Pos:       e.layout.SlotPosition(slot),
		CreatedAt: e.clock,
		Label:     label,
		Color:     BloomPalette[rand.IntN(len(BloomPalette))],
	}
	e.store.blooms = append(e.store.blooms, bloom)
	e.store.bursts = append(e.store.bursts, Burst{
		Pos:       bloom.Pos,
		Color:     bloom.Color,
		CreatedAt: e.clock,
	})

	t.State = StateDone
	t.Progress = 1
	e.emit(EventLanded, t)
}

// HitTest answers which live non-terminal transaction, if any, contains the
// point. First match in insertion order wins. The returned view carries a
// copy of the token's metadata.
func (e *Engine) HitTest(x, y float64) (TxnView, bool) {
	t := e.store.hitTest(x, y)
	if t == nil {
		return TxnView{}, false
	}
	e.emit(EventClicked, t)
	return txnView(t), true
}

// emit forwards a lifecycle event to the sink, if one is attached.
func (e *Engine) emit(kind EventType, t *Txn) {
	if e.sink == nil {
		return
	}
	e.sink.EmitEvent(LifecycleEvent{
		Type:    kind,
		ID:      t.ID,
		State:   t.State,
		Verdict: t.Verdict,
		Score:   t.Score,
		X:       t.Pos.X,
		Y:       t.Pos.Y,
		Meta:    copyMeta(t.Meta),
	})
}
