package sift

// store owns the live entity collections. Transactions are kept in insertion
// order (ids slice) with an id index map alongside; insertion order is the
// explicit tie-break policy for hit testing and the eviction scan order.
//
// All access is single-threaded (one mutation point per tick), so there is
// no locking, only ordering discipline.
type store struct {
	ids  []string
	txns map[string]*Txn

	blooms []Bloom
	pulses []Pulse
	bursts []Burst

	// Monotone counters. activeCount is derived, not stored.
	totalCreated int
	threatCount  int
	clearCount   int

	// bloomSeq assigns garden slots, cycling through the grid.
	bloomSeq int
}

func newStore() *store {
	return &store{txns: make(map[string]*Txn)}
}

// insert adds t if its id is not already present. Reports whether the
// transaction was added; duplicate ids are rejected without side effects.
func (s *store) insert(t *Txn) bool {
	if _, ok := s.txns[t.ID]; ok {
		return false
	}
	s.ids = append(s.ids, t.ID)
	s.txns[t.ID] = t
	s.totalCreated++
	return true
}

// get returns the live transaction for id, or nil.
func (s *store) get(id string) *Txn {
	return s.txns[id]
}

func (s *store) len() int {
	return len(s.ids)
}

// activeCount counts live non-terminal transactions.
func (s *store) activeCount() int {
	n := 0
	for _, id := range s.ids {
		if !s.txns[id].Terminal() {
			n++
		}
	}
	return n
}

// evictTerminal removes terminal transactions in insertion order until the
// live count is at or below ceiling. Non-terminal transactions are never
// evicted, so the count may remain above the ceiling when all are live.
// Returns the evicted transactions for event emission.
func (s *store) evictTerminal(ceiling int) []*Txn {
	if len(s.ids) <= ceiling {
		return nil
	}
	var evicted []*Txn
	kept := s.ids[:0]
	for i, id := range s.ids {
		t := s.txns[id]
		if len(s.ids)-i+len(kept) > ceiling && t.Terminal() {
			evicted = append(evicted, t)
			delete(s.txns, id)
			continue
		}
		kept = append(kept, id)
	}
	s.ids = kept
	return evicted
}

// pruneBlooms evicts the oldest blooms (strict FIFO) once over ceiling.
func (s *store) pruneBlooms(ceiling int) {
	if ceiling < 0 || len(s.blooms) <= ceiling {
		return
	}
	drop := len(s.blooms) - ceiling
	s.blooms = append(s.blooms[:0], s.blooms[drop:]...)
}

// expireEffects drops pulses and bursts older than their lifetimes.
func (s *store) expireEffects(clock, pulseLife, burstLife float64) {
	kept := s.pulses[:0]
	for _, p := range s.pulses {
		if clock-p.CreatedAt < pulseLife {
			kept = append(kept, p)
		}
	}
	s.pulses = kept

	keptB := s.bursts[:0]
	for _, b := range s.bursts {
		if clock-b.CreatedAt < burstLife {
			keptB = append(keptB, b)
		}
	}
	s.bursts = keptB
}

// hitTest returns the first live non-terminal transaction, in insertion
// order, whose hit circle contains (x, y). Returns nil on a miss.
func (s *store) hitTest(x, y float64) *Txn {
	for _, id := range s.ids {
		t := s.txns[id]
		if t.Terminal() {
			continue
		}
		dx := x - t.Pos.X
		dy := y - t.Pos.Y
		r := t.HitRadius()
		if dx*dx+dy*dy <= r*r {
			return t
		}
	}
	return nil
}

// stats builds a value snapshot of the aggregate counters.
func (s *store) stats() Stats {
	return Stats{
		TotalCreated: s.totalCreated,
		ActiveCount:  s.activeCount(),
		ThreatCount:  s.threatCount,
		ClearCount:   s.clearCount,
		BloomCount:   len(s.blooms),
	}
}
