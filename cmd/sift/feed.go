package main

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/kestrelgames/sift"
)

var categories = []string{"retail", "travel", "gaming", "groceries", "utilities", "transfers"}

// pendingVerdict is a classification scheduled for a future frame, modeling
// the upstream scoring service's decision latency.
type pendingVerdict struct {
	id     string
	due    float64
	threat bool
	score  float64
}

// feed simulates the upstream transaction stream. Its step method runs as
// the game's driver callback, so every Ingest and Classify lands on the game
// goroutine between ticks.
type feed struct {
	engine *sift.Engine
	cfg    sift.FeedConfig
	rng    *rand.Rand

	accum   float64
	lastNow float64
	started bool
	pending []pendingVerdict
}

func newFeed(engine *sift.Engine, cfg sift.FeedConfig) *feed {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &feed{
		engine: engine,
		cfg:    cfg,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// step spawns transactions at the configured rate and delivers verdicts that
// have come due.
func (f *feed) step(now float64) {
	if !f.started {
		f.started = true
		f.lastNow = now
		return
	}
	dt := now - f.lastNow
	f.lastNow = now
	if dt < 0 {
		dt = 0
	}

	f.accum += f.cfg.Rate * dt
	for f.accum >= 1 {
		f.accum--
		f.spawn(now)
	}

	kept := f.pending[:0]
	for _, v := range f.pending {
		if now >= v.due {
			f.engine.Classify(v.id, v.threat, v.score)
			continue
		}
		kept = append(kept, v)
	}
	f.pending = kept
}

func (f *feed) spawn(now float64) {
	id := uuid.NewString()

	// Log-normal amounts: lots of small transactions, occasional whales.
	amount := math.Exp(f.rng.NormFloat64()*1.3 + 5)

	f.engine.Ingest(id, amount, map[string]any{
		"category": categories[f.rng.IntN(len(categories))],
		"amount":   amount,
	})

	threat := f.rng.Float64() < f.cfg.ThreatRatio
	score := f.rng.Float64() * 0.3
	if threat {
		score = 0.7 + f.rng.Float64()*0.3
	}
	dwell := f.cfg.MinDwell + f.rng.Float64()*(f.cfg.MaxDwell-f.cfg.MinDwell)
	f.pending = append(f.pending, pendingVerdict{
		id:     id,
		due:    now + dwell,
		threat: threat,
		score:  score,
	})
}
