// Package sift is a frame-driven animation engine for visualizing a
// transaction-screening pipeline with [Ebitengine].
//
// Transactions enter as animated tokens, orbit an inspection zone while they
// await a verdict, and then branch: flagged transactions shake and eject off
// the top of the canvas, cleared transactions glide into a garden where each
// one grows a bloom through four stages. The engine owns all entity state and
// advances it once per frame from absolute elapsed time, so variable frame
// rates never corrupt state durations.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := sift.DefaultConfig()
//	engine := sift.NewEngine(cfg.Engine, 960, 540)
//	sift.Run(engine, sift.NewVectorRenderer(), sift.RunConfig{
//		Title: "sift", Width: 960, Height: 540,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Engine.Tick], [Engine.Snapshot], and [Engine.Resize] directly.
//
// # Driving the engine
//
// Upstream events arrive through two calls, safe at any point between ticks
// on the game goroutine:
//
//	engine.Ingest("txn-81c4", 5000, map[string]any{"merchant": "acme"})
//	engine.Classify("txn-81c4", false, 0.12)
//
// Duplicate ingests and late or repeated classifications are silent no-ops;
// retry-prone upstream delivery is expected and never an error.
//
// # Rendering
//
// Each frame the engine produces an immutable [Frame] snapshot (entity views,
// zone geometry, aggregate stats) consumed by a [Renderer]. The built-in
// [VectorRenderer] draws everything with ebiten's vector package; swap in
// your own Renderer for custom visuals.
//
// Lifecycle events (ingested, classified, landed, evicted, clicked) can be
// bridged into a [Donburi] world with the adapter in sift/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package sift
