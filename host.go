package sift

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RunConfig controls the window created by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	ShowStats bool // overlay FPS and engine counters
}

// Game is the host: it owns the frame clock, forwards resize notifications,
// performs pointer hit testing, and hands each frame's snapshot to the
// renderer. It implements [ebiten.Game].
type Game struct {
	engine   *Engine
	renderer Renderer

	start     time.Time
	driver    func(now float64)
	onClick   func(TxnView)
	showStats bool

	highlight *clickHighlight
}

// clickHighlight is a decorative fading ring at the last clicked token.
type clickHighlight struct {
	pos   Vec2
	size  float64
	fade  *gween.Tween
	alpha float64
}

// NewGame wraps an engine and renderer into an ebiten game.
func NewGame(engine *Engine, renderer Renderer) *Game {
	return &Game{engine: engine, renderer: renderer}
}

// SetDriver installs a callback invoked at the start of every Update, before
// the engine tick, with the current frame timestamp. This is where upstream
// feeds call Ingest and Classify so all mutation stays on the game goroutine.
func (g *Game) SetDriver(fn func(now float64)) {
	g.driver = fn
}

// SetClickHandler installs a callback receiving a copied view of the token
// under a pointer click. The engine is never exposed through the view.
func (g *Game) SetClickHandler(fn func(TxnView)) {
	g.onClick = fn
}

// SetShowStats toggles the FPS and counter overlay.
func (g *Game) SetShowStats(show bool) {
	g.showStats = show
}

// Update runs once per frame: driver callbacks, the engine tick, and pointer
// handling, in that order. Returns [ebiten.Termination] once the engine is
// stopped.
func (g *Game) Update() error {
	if g.engine.Stopped() {
		return ebiten.Termination
	}

	if g.start.IsZero() {
		g.start = time.Now()
	}
	now := time.Since(g.start).Seconds()

	if g.driver != nil {
		g.driver(now)
	}
	g.engine.Tick(now)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if view, ok := g.engine.HitTest(float64(x), float64(y)); ok {
			if g.onClick != nil {
				g.onClick(view)
			}
			g.highlight = &clickHighlight{
				pos:  view.Pos,
				size: view.Size,
				fade: gween.New(0.9, 0, 0.45, ease.Linear),
			}
		}
	}

	if g.highlight != nil {
		dt := float32(1.0 / float64(ebiten.TPS()))
		v, finished := g.highlight.fade.Update(dt)
		g.highlight.alpha = float64(v)
		if finished {
			g.highlight = nil
		}
	}

	return nil
}

// Draw renders the current snapshot plus host-level decorations.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.engine.Snapshot())

	if h := g.highlight; h != nil {
		vector.StrokeCircle(screen, float32(h.pos.X), float32(h.pos.Y),
			float32(h.size/2+6), 2, neutralColor.RGBA(h.alpha), true)
	}

	if g.showStats {
		s := g.engine.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS %.0f  TPS %.0f\ntotal %d  active %d\nthreat %d  clear %d  blooms %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			s.TotalCreated, s.ActiveCount, s.ThreatCount, s.ClearCount, s.BloomCount))
	}
}

// Layout reports the logical screen size and pushes resizes into the engine.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	l := g.engine.Layout()
	if float64(outsideWidth) != l.Width || float64(outsideHeight) != l.Height {
		g.engine.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run creates a window and drives the engine until it stops or the window
// closes. For more control, build a [Game] and call [ebiten.RunGame]
// yourself.
func Run(engine *Engine, renderer Renderer, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 540
	}
	if cfg.Title == "" {
		cfg.Title = "sift"
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := NewGame(engine, renderer)
	game.SetShowStats(cfg.ShowStats)

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
