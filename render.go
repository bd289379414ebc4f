package sift

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
)

// Renderer consumes a Frame snapshot and issues drawing calls. The engine
// never draws; pixel work lives entirely behind this interface.
type Renderer interface {
	Draw(screen *ebiten.Image, frame Frame)
}

// VectorRenderer is the built-in renderer. It draws zones, tokens, blooms,
// and effects as antialiased vector shapes with no external assets.
type VectorRenderer struct {
	ClearColor Color
}

// NewVectorRenderer creates a renderer with the default dark background.
func NewVectorRenderer() *VectorRenderer {
	return &VectorRenderer{
		ClearColor: Color{R: 0.08, G: 0.09, B: 0.13, A: 1},
	}
}

var (
	scanZoneColor = Color{R: 0.35, G: 0.55, B: 0.85, A: 1}
	gardenColor   = Color{R: 0.35, G: 0.65, B: 0.40, A: 1}

	neutralColor = Color{R: 0.80, G: 0.82, B: 0.90, A: 1}
	threatColor  = Color{R: 0.95, G: 0.30, B: 0.25, A: 1}
	clearedColor = Color{R: 0.35, G: 0.85, B: 0.50, A: 1}
)

// Draw renders one frame.
func (r *VectorRenderer) Draw(screen *ebiten.Image, frame Frame) {
	screen.Fill(r.ClearColor.RGBA(1))

	r.drawZones(screen, frame.Layout)
	r.drawBlooms(screen, frame.Blooms)
	r.drawBursts(screen, frame.Bursts)
	r.drawTxns(screen, frame.Txns)
	r.drawPulses(screen, frame.Pulses)
}

func (r *VectorRenderer) drawZones(screen *ebiten.Image, l Layout) {
	c := l.ScanCenter
	vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(l.ScanRadius),
		1.5, scanZoneColor.RGBA(0.35), true)
	vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(l.ScanRadius*0.3),
		1, scanZoneColor.RGBA(0.2), true)

	g := l.Garden
	vector.StrokeRect(screen, float32(g.X), float32(g.Y), float32(g.Width), float32(g.Height),
		1.5, gardenColor.RGBA(0.35), true)
}

func (r *VectorRenderer) drawTxns(screen *ebiten.Image, txns []TxnView) {
	for i := range txns {
		t := &txns[i]
		if t.State.Terminal() {
			continue
		}

		col := neutralColor
		switch t.Verdict {
		case VerdictThreat:
			col = threatColor
		case VerdictClear:
			col = clearedColor
		}

		alpha := 1.0
		if t.State == StateSpawning {
			alpha = 0.4 + 0.6*t.Progress
		}

		radius := t.Size / 2
		x, y := float32(t.Pos.X), float32(t.Pos.Y)
		vector.DrawFilledCircle(screen, x, y, float32(radius), col.RGBA(alpha*0.9), true)
		vector.StrokeCircle(screen, x, y, float32(radius)+1.5, 1, col.RGBA(alpha*0.5), true)

		// Motion streak from the previous frame position.
		dx := t.Pos.X - t.PrevPos.X
		dy := t.Pos.Y - t.PrevPos.Y
		if dx*dx+dy*dy > 4 {
			vector.StrokeLine(screen,
				float32(t.PrevPos.X), float32(t.PrevPos.Y), x, y,
				float32(radius*0.5), col.RGBA(alpha*0.25), true)
		}
	}
}

// Bloom stems and heads scale with growth stage.
func (r *VectorRenderer) drawBlooms(screen *ebiten.Image, blooms []BloomView) {
	for i := range blooms {
		b := &blooms[i]
		stem := 4 + float64(b.Stage)*4
		head := 3 + float64(b.Stage)*2.5

		x := float32(b.Pos.X)
		baseY := float32(b.Pos.Y)
		topY := baseY - float32(stem)

		vector.StrokeLine(screen, x, baseY, x, topY, 2, gardenColor.RGBA(0.8), true)
		vector.DrawFilledCircle(screen, x, topY, float32(head), b.Color.RGBA(0.9), true)
		if b.Stage == 3 {
			vector.StrokeCircle(screen, x, topY, float32(head)+2, 1, b.Color.RGBA(0.4), true)
		}
	}
}

func (r *VectorRenderer) drawPulses(screen *ebiten.Image, pulses []PulseView) {
	for i := range pulses {
		p := &pulses[i]
		t := Clamp(p.Age/p.Life, 0, 1)
		grow := float64(ease.OutCubic(float32(t), 0, 1, 1))

		col := clearedColor
		if p.Verdict == VerdictThreat {
			col = threatColor
		}

		radius := 6 + grow*34
		vector.StrokeCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(radius),
			2, col.RGBA((1-t)*0.8), true)
	}
}

// Bursts scatter a fixed fan of dots; positions derive from age alone so the
// effect replays identically from any frame sequence.
func (r *VectorRenderer) drawBursts(screen *ebiten.Image, bursts []BurstView) {
	const rays = 8
	for i := range bursts {
		b := &bursts[i]
		t := Clamp(b.Age/b.Life, 0, 1)
		reach := float64(ease.OutQuad(float32(t), 0, 1, 1)) * 26

		for k := 0; k < rays; k++ {
			a := float64(k) / rays * 2 * math.Pi
			x := b.Pos.X + math.Cos(a)*reach
			y := b.Pos.Y + math.Sin(a)*reach
			vector.DrawFilledCircle(screen, float32(x), float32(y), 2,
				b.Color.RGBA((1-t)*0.9), true)
		}
	}
}
