package sift

import (
	"math"
	"testing"
)

func TestClampBounds(t *testing.T) {
	if got := Clamp(-1, 0, 1); got != 0 {
		t.Errorf("Clamp(-1,0,1) = %v, want 0", got)
	}
	if got := Clamp(2, 0, 1); got != 1 {
		t.Errorf("Clamp(2,0,1) = %v, want 1", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp(0.5,0,1) = %v, want 0.5", got)
	}
}

func TestLerpEndpointsAndMidpoint(t *testing.T) {
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp t=0 = %v, want 10", got)
	}
	if got := Lerp(10, 20, 1); got != 20 {
		t.Errorf("Lerp t=1 = %v, want 20", got)
	}
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Errorf("Lerp t=0.5 = %v, want 15", got)
	}
}

func TestQuadBezierEndpoints(t *testing.T) {
	p0 := Vec2{X: 0, Y: 0}
	ctrl := Vec2{X: 50, Y: 100}
	p1 := Vec2{X: 100, Y: 0}

	if got := QuadBezier(p0, ctrl, p1, 0); got != p0 {
		t.Errorf("t=0: got %+v, want %+v", got, p0)
	}
	if got := QuadBezier(p0, ctrl, p1, 1); got != p1 {
		t.Errorf("t=1: got %+v, want %+v", got, p1)
	}
}

func TestQuadBezierMidpoint(t *testing.T) {
	p0 := Vec2{X: 0, Y: 0}
	ctrl := Vec2{X: 50, Y: 100}
	p1 := Vec2{X: 100, Y: 0}

	// At t=0.5 the curve passes through (p0 + 2*ctrl + p1)/4.
	got := QuadBezier(p0, ctrl, p1, 0.5)
	if math.Abs(got.X-50) > 1e-9 || math.Abs(got.Y-50) > 1e-9 {
		t.Errorf("t=0.5: got %+v, want (50, 50)", got)
	}
}

func TestQuadBezierDegenerateLine(t *testing.T) {
	// Control point on the segment collapses to linear interpolation.
	p0 := Vec2{X: 0, Y: 0}
	p1 := Vec2{X: 100, Y: 100}
	ctrl := Vec2{X: 50, Y: 50}

	for _, tt := range []float64{0.25, 0.5, 0.75} {
		got := QuadBezier(p0, ctrl, p1, tt)
		want := Vec2{X: 100 * tt, Y: 100 * tt}
		if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
			t.Errorf("t=%v: got %+v, want %+v", tt, got, want)
		}
	}
}
