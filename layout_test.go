package sift

import (
	"math"
	"testing"
)

func TestComputeLayoutProportions(t *testing.T) {
	l := ComputeLayout(1000, 500, 6)

	if math.Abs(l.ScanCenter.X-220) > 1e-9 {
		t.Errorf("ScanCenter.X = %v, want 220", l.ScanCenter.X)
	}
	if math.Abs(l.ScanCenter.Y-225) > 1e-9 {
		t.Errorf("ScanCenter.Y = %v, want 225", l.ScanCenter.Y)
	}
	if math.Abs(l.ScanRadius-80) > 1e-9 {
		t.Errorf("ScanRadius = %v, want 80 (16%% of min dimension)", l.ScanRadius)
	}
	if l.Garden.X <= l.ScanCenter.X+l.ScanRadius {
		t.Error("garden should sit right of the scan zone")
	}
}

func TestComputeLayoutIsPure(t *testing.T) {
	a := ComputeLayout(800, 600, 6)
	b := ComputeLayout(800, 600, 6)
	if a != b {
		t.Error("same inputs should produce identical layouts")
	}
}

func TestSlotPositionsDoNotOverlap(t *testing.T) {
	l := ComputeLayout(1200, 700, 6)

	seen := make(map[Vec2]int)
	for i := 0; i < l.SlotCount(); i++ {
		pos := l.SlotPosition(i)
		if prev, ok := seen[pos]; ok {
			t.Errorf("slots %d and %d share position %+v", prev, i, pos)
		}
		seen[pos] = i
		if !l.Garden.Contains(pos.X, pos.Y) {
			t.Errorf("slot %d at %+v is outside the garden %+v", i, pos, l.Garden)
		}
	}
}

func TestSlotPositionColumnRowOrder(t *testing.T) {
	l := ComputeLayout(1000, 600, 4)

	// Consecutive slots fill left-to-right within a row.
	p0 := l.SlotPosition(0)
	p1 := l.SlotPosition(1)
	if p1.X <= p0.X || p1.Y != p0.Y {
		t.Errorf("slot 1 should be right of slot 0 in the same row: %+v vs %+v", p1, p0)
	}

	// Slot columns wraps to the next row.
	pRow := l.SlotPosition(4)
	if pRow.X != p0.X || pRow.Y <= p0.Y {
		t.Errorf("slot 4 should start the next row below slot 0: %+v vs %+v", pRow, p0)
	}
}

func TestSlotPositionCycles(t *testing.T) {
	l := ComputeLayout(1000, 600, 5)
	n := l.SlotCount()
	if n != 5*GardenRows {
		t.Fatalf("SlotCount = %d, want %d", n, 5*GardenRows)
	}
	if l.SlotPosition(n) != l.SlotPosition(0) {
		t.Error("slot assignment should wrap around the grid")
	}
}

func TestComputeLayoutMinimumColumns(t *testing.T) {
	l := ComputeLayout(800, 600, 0)
	if l.GardenColumns != 1 {
		t.Errorf("GardenColumns = %d, want clamp to 1", l.GardenColumns)
	}
}
