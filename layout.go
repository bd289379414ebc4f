package sift

import "math"

// Zone geometry is derived from canvas size with fixed proportions.
// The scan zone sits left of center; the garden occupies the lower right.
const (
	scanCenterXFrac = 0.22
	scanCenterYFrac = 0.45
	scanRadiusFrac  = 0.16 // of min(width, height)

	gardenXFrac      = 0.62
	gardenYFrac      = 0.30
	gardenWidthFrac  = 0.33
	gardenHeightFrac = 0.55

	// GardenRows is the fixed number of rows in the garden grid. Slot
	// assignment cycles through GardenColumns * GardenRows slots.
	GardenRows = 4
)

// Layout holds the zone geometry for a given canvas size. It is a pure
// function of width and height (see [ComputeLayout]) and carries no state.
//
// A resize replaces the Layout but leaves in-flight Bezier targets and
// control points untouched until the entity's next state transition; the
// resulting drift is an accepted trade against mid-flight discontinuities.
type Layout struct {
	Width, Height float64

	// ScanCenter and ScanRadius describe the inspection orbit.
	ScanCenter Vec2
	ScanRadius float64
	ScanZone   Rect

	// Corridor is the transit band between the scan zone and the garden.
	Corridor Rect

	// Garden is the destination zone; blooms are planted on its grid.
	Garden        Rect
	GardenColumns int
	CellWidth     float64
	CellHeight    float64
}

// ComputeLayout derives zone geometry from canvas dimensions. columns is the
// garden grid column count; values below 1 are treated as 1.
func ComputeLayout(width, height float64, columns int) Layout {
	if columns < 1 {
		columns = 1
	}

	r := math.Min(width, height) * scanRadiusFrac
	center := Vec2{X: width * scanCenterXFrac, Y: height * scanCenterYFrac}

	garden := Rect{
		X:      width * gardenXFrac,
		Y:      height * gardenYFrac,
		Width:  width * gardenWidthFrac,
		Height: height * gardenHeightFrac,
	}

	scanZone := Rect{
		X:      center.X - r*1.4,
		Y:      center.Y - r*1.4,
		Width:  r * 2.8,
		Height: r * 2.8,
	}

	corridor := Rect{
		X:      scanZone.X + scanZone.Width,
		Y:      height * 0.25,
		Width:  garden.X - (scanZone.X + scanZone.Width),
		Height: height * 0.5,
	}

	return Layout{
		Width:         width,
		Height:        height,
		ScanCenter:    center,
		ScanRadius:    r,
		ScanZone:      scanZone,
		Corridor:      corridor,
		Garden:        garden,
		GardenColumns: columns,
		CellWidth:     garden.Width / float64(columns),
		CellHeight:    garden.Height / GardenRows,
	}
}

// SlotCount returns the number of grid slots in the garden.
func (l Layout) SlotCount() int {
	return l.GardenColumns * GardenRows
}

// SlotPosition returns the center of the garden cell for the given slot.
// Column is slot mod columns, row is slot div columns, so consecutive slots
// fill left-to-right, top-to-bottom with no overlap detection needed.
func (l Layout) SlotPosition(slot int) Vec2 {
	col := slot % l.GardenColumns
	row := slot / l.GardenColumns % GardenRows
	return Vec2{
		X: l.Garden.X + (float64(col)+0.5)*l.CellWidth,
		Y: l.Garden.Y + (float64(row)+0.5)*l.CellHeight,
	}
}
