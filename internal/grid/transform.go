// Package grid maps between world coordinates on the practice plane and
// character cells on the rendered grid. The transform is the only piece
// of geometry the UI layer owns: input positions are snapped to the
// nearest integer world coordinate and clamped to the display range
// before the grading core ever sees them.
package grid

import "github.com/meteorinca/cartesian/internal/geometry"

// Transform converts world coordinates to grid cells and back for one
// display range. The grid spans [-Range, Range] on both axes with the
// origin at the center; Margin cells pad every side. One world unit
// covers CellW columns by CellH rows, since terminal cells are roughly
// twice as tall as they are wide.
type Transform struct {
	Range  int
	Margin int
	CellW  int
	CellH  int
}

// NewTransform builds the standard transform for a display range: a
// one-cell margin with 2x1 cells per world unit.
func NewTransform(rng int) Transform {
	return Transform{Range: rng, Margin: 1, CellW: 2, CellH: 1}
}

// Width returns the total grid width in columns, margins included.
func (t Transform) Width() int {
	return 2*t.Range*t.CellW + 1 + 2*t.Margin
}

// Height returns the total grid height in rows, margins included.
func (t Transform) Height() int {
	return 2*t.Range*t.CellH + 1 + 2*t.Margin
}

// ToCell maps a world coordinate to its grid cell (column, row).
// Rows grow downward, so world y is negated.
func (t Transform) ToCell(c geometry.Coordinate) (col, row int) {
	col = t.Margin + (c.X+t.Range)*t.CellW
	row = t.Margin + (t.Range-c.Y)*t.CellH
	return col, row
}

// FromCell maps a grid cell back to the nearest integer world
// coordinate, clamped to [-Range, Range] on both axes. This is the
// snap-and-clamp step applied to raw input positions before grading.
func (t Transform) FromCell(col, row int) geometry.Coordinate {
	x := roundDiv(col-t.Margin, t.CellW) - t.Range
	y := t.Range - roundDiv(row-t.Margin, t.CellH)
	return geometry.Coordinate{
		X: clamp(x, -t.Range, t.Range),
		Y: clamp(y, -t.Range, t.Range),
	}
}

// Contains reports whether a cell lies inside the drawable grid area.
func (t Transform) Contains(col, row int) bool {
	return col >= 0 && col < t.Width() && row >= 0 && row < t.Height()
}

// roundDiv divides and rounds to the nearest integer, halves away from
// zero, correct for negative numerators.
func roundDiv(n, d int) int {
	if n >= 0 {
		return (n + d/2) / d
	}
	return -((-n + d/2) / d)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
