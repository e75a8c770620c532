// Package geometry provides the coordinate-plane primitives the rest of
// the app is built on: integer coordinates, quadrant classification, and
// Euclidean distance with display rounding.
package geometry

import (
	"fmt"
	"math"
)

// Coordinate is an integer point on the coordinate plane. Value type, no
// identity.
type Coordinate struct {
	X int
	Y int
}

// String formats the coordinate as "(x, y)", the display form used in
// prompts and canonical answers.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// IsOrigin reports whether the coordinate is (0, 0).
func (c Coordinate) IsOrigin() bool {
	return c.X == 0 && c.Y == 0
}

// OnAxis reports whether the coordinate lies on the x- or y-axis.
func (c Coordinate) OnAxis() bool {
	return c.X == 0 || c.Y == 0
}

// Quadrant identifies one of the four quadrants, or Axis for points with a
// zero component.
type Quadrant string

const (
	QuadrantI   Quadrant = "I"
	QuadrantII  Quadrant = "II"
	QuadrantIII Quadrant = "III"
	QuadrantIV  Quadrant = "IV"
	// QuadrantAxis covers every point with x=0 or y=0, origin included.
	QuadrantAxis Quadrant = "Axis"
)

// Quadrants lists the four selectable quadrant labels in display order.
// Axis is intentionally excluded: it is a classification result, never an
// answer choice.
func Quadrants() []Quadrant {
	return []Quadrant{QuadrantI, QuadrantII, QuadrantIII, QuadrantIV}
}

// Classify maps a point to its quadrant. Total: every input classifies,
// points on either axis classify as QuadrantAxis.
func Classify(x, y int) Quadrant {
	switch {
	case x > 0 && y > 0:
		return QuadrantI
	case x < 0 && y > 0:
		return QuadrantII
	case x < 0 && y < 0:
		return QuadrantIII
	case x > 0 && y < 0:
		return QuadrantIV
	default:
		return QuadrantAxis
	}
}

// Distance returns the Euclidean distance between two coordinates,
// rounded to two decimal places.
func Distance(a, b Coordinate) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return Round2(math.Sqrt(dx*dx + dy*dy))
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
