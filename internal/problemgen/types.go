package problemgen

import (
	"fmt"

	"github.com/meteorinca/cartesian/internal/geometry"
)

// Kind discriminates the four problem variants.
type Kind string

const (
	// KindPlotPoint asks the learner to locate a named coordinate on the grid.
	KindPlotPoint Kind = "plot-point"

	// KindIdentifyPoint draws a point on the grid and asks for its coordinates.
	KindIdentifyPoint Kind = "identify-point"

	// KindFindQuadrant asks which quadrant a drawn point lies in.
	KindFindQuadrant Kind = "find-quadrant"

	// KindDistance asks for the Euclidean distance between two drawn points.
	KindDistance Kind = "distance"
)

// Kinds lists every problem kind in menu order.
func Kinds() []Kind {
	return []Kind{KindPlotPoint, KindIdentifyPoint, KindFindQuadrant, KindDistance}
}

// ParseKind resolves a problem kind from CLI/config input.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPlotPoint, KindIdentifyPoint, KindFindQuadrant, KindDistance:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (want plot-point, identify-point, find-quadrant, or distance)", s)
}

// Problem is one generated practice problem, ready for display and
// grading. It is a tagged union: Kind selects which variant fields are
// meaningful. The embedded answer (Target, Quadrant, or Distance) is
// computed once at generation time; grading compares against the stored
// value and never re-derives it. Problems are read-only after generation.
type Problem struct {
	// Kind selects the variant.
	Kind Kind

	// Range is the display bound, copied from the active difficulty
	// profile so a problem renders correctly without the profile in hand.
	Range int

	// Display is the human-readable prompt fragment: "(x, y)" for
	// single-point problems, "(x1, y1) to (x2, y2)" for distance.
	Display string

	// Target is the coordinate the learner must plot (KindPlotPoint).
	Target geometry.Coordinate

	// Point is the pre-drawn coordinate (KindIdentifyPoint and
	// KindFindQuadrant). Never shown in the prompt text.
	Point geometry.Coordinate

	// Quadrant is the precomputed classification of Point
	// (KindFindQuadrant). Always one of I-IV, never Axis.
	Quadrant geometry.Quadrant

	// A and B are the two distinct endpoints (KindDistance).
	A geometry.Coordinate
	B geometry.Coordinate

	// Distance is the precomputed Euclidean distance between A and B,
	// rounded to two decimal places (KindDistance).
	Distance float64
}

// Prompt returns the full question text for the problem.
func (p *Problem) Prompt() string {
	switch p.Kind {
	case KindPlotPoint:
		return fmt.Sprintf("Plot the point %s", p.Display)
	case KindIdentifyPoint:
		return "What are the coordinates of the point shown?"
	case KindFindQuadrant:
		return "Which quadrant is the point in?"
	case KindDistance:
		return fmt.Sprintf("Find the distance from %s", p.Display)
	default:
		return ""
	}
}

// CanonicalAnswer returns the stored correct answer in display form.
func (p *Problem) CanonicalAnswer() string {
	switch p.Kind {
	case KindPlotPoint:
		return p.Target.String()
	case KindIdentifyPoint:
		return p.Point.String()
	case KindFindQuadrant:
		return string(p.Quadrant)
	case KindDistance:
		return FormatDistance(p.Distance)
	default:
		return ""
	}
}

// FormatDistance renders a distance value with exactly two decimals,
// matching how distances are stored and serialized.
func FormatDistance(d float64) string {
	return fmt.Sprintf("%.2f", d)
}
