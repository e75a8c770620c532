package problemgen

import (
	"fmt"
	"strconv"

	"github.com/meteorinca/cartesian/internal/geometry"
)

// Record keys. Every problem serializes to a flat string map so it can
// be attached to rendered elements and used as a test fixture.
const (
	recKind     = "kind"
	recRange    = "range"
	recDisplay  = "display"
	recTargetX  = "target_x"
	recTargetY  = "target_y"
	recPointX   = "point_x"
	recPointY   = "point_y"
	recQuadrant = "quadrant"
	recX1       = "x1"
	recY1       = "y1"
	recX2       = "x2"
	recY2       = "y2"
	recDistance = "distance"
)

// Record serializes the problem to a flat key-value map. Only the
// fields of the problem's variant are emitted. The distance is written
// with two decimals, matching its stored precision, so decoding yields
// the identical float64.
func (p *Problem) Record() map[string]string {
	rec := map[string]string{
		recKind:    string(p.Kind),
		recRange:   strconv.Itoa(p.Range),
		recDisplay: p.Display,
	}

	switch p.Kind {
	case KindPlotPoint:
		rec[recTargetX] = strconv.Itoa(p.Target.X)
		rec[recTargetY] = strconv.Itoa(p.Target.Y)
	case KindIdentifyPoint:
		rec[recPointX] = strconv.Itoa(p.Point.X)
		rec[recPointY] = strconv.Itoa(p.Point.Y)
	case KindFindQuadrant:
		rec[recPointX] = strconv.Itoa(p.Point.X)
		rec[recPointY] = strconv.Itoa(p.Point.Y)
		rec[recQuadrant] = string(p.Quadrant)
	case KindDistance:
		rec[recX1] = strconv.Itoa(p.A.X)
		rec[recY1] = strconv.Itoa(p.A.Y)
		rec[recX2] = strconv.Itoa(p.B.X)
		rec[recY2] = strconv.Itoa(p.B.Y)
		rec[recDistance] = FormatDistance(p.Distance)
	}

	return rec
}

// FromRecord rebuilds a problem from its flat record form. The result
// is field-for-field identical to the problem that produced the record.
func FromRecord(rec map[string]string) (*Problem, error) {
	kind, err := ParseKind(rec[recKind])
	if err != nil {
		return nil, fmt.Errorf("decode problem record: %w", err)
	}

	rng, err := recInt(rec, recRange)
	if err != nil {
		return nil, err
	}

	p := &Problem{
		Kind:    kind,
		Range:   rng,
		Display: rec[recDisplay],
	}

	switch kind {
	case KindPlotPoint:
		if p.Target, err = recCoord(rec, recTargetX, recTargetY); err != nil {
			return nil, err
		}
	case KindIdentifyPoint:
		if p.Point, err = recCoord(rec, recPointX, recPointY); err != nil {
			return nil, err
		}
	case KindFindQuadrant:
		if p.Point, err = recCoord(rec, recPointX, recPointY); err != nil {
			return nil, err
		}
		p.Quadrant = geometry.Quadrant(rec[recQuadrant])
		if p.Quadrant == "" {
			return nil, fmt.Errorf("decode problem record: missing %q", recQuadrant)
		}
	case KindDistance:
		if p.A, err = recCoord(rec, recX1, recY1); err != nil {
			return nil, err
		}
		if p.B, err = recCoord(rec, recX2, recY2); err != nil {
			return nil, err
		}
		d, err := strconv.ParseFloat(rec[recDistance], 64)
		if err != nil {
			return nil, fmt.Errorf("decode problem record: field %q: %w", recDistance, err)
		}
		p.Distance = d
	}

	return p, nil
}

func recInt(rec map[string]string, key string) (int, error) {
	v, err := strconv.Atoi(rec[key])
	if err != nil {
		return 0, fmt.Errorf("decode problem record: field %q: %w", key, err)
	}
	return v, nil
}

func recCoord(rec map[string]string, xKey, yKey string) (geometry.Coordinate, error) {
	x, err := recInt(rec, xKey)
	if err != nil {
		return geometry.Coordinate{}, err
	}
	y, err := recInt(rec, yKey)
	if err != nil {
		return geometry.Coordinate{}, err
	}
	return geometry.Coordinate{X: x, Y: y}, nil
}
