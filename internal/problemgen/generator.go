package problemgen

import (
	"fmt"

	"github.com/meteorinca/cartesian/internal/geometry"
)

// Generator produces practice problems for one difficulty profile.
// It holds no state beyond its random source; every call yields an
// independent problem.
type Generator struct {
	profile Profile
	sampler *Sampler
	config  Config
}

// New creates a Generator for the given difficulty profile and sampler.
func New(profile Profile, sampler *Sampler, config Config) *Generator {
	return &Generator{
		profile: profile,
		sampler: sampler,
		config:  config,
	}
}

// Profile returns the difficulty profile the generator draws from.
func (g *Generator) Profile() Profile {
	return g.profile
}

// Generate produces one problem of the given kind.
func (g *Generator) Generate(kind Kind) Problem {
	switch kind {
	case KindPlotPoint:
		return g.PlotPoint()
	case KindIdentifyPoint:
		return g.IdentifyPoint()
	case KindFindQuadrant:
		return g.FindQuadrant()
	case KindDistance:
		return g.Distance()
	default:
		panic(fmt.Sprintf("problemgen: unknown kind %q", kind))
	}
}

// Batch produces count problems of the given kind. A new batch wholly
// replaces any previous one; problems carry no cross-batch state.
func (g *Generator) Batch(kind Kind, count int) []Problem {
	problems := make([]Problem, 0, count)
	for i := 0; i < count; i++ {
		problems = append(problems, g.Generate(kind))
	}
	return problems
}

// PlotPoint generates a problem asking the learner to plot a coordinate.
func (g *Generator) PlotPoint() Problem {
	c := g.sampler.Coordinate(g.profile)
	return Problem{
		Kind:    KindPlotPoint,
		Range:   g.profile.Range,
		Display: c.String(),
		Target:  c,
	}
}

// IdentifyPoint generates a problem asking the learner to read off the
// coordinates of a pre-drawn point. The coordinate stays out of the
// prompt text; only the rendered grid reveals it.
func (g *Generator) IdentifyPoint() Problem {
	c := g.sampler.Coordinate(g.profile)
	return Problem{
		Kind:    KindIdentifyPoint,
		Range:   g.profile.Range,
		Display: c.String(),
		Point:   c,
	}
}

// FindQuadrant generates a problem asking for the quadrant of a drawn
// point. Draws landing on an axis are rejected and redrawn; after
// MaxAttempts rejections the zero component is forced to 1 so the loop
// always terminates.
func (g *Generator) FindQuadrant() Problem {
	var c geometry.Coordinate
	for attempt := 0; ; attempt++ {
		c = g.sampler.Coordinate(g.profile)
		if !c.OnAxis() {
			break
		}
		if attempt >= g.config.MaxAttempts {
			if c.X == 0 {
				c.X = 1
			}
			if c.Y == 0 {
				c.Y = 1
			}
			break
		}
	}

	return Problem{
		Kind:     KindFindQuadrant,
		Range:    g.profile.Range,
		Display:  c.String(),
		Point:    c,
		Quadrant: geometry.Classify(c.X, c.Y),
	}
}

// Distance generates a problem asking for the distance between two
// distinct points. Coinciding pairs are rejected and the whole pair is
// redrawn; after MaxAttempts rejections the second point's x is nudged
// by one (toward the bound with room) to force distinctness.
func (g *Generator) Distance() Problem {
	var a, b geometry.Coordinate
	for attempt := 0; ; attempt++ {
		a = g.sampler.Coordinate(g.profile)
		b = g.sampler.Coordinate(g.profile)
		if a != b {
			break
		}
		if attempt >= g.config.MaxAttempts {
			if b.X < g.profile.MaxCoord {
				b.X++
			} else {
				b.X--
			}
			break
		}
	}

	return Problem{
		Kind:     KindDistance,
		Range:    g.profile.Range,
		Display:  fmt.Sprintf("%s to %s", a, b),
		A:        a,
		B:        b,
		Distance: geometry.Distance(a, b),
	}
}
