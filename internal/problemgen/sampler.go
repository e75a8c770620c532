package problemgen

import (
	"github.com/meteorinca/cartesian/internal/geometry"
)

// Source supplies uniform random integers. *rand.Rand satisfies it;
// tests substitute scripted sources for reproducible draws.
type Source interface {
	// Intn returns a uniform integer in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// Sampler draws random integer coordinates within a profile's bounds.
type Sampler struct {
	src Source
}

// NewSampler creates a Sampler over the given random source.
func NewSampler(src Source) *Sampler {
	return &Sampler{src: src}
}

// IntInRange returns a uniform integer in [lo, hi], inclusive on both
// ends. Precondition: lo <= hi.
func (s *Sampler) IntInRange(lo, hi int) int {
	return lo + s.src.Intn(hi-lo+1)
}

// Coordinate draws x and y independently and uniformly from
// [profile.MinCoord, profile.MaxCoord]. The origin is excluded: if both
// draws land on zero, only the x component is redrawn, from
// [1, profile.MaxCoord]. The asymmetric redraw keeps the draw sequence
// stable for a given seed.
func (s *Sampler) Coordinate(profile Profile) geometry.Coordinate {
	x := s.IntInRange(profile.MinCoord, profile.MaxCoord)
	y := s.IntInRange(profile.MinCoord, profile.MaxCoord)
	if x == 0 && y == 0 {
		x = s.IntInRange(1, profile.MaxCoord)
	}
	return geometry.Coordinate{X: x, Y: y}
}
