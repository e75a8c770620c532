package problemgen

import (
	"math/rand"
	"testing"

	"github.com/meteorinca/cartesian/internal/geometry"
)

func newTestGenerator(d Difficulty, seed int64) *Generator {
	return New(ProfileFor(d), NewSampler(rand.New(rand.NewSource(seed))), DefaultConfig())
}

func TestPlotPointGeneration(t *testing.T) {
	g := newTestGenerator(DifficultyMedium, 1)
	for i := 0; i < 200; i++ {
		p := g.PlotPoint()
		if p.Kind != KindPlotPoint {
			t.Fatalf("kind = %q", p.Kind)
		}
		if p.Range != 6 {
			t.Fatalf("range = %d, want 6", p.Range)
		}
		if p.Target.IsOrigin() {
			t.Fatal("target is the origin")
		}
		if want := p.Target.String(); p.Display != want {
			t.Fatalf("display = %q, want %q", p.Display, want)
		}
	}
}

func TestIdentifyPointGeneration(t *testing.T) {
	g := newTestGenerator(DifficultyEasy, 2)
	p := g.IdentifyPoint()
	if p.Kind != KindIdentifyPoint {
		t.Fatalf("kind = %q", p.Kind)
	}
	if p.Point.IsOrigin() {
		t.Fatal("point is the origin")
	}
	if p.Point.X < 0 || p.Point.Y < 0 {
		t.Fatalf("easy profile produced negative coordinate %v", p.Point)
	}
}

func TestFindQuadrantNeverOnAxis(t *testing.T) {
	for _, d := range Difficulties() {
		g := newTestGenerator(d, 3)
		for i := 0; i < 500; i++ {
			p := g.FindQuadrant()
			if p.Point.OnAxis() {
				t.Fatalf("%s: point %v on axis", d, p.Point)
			}
			switch p.Quadrant {
			case geometry.QuadrantI, geometry.QuadrantII, geometry.QuadrantIII, geometry.QuadrantIV:
			default:
				t.Fatalf("%s: quadrant = %q", d, p.Quadrant)
			}
			if want := geometry.Classify(p.Point.X, p.Point.Y); p.Quadrant != want {
				t.Fatalf("%s: stored quadrant %q, classification %q", d, p.Quadrant, want)
			}
		}
	}
}

func TestFindQuadrantCapForcesOffAxis(t *testing.T) {
	// Every draw yields (0, 2): x = -6+6, y = -6+8. With a tiny attempt
	// cap the generator must bail out by forcing the zero axis to 1.
	src := &scriptedSource{values: []int{6, 8}}
	g := New(ProfileFor(DifficultyMedium), NewSampler(src), Config{MaxAttempts: 3})

	p := g.FindQuadrant()
	if p.Point != (geometry.Coordinate{X: 1, Y: 2}) {
		t.Fatalf("point = %v, want (1, 2)", p.Point)
	}
	if p.Quadrant != geometry.QuadrantI {
		t.Fatalf("quadrant = %q, want I", p.Quadrant)
	}
}

func TestDistanceEndpointsDistinct(t *testing.T) {
	for _, d := range Difficulties() {
		g := newTestGenerator(d, 4)
		for i := 0; i < 500; i++ {
			p := g.Distance()
			if p.A == p.B {
				t.Fatalf("%s: coincident endpoints %v", d, p.A)
			}
			if want := geometry.Distance(p.A, p.B); p.Distance != want {
				t.Fatalf("%s: stored distance %v, computed %v", d, p.Distance, want)
			}
		}
	}
}

func TestDistanceCapNudgesSecondPoint(t *testing.T) {
	// Every draw yields (1, 1), so the pair always coincides. The cap
	// fallback shifts b.X by one toward the side with room.
	src := &scriptedSource{values: []int{7}}
	g := New(ProfileFor(DifficultyMedium), NewSampler(src), Config{MaxAttempts: 2})

	p := g.Distance()
	if p.A != (geometry.Coordinate{X: 1, Y: 1}) {
		t.Fatalf("a = %v, want (1, 1)", p.A)
	}
	if p.B != (geometry.Coordinate{X: 2, Y: 1}) {
		t.Fatalf("b = %v, want (2, 1)", p.B)
	}
	if p.Distance != 1 {
		t.Fatalf("distance = %v, want 1", p.Distance)
	}
}

func TestDistanceDisplay(t *testing.T) {
	g := newTestGenerator(DifficultyHard, 5)
	p := g.Distance()
	want := p.A.String() + " to " + p.B.String()
	if p.Display != want {
		t.Errorf("display = %q, want %q", p.Display, want)
	}
}

func TestBatchCountAndIndependence(t *testing.T) {
	g := newTestGenerator(DifficultyHard, 6)
	batch := g.Batch(KindDistance, 10)
	if len(batch) != 10 {
		t.Fatalf("len(batch) = %d, want 10", len(batch))
	}
	for _, p := range batch {
		if p.Kind != KindDistance {
			t.Fatalf("kind = %q", p.Kind)
		}
	}
}
