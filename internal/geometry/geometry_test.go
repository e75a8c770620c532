package geometry

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		x, y int
		want Quadrant
	}{
		{3, 4, QuadrantI},
		{-3, 4, QuadrantII},
		{-3, -4, QuadrantIII},
		{3, -4, QuadrantIV},
		{1, 1, QuadrantI},
		{0, 5, QuadrantAxis},
		{5, 0, QuadrantAxis},
		{0, -5, QuadrantAxis},
		{-5, 0, QuadrantAxis},
		{0, 0, QuadrantAxis},
	}

	for _, tt := range tests {
		got := Classify(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("Classify(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestClassifyAxisIffZeroComponent(t *testing.T) {
	for x := -10; x <= 10; x++ {
		for y := -10; y <= 10; y++ {
			got := Classify(x, y)
			onAxis := x == 0 || y == 0
			if onAxis != (got == QuadrantAxis) {
				t.Errorf("Classify(%d, %d) = %q, onAxis=%v", x, y, got, onAxis)
			}
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Coordinate
		want float64
	}{
		{Coordinate{0, 0}, Coordinate{3, 4}, 5},
		{Coordinate{3, 4}, Coordinate{0, 0}, 5},
		{Coordinate{-1, -1}, Coordinate{2, 3}, 5},
		{Coordinate{0, 0}, Coordinate{1, 1}, 1.41},
		{Coordinate{0, 0}, Coordinate{1, 0}, 1},
		{Coordinate{2, 2}, Coordinate{2, 7}, 5},
		{Coordinate{0, 0}, Coordinate{2, 1}, 2.24},
	}

	for _, tt := range tests {
		got := Distance(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.004, 1.0},
		{1.125, 1.13}, // exact half rounds away from zero
		{-1.125, -1.13},
		{2.236067977, 2.24},
		{5.0, 5.0},
	}

	for _, tt := range tests {
		got := Round2(tt.in)
		if got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCoordinateString(t *testing.T) {
	c := Coordinate{X: -3, Y: 7}
	if got := c.String(); got != "(-3, 7)" {
		t.Errorf("String() = %q, want %q", got, "(-3, 7)")
	}
}
