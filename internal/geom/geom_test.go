package geom

import (
	"math"
	"testing"
)

func TestIntersect(t *testing.T) {
	// Horizontal line y=2 and vertical line x=3.
	a := LineThrough(Point{0, 2}, Point{10, 2})
	b := LineThrough(Point{3, 0}, Point{3, 10})

	p, ok := Intersect(a, b)
	if !ok {
		t.Fatal("Intersect reported no intersection for perpendicular lines")
	}
	if math.Abs(p.X-3) > 1e-9 || math.Abs(p.Y-2) > 1e-9 {
		t.Errorf("intersection: got (%v, %v), want (3, 2)", p.X, p.Y)
	}
}

func TestIntersect_BeyondSegmentExtent(t *testing.T) {
	// The infinite lines intersect even though the segments themselves
	// do not overlap.
	a := LineThrough(Point{0, 0}, Point{1, 0})
	b := LineThrough(Point{5, 1}, Point{5, 2})

	p, ok := Intersect(a, b)
	if !ok {
		t.Fatal("expected intersection of non-overlapping segments' lines")
	}
	if math.Abs(p.X-5) > 1e-9 || math.Abs(p.Y) > 1e-9 {
		t.Errorf("intersection: got (%v, %v), want (5, 0)", p.X, p.Y)
	}
}

func TestIntersect_Parallel(t *testing.T) {
	a := LineThrough(Point{0, 0}, Point{10, 5})
	b := LineThrough(Point{0, 1}, Point{10, 6})

	if _, ok := Intersect(a, b); ok {
		t.Error("Intersect reported an intersection for parallel lines")
	}
}

func TestIntersect_Collinear(t *testing.T) {
	a := LineThrough(Point{0, 0}, Point{1, 1})
	b := LineThrough(Point{2, 2}, Point{3, 3})

	if _, ok := Intersect(a, b); ok {
		t.Error("Intersect reported an intersection for collinear lines")
	}
}

func TestMod2Pi(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{-3 * math.Pi / 2, math.Pi / 2},
		{5 * math.Pi / 2, math.Pi / 2},
		{-math.Pi / 4, -math.Pi / 4},
	}
	for _, c := range cases {
		got := Mod2Pi(c.in)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Mod2Pi(%v): got %v, want %v", c.in, got, c.want)
		}
		if got <= -math.Pi || got > math.Pi {
			t.Errorf("Mod2Pi(%v) = %v outside (-pi, pi]", c.in, got)
		}
	}
}

func TestMod2Pi_TurningAngleSquare(t *testing.T) {
	// Walking a square with four -pi/2 turns accumulates -2*pi regardless
	// of where the atan2 branch cut falls.
	corners := []Point{{0, 10}, {10, 10}, {10, 0}, {0, 0}}
	angles := make([]float64, 4)
	for i := range corners {
		d := corners[(i+1)%4].Sub(corners[i])
		angles[i] = math.Atan2(d.Y, d.X)
	}
	total := 0.0
	for i := range angles {
		total += Mod2Pi(angles[(i+1)%4] - angles[i])
	}
	if math.Abs(total+2*math.Pi) > 1e-9 {
		t.Errorf("turning angle: got %v, want %v", total, -2*math.Pi)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Point{0, 0}, Point{3, 4}); math.Abs(d-5) > 1e-9 {
		t.Errorf("Distance: got %v, want 5", d)
	}
}
