package geom

import "math"

// Point represents a 2D coordinate in sub-pixel image space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the vector sum p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the vector difference p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Line is the infinite line through two distinct points.
type Line struct {
	P0 Point
	P1 Point
}

// LineThrough builds the infinite line passing through p0 and p1.
func LineThrough(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

// parallelEps bounds the cross product of two direction vectors below which
// the lines are treated as parallel.
const parallelEps = 1e-10

// Intersect computes the intersection point of the infinite lines a and b.
// The second return value is false when the lines are parallel or numerically
// indistinguishable from parallel; the returned point is then meaningless.
func Intersect(a, b Line) (Point, bool) {
	da := a.P1.Sub(a.P0)
	db := b.P1.Sub(b.P0)

	det := da.X*db.Y - da.Y*db.X
	if math.Abs(det) < parallelEps {
		return Point{}, false
	}

	w := b.P0.Sub(a.P0)
	t := (w.X*db.Y - w.Y*db.X) / det
	return a.P0.Add(da.Scale(t)), true
}

// Mod2Pi normalizes an angle (or angular difference) into (-pi, pi].
// Summing Mod2Pi of consecutive edge-angle differences accumulates the signed
// turning angle of a polygon independent of atan2 branch-cut crossings.
func Mod2Pi(theta float64) float64 {
	r := math.Mod(theta, 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	} else if r > math.Pi {
		r -= 2 * math.Pi
	}
	return r
}
