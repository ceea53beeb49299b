package geom

import "math"

// Point is an (X, Y) coordinate in the same space as [Rect].
type Point struct {
	X float64 `json:"x" toml:"x" bson:"x"`
	Y float64 `json:"y" toml:"y" bson:"y"`
}

// Add returns p offset by o.
func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }

// Sub returns p minus o.
func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

// Distance returns the Euclidean distance between p and o.
func (p Point) Distance(o Point) float64 { return math.Hypot(p.X-o.X, p.Y-o.Y) }

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool { return isFinite(p.X) && isFinite(p.Y) }

// FromPolar converts a radius and an angle around origin to a point.
//
// Angles follow the constraint-layout circle convention: 0° points up,
// angles grow clockwise, and screen Y increases downward. 90° is therefore
// to the right of origin and 180° directly below it. The point is
// origin + r·(sin θ, −cos θ), not the math-convention r·(cos θ, sin θ).
func FromPolar(origin Point, radius, degrees float64) Point {
	rad := degrees * math.Pi / 180
	return Point{
		X: origin.X + radius*math.Sin(rad),
		Y: origin.Y - radius*math.Cos(rad),
	}
}
