package anchor

import (
	"math"

	"github.com/anpham6/squared-sub012/pkg/geom"
)

// Polar returns the rounded radius and angle of p around origin.
//
// Angles use the constraint-layout circle: 0° is straight up and angles
// grow clockwise, so [geom.FromPolar] reconstructs p from the result as
// origin + r·(sin θ, −cos θ). The math-convention origin + r·(cos θ, sin θ)
// does not apply to these angles. The
// base angle is taken against the shorter leg of the right triangle, which
// keeps it in [0°, 45°], and then folded into one of eight octants using the
// signs of the deltas and which leg is longer. Points on the same row
// resolve to exactly 90° or 270°.
//
// When p coincides with origin the angle is undefined; Polar returns a
// radius and angle of 0.
func Polar(origin, p geom.Point) (radius, angle float64) {
	dx := math.Abs(origin.X - p.X)
	dy := math.Abs(origin.Y - p.Y)
	if dx == 0 && dy == 0 {
		return 0, 0
	}
	radius = math.Round(math.Hypot(dx, dy))
	base := math.Round(math.Atan(math.Min(dx, dy)/math.Max(dx, dy)) * 180 / math.Pi)
	shallow := dx > dy

	switch {
	case origin.Y > p.Y: // above
		if origin.X > p.X {
			angle = pick(shallow, 270+base, 360-base)
		} else {
			angle = pick(shallow, 90-base, base)
		}
	case origin.Y < p.Y: // below
		if p.X > origin.X {
			angle = pick(shallow, 90+base, 180-base)
		} else {
			angle = pick(shallow, 270-base, 180+base)
		}
	default:
		if origin.X > p.X {
			angle = 270
		} else {
			angle = 90
		}
	}
	return radius, normalize(angle)
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

// normalize folds an angle into [0, 360).
func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
