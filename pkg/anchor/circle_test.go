package anchor

import (
	"testing"

	"github.com/anpham6/squared-sub012/pkg/geom"
)

func TestPolarRoundTrip(t *testing.T) {
	origin := geom.Point{}
	p := geom.Point{X: 3, Y: 4}

	radius, angle := Polar(origin, p)
	if radius != 5 {
		t.Errorf("radius = %v, want 5", radius)
	}
	// atan(3/4) = 36.87°, folded into the lower-right octant.
	if angle != 143 {
		t.Errorf("angle = %v, want 143", angle)
	}
	if got := geom.FromPolar(origin, radius, angle); got.Distance(p) > 1 {
		t.Errorf("FromPolar(%v, %v) = %v, want within 1 of %v", radius, angle, got, p)
	}
}

func TestPolarOctants(t *testing.T) {
	origin := geom.Point{X: 50, Y: 50}
	tests := []struct {
		dx, dy float64
		want   float64
	}{
		{0, -10, 0},
		{10, -10, 45},
		{10, 0, 90},
		{10, 10, 135},
		{0, 10, 180},
		{-10, 10, 225},
		{-10, 0, 270},
		{-10, -10, 315},
	}

	seen := make(map[float64]bool)
	for _, tt := range tests {
		_, angle := Polar(origin, geom.Point{X: origin.X + tt.dx, Y: origin.Y + tt.dy})
		if angle != tt.want {
			t.Errorf("Polar(%v,%v) angle = %v, want %v", tt.dx, tt.dy, angle, tt.want)
		}
		if seen[angle] {
			t.Errorf("angle %v produced twice", angle)
		}
		seen[angle] = true
	}
}

func TestPolarSteepAndShallow(t *testing.T) {
	origin := geom.Point{}
	tests := []struct {
		name string
		p    geom.Point
		want float64
	}{
		{"upper right steep", geom.Point{X: 1, Y: -10}, 6},
		{"upper right shallow", geom.Point{X: 10, Y: -1}, 84},
		{"lower right shallow", geom.Point{X: 10, Y: 1}, 96},
		{"lower right steep", geom.Point{X: 1, Y: 10}, 174},
		{"lower left steep", geom.Point{X: -1, Y: 10}, 186},
		{"lower left shallow", geom.Point{X: -10, Y: 1}, 264},
		{"upper left shallow", geom.Point{X: -10, Y: -1}, 276},
		{"upper left steep", geom.Point{X: -1, Y: -10}, 354},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			radius, angle := Polar(origin, tt.p)
			if angle != tt.want {
				t.Errorf("angle = %v, want %v", angle, tt.want)
			}
			if got := geom.FromPolar(origin, radius, angle); got.Distance(tt.p) > 1 {
				t.Errorf("reconstructed %v, want %v", got, tt.p)
			}
		})
	}
}

func TestPolarCoincident(t *testing.T) {
	radius, angle := Polar(geom.Point{X: 7, Y: 7}, geom.Point{X: 7, Y: 7})
	if radius != 0 || angle != 0 {
		t.Errorf("Polar(coincident) = %v, %v, want 0, 0", radius, angle)
	}
}
