package geom

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 3, Y: 4}
	o := Point{X: 1, Y: -2}

	if got := p.Add(o); got != (Point{X: 4, Y: 2}) {
		t.Errorf("Add() = %v", got)
	}
	if got := p.Sub(o); got != (Point{X: 2, Y: 6}) {
		t.Errorf("Sub() = %v", got)
	}
	if got := p.Distance(Point{}); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestFromPolar(t *testing.T) {
	origin := Point{X: 100, Y: 100}
	tests := []struct {
		name    string
		degrees float64
		want    Point
	}{
		{"up", 0, Point{X: 100, Y: 90}},
		{"right", 90, Point{X: 110, Y: 100}},
		{"down", 180, Point{X: 100, Y: 110}},
		{"left", 270, Point{X: 90, Y: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromPolar(origin, 10, tt.degrees)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("FromPolar(%v) = %v, want %v", tt.degrees, got, tt.want)
			}
		})
	}
}
