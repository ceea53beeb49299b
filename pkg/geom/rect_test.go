package geom

import (
	"encoding/json"
	"math"
	"testing"
)

func TestRectWidth(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want float64
	}{
		{
			name: "positive width",
			rect: Rect{Left: 10, Right: 50},
			want: 40,
		},
		{
			name: "zero width",
			rect: Rect{Left: 10, Right: 10},
			want: 0,
		},
		{
			name: "from origin",
			rect: Rect{Left: 0, Right: 100},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Width(); got != tt.want {
				t.Errorf("Width() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectHeight(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want float64
	}{
		{
			name: "positive height",
			rect: Rect{Top: 20, Bottom: 80},
			want: 60,
		},
		{
			name: "zero height",
			rect: Rect{Top: 50, Bottom: 50},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Height(); got != tt.want {
				t.Errorf("Height() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want Point
	}{
		{
			name: "symmetric",
			rect: Rect{Left: 0, Right: 100, Top: 0, Bottom: 100},
			want: Point{X: 50, Y: 50},
		},
		{
			name: "offset",
			rect: Rect{Left: 20, Right: 80, Top: 30, Bottom: 70},
			want: Point{X: 50, Y: 50},
		},
		{
			name: "degenerate",
			rect: Rect{Left: 5, Right: 5, Top: 7, Bottom: 7},
			want: Point{X: 5, Y: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Center(); got != tt.want {
				t.Errorf("Center() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectAxisAccessors(t *testing.T) {
	r := Rect{Top: 10, Right: 60, Bottom: 40, Left: 20}

	if r.Start(Horizontal) != 20 || r.End(Horizontal) != 60 {
		t.Errorf("horizontal start/end = %v/%v, want 20/60", r.Start(Horizontal), r.End(Horizontal))
	}
	if r.Start(Vertical) != 10 || r.End(Vertical) != 40 {
		t.Errorf("vertical start/end = %v/%v, want 10/40", r.Start(Vertical), r.End(Vertical))
	}
	if r.Size(Horizontal) != 40 {
		t.Errorf("Size(Horizontal) = %v, want 40", r.Size(Horizontal))
	}
	if r.Size(Vertical) != 30 {
		t.Errorf("Size(Vertical) = %v, want 30", r.Size(Vertical))
	}
}

func TestRectExpand(t *testing.T) {
	box := Rect{Top: 10, Right: 60, Bottom: 40, Left: 20}

	got := box.Expand(Edges{Top: 5, Right: 2, Bottom: 3, Left: 4})
	want := Rect{Top: 5, Right: 62, Bottom: 43, Left: 16}
	if got != want {
		t.Errorf("Expand() = %+v, want %+v", got, want)
	}

	// Negative margins pull the linear box inside the border box.
	got = box.Expand(Edges{Left: -5})
	if got.Left != 25 {
		t.Errorf("negative margin Left = %v, want 25", got.Left)
	}
}

func TestBounds(t *testing.T) {
	if got := Bounds(); got != (Rect{}) {
		t.Errorf("Bounds() = %+v, want zero", got)
	}

	got := Bounds(
		Rect{Top: 10, Right: 30, Bottom: 20, Left: 5},
		Rect{Top: 0, Right: 25, Bottom: 50, Left: 15},
		Rect{Top: 12, Right: 90, Bottom: 14, Left: 40},
	)
	want := Rect{Top: 0, Right: 90, Bottom: 50, Left: 5}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestRectIsFinite(t *testing.T) {
	if !(Rect{Top: 1, Right: 2, Bottom: 3, Left: 4}).IsFinite() {
		t.Error("finite rect reported as non-finite")
	}
	if (Rect{Top: math.NaN()}).IsFinite() {
		t.Error("NaN rect reported as finite")
	}
	if (Rect{Right: math.Inf(1)}).IsFinite() {
		t.Error("Inf rect reported as finite")
	}
}

func TestWithinRange(t *testing.T) {
	tests := []struct {
		a, b, tol float64
		want      bool
	}{
		{10, 10, 0, true},
		{10, 10.5, 0, false},
		{10, 10.5, 1, true},
		{10, 11, 1, true},
		{10, 11.01, 1, false},
		{11, 10, 1, true},
		{10, 10, -3, true},
		{10, 10.2, -3, false},
	}

	for _, tt := range tests {
		if got := WithinRange(tt.a, tt.b, tt.tol); got != tt.want {
			t.Errorf("WithinRange(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.tol, got, tt.want)
		}
	}
}

func TestEdgeNames(t *testing.T) {
	tests := []struct {
		edge     Edge
		name     string
		axis     Axis
		opposite Edge
	}{
		{EdgeTop, "top", Vertical, EdgeBottom},
		{EdgeRight, "right", Horizontal, EdgeLeft},
		{EdgeBottom, "bottom", Vertical, EdgeTop},
		{EdgeLeft, "left", Horizontal, EdgeRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.edge.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.edge.String(), tt.name)
			}
			if tt.edge.Axis() != tt.axis {
				t.Errorf("Axis() = %v, want %v", tt.edge.Axis(), tt.axis)
			}
			if tt.edge.Opposite() != tt.opposite {
				t.Errorf("Opposite() = %v, want %v", tt.edge.Opposite(), tt.opposite)
			}
		})
	}
}

func TestEdgeMapKeyJSON(t *testing.T) {
	in := map[Edge]float64{EdgeLeft: 12, EdgeBottom: -4}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"bottom":-4,"left":12}` {
		t.Errorf("Marshal = %s", data)
	}

	var out map[Edge]float64
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out[EdgeLeft] != 12 || out[EdgeBottom] != -4 {
		t.Errorf("Unmarshal = %v", out)
	}

	var bad Edge
	if err := bad.UnmarshalText([]byte("middle")); err == nil {
		t.Error("UnmarshalText(middle) should fail")
	}
}
