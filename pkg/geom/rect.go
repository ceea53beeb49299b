package geom

import "math"

// DefaultTolerance is the pixel tolerance used by [WithinRange] callers
// when no explicit tolerance is configured.
const DefaultTolerance = 1.0

// Axis selects the horizontal or vertical dimension of a rectangle.
type Axis int

const (
	// Horizontal is the x axis (left/right edges).
	Horizontal Axis = iota
	// Vertical is the y axis (top/bottom edges).
	Vertical
)

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Rect is a resolved rectangle in the ancestor coordinate space.
// The origin is the top-left corner and Y increases downward, so
// Top <= Bottom and Left <= Right for a well-formed rectangle.
type Rect struct {
	Top    float64 `json:"top" toml:"top" bson:"top"`
	Right  float64 `json:"right" toml:"right" bson:"right"`
	Bottom float64 `json:"bottom" toml:"bottom" bson:"bottom"`
	Left   float64 `json:"left" toml:"left" bson:"left"`
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Start returns the leading edge on the axis (Left or Top).
func (r Rect) Start(a Axis) float64 {
	if a == Vertical {
		return r.Top
	}
	return r.Left
}

// End returns the trailing edge on the axis (Right or Bottom).
func (r Rect) End(a Axis) float64 {
	if a == Vertical {
		return r.Bottom
	}
	return r.Right
}

// Size returns Width or Height depending on the axis.
func (r Rect) Size(a Axis) float64 { return r.End(a) - r.Start(a) }

// Expand grows the rectangle outward by e. Negative edges shrink it,
// which is how negative CSS margins pull the linear box inward.
func (r Rect) Expand(e Edges) Rect {
	return Rect{
		Top:    r.Top - e.Top,
		Right:  r.Right + e.Right,
		Bottom: r.Bottom + e.Bottom,
		Left:   r.Left - e.Left,
	}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Top:    math.Min(r.Top, o.Top),
		Right:  math.Max(r.Right, o.Right),
		Bottom: math.Max(r.Bottom, o.Bottom),
		Left:   math.Min(r.Left, o.Left),
	}
}

// Bounds returns the union of all rectangles, or the zero Rect when rects
// is empty.
func Bounds(rects ...Rect) Rect {
	if len(rects) == 0 {
		return Rect{}
	}
	out := rects[0]
	for _, r := range rects[1:] {
		out = out.Union(r)
	}
	return out
}

// IsFinite reports whether every coordinate is a finite number.
func (r Rect) IsFinite() bool {
	return isFinite(r.Top) && isFinite(r.Right) && isFinite(r.Bottom) && isFinite(r.Left)
}

// Edges holds per-side sizes such as margins, in CSS order.
type Edges struct {
	Top    float64 `json:"top,omitempty" toml:"top" bson:"top,omitempty"`
	Right  float64 `json:"right,omitempty" toml:"right" bson:"right,omitempty"`
	Bottom float64 `json:"bottom,omitempty" toml:"bottom" bson:"bottom,omitempty"`
	Left   float64 `json:"left,omitempty" toml:"left" bson:"left,omitempty"`
}

// Get returns the size of a single side.
func (e Edges) Get(s Edge) float64 {
	switch s {
	case EdgeTop:
		return e.Top
	case EdgeRight:
		return e.Right
	case EdgeBottom:
		return e.Bottom
	default:
		return e.Left
	}
}

// IsFinite reports whether every side is a finite number.
func (e Edges) IsFinite() bool {
	return isFinite(e.Top) && isFinite(e.Right) && isFinite(e.Bottom) && isFinite(e.Left)
}

// WithinRange reports whether a and b differ by at most tolerance.
// A negative tolerance is treated as zero (exact equality).
func WithinRange(a, b, tolerance float64) bool {
	if tolerance < 0 {
		tolerance = 0
	}
	return math.Abs(a-b) <= tolerance
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
