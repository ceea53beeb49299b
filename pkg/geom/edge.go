package geom

import "fmt"

// Edge names one side of a rectangle.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

var edgeNames = [...]string{"top", "right", "bottom", "left"}

// String returns the lowercase CSS name of the edge.
func (e Edge) String() string {
	if e < EdgeTop || e > EdgeLeft {
		return fmt.Sprintf("Edge(%d)", int(e))
	}
	return edgeNames[e]
}

// Axis returns the axis the edge lies on.
func (e Edge) Axis() Axis {
	if e == EdgeTop || e == EdgeBottom {
		return Vertical
	}
	return Horizontal
}

// Opposite returns the facing edge on the same axis.
func (e Edge) Opposite() Edge {
	return (e + 2) % 4
}

// StartEdge returns Left for the horizontal axis and Top for the vertical one.
func StartEdge(a Axis) Edge {
	if a == Vertical {
		return EdgeTop
	}
	return EdgeLeft
}

// EndEdge returns Right for the horizontal axis and Bottom for the vertical one.
func EndEdge(a Axis) Edge {
	if a == Vertical {
		return EdgeBottom
	}
	return EdgeRight
}

// MarshalText encodes the edge by name so it can key JSON objects.
func (e Edge) MarshalText() ([]byte, error) {
	if e < EdgeTop || e > EdgeLeft {
		return nil, fmt.Errorf("invalid edge %d", int(e))
	}
	return []byte(edgeNames[e]), nil
}

// UnmarshalText decodes an edge name.
func (e *Edge) UnmarshalText(b []byte) error {
	for i, n := range edgeNames {
		if string(b) == n {
			*e = Edge(i)
			return nil
		}
	}
	return fmt.Errorf("unknown edge %q", string(b))
}
