package anchor

import (
	"fmt"

	"github.com/anpham6/squared-sub012/pkg/geom"
)

// Axis is the dimension an anchor directive constrains.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
	AxisCircular
)

var axisNames = [...]string{"horizontal", "vertical", "circular"}

func (a Axis) String() string {
	if a < AxisHorizontal || a > AxisCircular {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

// MarshalText encodes the axis by name.
func (a Axis) MarshalText() ([]byte, error) {
	if a < AxisHorizontal || a > AxisCircular {
		return nil, fmt.Errorf("invalid anchor axis %d", int(a))
	}
	return []byte(axisNames[a]), nil
}

// UnmarshalText decodes an axis name.
func (a *Axis) UnmarshalText(b []byte) error {
	for i, n := range axisNames {
		if string(b) == n {
			*a = Axis(i)
			return nil
		}
	}
	return fmt.Errorf("unknown anchor axis %q", string(b))
}

func axisOf(a geom.Axis) Axis {
	if a == geom.Vertical {
		return AxisVertical
	}
	return AxisHorizontal
}

// Kind distinguishes how a directive was derived.
type Kind int

const (
	// KindEdge binds the element's edge to the group's reference edge.
	KindEdge Kind = iota
	// KindOffset binds the element's edge to the group's reference edge at
	// a fixed distance. Pivot default anchors and open axes of partially
	// matched elements use it.
	KindOffset
	// KindCircular places the element's center on a circle around the pivot.
	KindCircular
)

var kindNames = [...]string{"edge", "offset", "circular"}

func (k Kind) String() string {
	if k < KindEdge || k > KindCircular {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if k < KindEdge || k > KindCircular {
		return nil, fmt.Errorf("invalid anchor kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, n := range kindNames {
		if string(b) == n {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown anchor kind %q", string(b))
}

// Directive is one anchor emitted for an element.
//
// Edge and offset directives set Edge (the reference edge name, "left" or
// "top") and Offset; Target is the container whose reference edge is used.
// Circular directives set Radius and Angle; Target is the pivot.
type Directive struct {
	ID     string  `json:"id"`
	Axis   Axis    `json:"axis"`
	Kind   Kind    `json:"kind"`
	Target string  `json:"target"`
	Edge   string  `json:"edge,omitempty"`
	Offset float64 `json:"offset,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Angle  float64 `json:"angle,omitempty"`
}

// IsCircular reports whether the directive is a polar anchor.
func (d Directive) IsCircular() bool { return d.Axis == AxisCircular }

func (d Directive) String() string {
	if d.IsCircular() {
		return fmt.Sprintf("%s circle(%s r=%g a=%g)", d.ID, d.Target, d.Radius, d.Angle)
	}
	return fmt.Sprintf("%s %s %s(%s.%s%+g)", d.ID, d.Axis, d.Kind, d.Target, d.Edge, d.Offset)
}

func edgeDirective(id, target string, a geom.Axis, offset float64) Directive {
	kind := KindEdge
	if offset != 0 {
		kind = KindOffset
	}
	return Directive{
		ID:     id,
		Axis:   axisOf(a),
		Kind:   kind,
		Target: target,
		Edge:   geom.StartEdge(a).String(),
		Offset: offset,
	}
}
