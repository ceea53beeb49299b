package tree

import (
	"fmt"

	"github.com/anpham6/squared-sub012/pkg/geom"
)

// Metadata stores arbitrary key-value pairs supplied by the measuring stage
// (tag names, source selectors). Resolvers never read it; it travels
// through to the directive output untouched.
type Metadata map[string]any

// Position is the CSS positioning scheme of an element.
type Position int

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

var positionNames = [...]string{"static", "relative", "absolute", "fixed"}

func (p Position) String() string {
	if p < PositionStatic || p > PositionFixed {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p]
}

// ParsePosition maps a CSS position keyword to a Position. The empty string
// is static.
func ParsePosition(s string) (Position, error) {
	if s == "" {
		return PositionStatic, nil
	}
	for i, n := range positionNames {
		if n == s {
			return Position(i), nil
		}
	}
	return PositionStatic, fmt.Errorf("unknown position %q", s)
}

// Float is the CSS float side of an element.
type Float int

const (
	FloatNone Float = iota
	FloatLeft
	FloatRight
)

var floatNames = [...]string{"none", "left", "right"}

func (f Float) String() string {
	if f < FloatNone || f > FloatRight {
		return fmt.Sprintf("Float(%d)", int(f))
	}
	return floatNames[f]
}

// ParseFloat maps a CSS float keyword to a Float. The empty string is none.
func ParseFloat(s string) (Float, error) {
	if s == "" {
		return FloatNone, nil
	}
	for i, n := range floatNames {
		if n == s {
			return Float(i), nil
		}
	}
	return FloatNone, fmt.Errorf("unknown float %q", s)
}

// Family is the output container grammar an element uses to arrange its
// children.
type Family int

const (
	// FamilyNone marks a leaf, or a container whose children are not
	// arranged by this module.
	FamilyNone Family = iota
	// FamilyConstraint arranges children with edge and circular anchors.
	FamilyConstraint
	// FamilyGravity arranges children with gravity tokens and margins.
	FamilyGravity
)

var familyNames = [...]string{"none", "constraint", "gravity"}

func (f Family) String() string {
	if f < FamilyNone || f > FamilyGravity {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// ParseFamily maps a family name to a Family. The empty string is none.
func ParseFamily(s string) (Family, error) {
	if s == "" {
		return FamilyNone, nil
	}
	for i, n := range familyNames {
		if n == s {
			return Family(i), nil
		}
	}
	return FamilyNone, fmt.Errorf("unknown family %q", s)
}

// Direction is the inline writing direction.
type Direction int

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection maps "ltr"/"rtl" to a Direction. The empty string is ltr.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	}
	return LTR, fmt.Errorf("unknown direction %q", s)
}

// AutoMargin flags the sides whose CSS margin was "auto".
type AutoMargin struct {
	Top, Right, Bottom, Left bool
}

// Centers reports whether both margins on the axis are auto, which is how
// CSS centers a box along that axis.
func (a AutoMargin) Centers(axis geom.Axis) bool {
	if axis == geom.Vertical {
		return a.Top && a.Bottom
	}
	return a.Left && a.Right
}

// Bias is an optional provider-supplied position in [0,1] per axis.
// A nil component means the bias is derived from geometry.
type Bias struct {
	Horizontal *float64
	Vertical   *float64
}

// Get returns the bias on the axis and whether it was supplied.
func (b Bias) Get(axis geom.Axis) (float64, bool) {
	p := b.Horizontal
	if axis == geom.Vertical {
		p = b.Vertical
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Element is a measured node of the tree. All geometry is final and
// read-only; resolvers annotate elements through separate records.
type Element struct {
	ID     string // Unique identifier
	Parent string // Structural parent ID; empty for the root

	Box    geom.Rect  // Border box, exclusive of margins
	Margin geom.Edges // Resolved margins
	Linear geom.Rect  // Box expanded by margins

	Position     Position
	Float        Float
	Direction    Direction
	Family       Family // How this element arranges its own children
	AutoMargin   AutoMargin
	Bias         Bias
	OffsetParent string // Explicit offset parent from the measuring stage, if known

	Meta Metadata
}

// NewElement creates an element whose linear rectangle is derived from the
// box and margins.
func NewElement(id, parent string, box geom.Rect, margin geom.Edges) Element {
	return Element{
		ID:     id,
		Parent: parent,
		Box:    box,
		Margin: margin,
		Linear: box.Expand(margin),
	}
}

// Center returns the midpoint of the element's box.
func (e *Element) Center() geom.Point { return e.Box.Center() }

// IsRoot reports whether the element has no structural parent.
func (e *Element) IsRoot() bool { return e.Parent == "" }

// IsOffFlow reports whether the element is absolutely or fixed positioned.
func (e *Element) IsOffFlow() bool {
	return e.Position == PositionAbsolute || e.Position == PositionFixed
}

// IsFloating reports whether the element floats left or right.
func (e *Element) IsFloating() bool { return e.Float != FloatNone }

// IsPositioned reports whether the element establishes a containing block
// for absolutely positioned descendants.
func (e *Element) IsPositioned() bool { return e.Position != PositionStatic }

// IsFinite reports whether all geometry is made of finite numbers.
func (e *Element) IsFinite() bool {
	return e.Box.IsFinite() && e.Linear.IsFinite() && e.Margin.IsFinite()
}
