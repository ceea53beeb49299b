package gravity

import (
	"github.com/anpham6/squared-sub012/pkg/geom"
	"github.com/anpham6/squared-sub012/pkg/tree"
)

// Options configures gravity resolution.
type Options struct {
	// SupportRTL emits start/end instead of left/right so the output
	// mirrors under a right-to-left locale.
	SupportRTL bool
}

// Target is the offset parent an element is resolved against.
type Target struct {
	// ID is the live anchor ID, after chain substitution.
	ID string
	// Box is the border box margins are measured from.
	Box geom.Rect
}

// Margins holds signed pixel margins keyed by physical edge.
type Margins map[geom.Edge]float64

// BiasPair is the bias used on each axis.
type BiasPair struct {
	Horizontal float64 `json:"horizontal"`
	Vertical   float64 `json:"vertical"`
}

// Directive is the gravity output for one element.
type Directive struct {
	ID           string   `json:"id"`
	OffsetParent string   `json:"offset_parent"`
	Gravity      TokenSet `json:"gravity"`
	Margins      Margins  `json:"margins,omitempty"`
	Bias         BiasPair `json:"bias"`
}

// Resolve computes gravity tokens and margins for e against target on both
// axes.
//
// Per axis: both auto margins give the center token directly. Otherwise a
// bias below 0.5 gives the start token and a start-edge margin of
// linear.start - target.start; above 0.5 the end token and an end-edge
// margin of target.end - linear.end; exactly 0.5 the center token and no
// margin. The returned annotation marks e positioned.
func Resolve(e *tree.Element, target Target, opts Options) (Directive, tree.Annotation) {
	d := Directive{
		ID:           e.ID,
		OffsetParent: target.ID,
		Margins:      Margins{},
	}
	d.Bias.Horizontal = resolveAxis(&d, e, target.Box, geom.Horizontal, opts)
	d.Bias.Vertical = resolveAxis(&d, e, target.Box, geom.Vertical, opts)
	if len(d.Margins) == 0 {
		d.Margins = nil
	}
	return d, tree.Annotation{Positioned: true}
}

func resolveAxis(d *Directive, e *tree.Element, box geom.Rect, axis geom.Axis, opts Options) float64 {
	if e.AutoMargin.Centers(axis) {
		d.Gravity.Add(centerToken(axis))
		return Centered
	}
	bias := Bias(e, box, axis)
	switch {
	case bias < Centered:
		d.Gravity.Add(startToken(axis, e.Direction, opts))
		d.Margins[geom.StartEdge(axis)] = e.Linear.Start(axis) - box.Start(axis)
	case bias > Centered:
		d.Gravity.Add(endToken(axis, e.Direction, opts))
		d.Margins[geom.EndEdge(axis)] = box.End(axis) - e.Linear.End(axis)
	default:
		d.Gravity.Add(centerToken(axis))
	}
	return bias
}

func centerToken(axis geom.Axis) Token {
	if axis == geom.Vertical {
		return CenterVertical
	}
	return CenterHorizontal
}

// startToken names the physical start edge of the axis (left or top).
func startToken(axis geom.Axis, dir tree.Direction, opts Options) Token {
	if axis == geom.Vertical {
		return Top
	}
	if !opts.SupportRTL {
		return Left
	}
	if dir == tree.RTL {
		return End
	}
	return Start
}

// endToken names the physical end edge of the axis (right or bottom).
func endToken(axis geom.Axis, dir tree.Direction, opts Options) Token {
	if axis == geom.Vertical {
		return Bottom
	}
	if !opts.SupportRTL {
		return Right
	}
	if dir == tree.RTL {
		return Start
	}
	return End
}
