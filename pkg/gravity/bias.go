package gravity

import (
	"math"

	"github.com/anpham6/squared-sub012/pkg/geom"
	"github.com/anpham6/squared-sub012/pkg/tree"
)

// Centered is the bias of an element centered on its axis.
const Centered = 0.5

// Bias returns the position of e along the axis inside parent, from 0
// (flush to the start edge) to 1 (flush to the end edge).
//
// A provider-supplied bias wins. Otherwise floats pin the horizontal axis
// (left → 0, right → 1) and the bias is derived from the gaps between the
// element's linear rectangle and parent, clamped at 0 and rounded to three
// decimals. An element with no gap on either side is centered.
func Bias(e *tree.Element, parent geom.Rect, axis geom.Axis) float64 {
	if v, ok := e.Bias.Get(axis); ok {
		return v
	}
	if axis == geom.Horizontal {
		switch e.Float {
		case tree.FloatLeft:
			return 0
		case tree.FloatRight:
			return 1
		}
	}
	start := math.Max(0, e.Linear.Start(axis)-parent.Start(axis))
	end := math.Max(0, parent.End(axis)-e.Linear.End(axis))
	if start+end == 0 {
		return Centered
	}
	return math.Round(start/(start+end)*1000) / 1000
}
