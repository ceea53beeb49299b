// Package geom provides the geometry vocabulary shared by the resolvers.
//
// Rectangles use CSS edge naming ({Top, Right, Bottom, Left}) in a
// top-left origin space where Y grows downward, matching the output of the
// box-model stage that measures elements. Three rectangles describe each
// element:
//
//   - box: the resolved border box, exclusive of margins
//   - linear: box expanded by margins (see [Rect.Expand]); all edge-sharing
//     comparisons use it
//   - center: the midpoint of box (see [Rect.Center])
//
// Edge comparisons go through [WithinRange] so that sub-pixel rounding in
// the measuring stage does not break anchor detection.
//
// Polar positions use the constraint-layout convention: 0° points up and
// angles grow clockwise. [FromPolar] reconstructs a point from a radius and
// angle around an origin.
package geom
