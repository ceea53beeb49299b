// Package gravity positions off-flow and floating elements inside
// gravity-family containers.
//
// Instead of anchors, such containers place each child with a gravity
// keyword per axis (left, right, top, bottom, or a center token) and a
// signed margin on the edge the keyword pins it to. [Resolve] derives both
// from the element's bias inside its offset parent:
//
//	bias < 0.5   start token, margin = linear.start - parent.start
//	bias > 0.5   end token,   margin = parent.end - linear.end
//	bias == 0.5  center token, no margin
//
// CSS auto-centering (auto margins on both ends of an axis) short-circuits
// to the center token. Gravity tokens accumulate in a [TokenSet], which
// holds at most one token per axis.
//
// [OffsetParent] finds the element whose box margins are measured from.
// Its ID goes through the anchor chain table so that directives reference
// the outermost wrapper when the original container was restructured.
package gravity
