// Package anchor translates the measured positions of sibling elements into
// constraint-layout anchors.
//
// # Edge pass
//
// Every member's linear left and top edges are compared with the group's
// reference rectangle using [geom.WithinRange]. A match emits a direct
// anchor to the group start on that axis with offset 0. A member matching
// both axes is anchored.
//
// # Pivot
//
// Once the edge pass is done a single pivot is chosen: the first anchored
// member, else the first vertically constrained one, else the first
// horizontally constrained one, else the first member. The vertical
// preference is a compatibility convention rather than a geometric
// requirement. A pivot that is not yet anchored is pinned to the group
// start at its current distance. Members matching exactly one axis are
// pinned the same way on the open axis.
//
// # Circular pass
//
// Members matching neither edge are placed on a circle around the pivot's
// center ([Polar]). Radius and angle are rounded to whole units; a member
// whose center coincides with the pivot's gets radius 0 and angle 0.
//
// The two phases are separate types: circular inputs only exist after the
// pivot has been committed. [Resolve] is pure: it reads the group and
// returns directives plus one [tree.Annotation] per member.
package anchor
