// Package tree holds the measured element hierarchy that the resolvers
// translate into layout directives.
//
// Each [Element] carries its final geometry (box, margins, linear
// rectangle), its positioning scheme, and the container [Family] it uses
// to arrange its children. Geometry is computed upstream and never changed
// here; resolvers record their decisions in separate annotation records
// keyed by element ID.
//
// # Building a Tree
//
//	t := tree.New()
//	_ = t.Add(tree.NewElement("root", "", geom.Rect{Right: 400, Bottom: 300}, geom.Edges{}))
//	_ = t.Add(tree.NewElement("title", "root", geom.Rect{Right: 200, Bottom: 40}, geom.Edges{}))
//	if err := t.Validate(); err != nil {
//		// dangling parent, multiple roots, cycle, or NaN geometry
//	}
//
// Parents may be added after their children; [Tree.Validate] checks the
// finished structure.
package tree
