package gravity

import (
	"github.com/anpham6/squared-sub012/pkg/chain"
	"github.com/anpham6/squared-sub012/pkg/tree"
)

// OffsetParent finds the element e is positioned against and the live ID
// directives should reference.
//
// An explicit provider value wins when it names a known element. Otherwise
// fixed elements use the tree root, absolute elements the nearest
// positioned ancestor (the root if there is none), and everything else its
// structural parent. The live ID is the result passed through chain.
//
// If the live wrapper was measured too, its element is returned so margins
// are computed against the box the element ends up inside. The root has no
// offset parent and reports false.
func OffsetParent(t *tree.Tree, e *tree.Element, links chain.Table) (*tree.Element, string, bool) {
	op, ok := structuralOffsetParent(t, e)
	if !ok {
		return nil, "", false
	}
	live := links.Resolve(op.ID)
	if w, ok := t.Element(live); ok {
		op = w
	}
	return op, live, true
}

func structuralOffsetParent(t *tree.Tree, e *tree.Element) (*tree.Element, bool) {
	if e.OffsetParent != "" && e.OffsetParent != e.ID {
		if op, ok := t.Element(e.OffsetParent); ok {
			return op, true
		}
	}
	if e.IsRoot() {
		return nil, false
	}
	switch e.Position {
	case tree.PositionFixed:
		return t.Root()
	case tree.PositionAbsolute:
		for _, a := range t.Ancestors(e.ID) {
			if a.IsPositioned() {
				return a, true
			}
		}
		return t.Root()
	}
	return t.Parent(e.ID)
}
