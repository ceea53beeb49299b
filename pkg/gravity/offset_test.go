package gravity

import (
	"testing"

	"github.com/anpham6/squared-sub012/pkg/chain"
	"github.com/anpham6/squared-sub012/pkg/geom"
	"github.com/anpham6/squared-sub012/pkg/tree"
)

func offsetTree(t *testing.T) *tree.Tree {
	t.Helper()
	tr := tree.New()
	els := []tree.Element{
		{ID: "root"},
		{ID: "rel", Parent: "root", Position: tree.PositionRelative},
		{ID: "wrap", Parent: "rel"},
		{ID: "abs", Parent: "wrap", Position: tree.PositionAbsolute},
		{ID: "fixed", Parent: "wrap", Position: tree.PositionFixed},
		{ID: "static", Parent: "wrap"},
		{ID: "orphan-abs", Parent: "root", Position: tree.PositionAbsolute},
		{ID: "explicit", Parent: "wrap", OffsetParent: "root"},
		{ID: "appbar", Parent: "root", Box: geom.Rect{Right: 300, Bottom: 64}},
	}
	for _, e := range els {
		if err := tr.Add(e); err != nil {
			t.Fatal(err)
		}
	}
	return tr
}

func TestOffsetParent(t *testing.T) {
	tr := offsetTree(t)
	tests := []struct {
		id   string
		want string
	}{
		{"abs", "rel"},
		{"fixed", "root"},
		{"static", "wrap"},
		{"orphan-abs", "root"},
		{"explicit", "root"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			e, _ := tr.Element(tt.id)
			op, live, ok := OffsetParent(tr, e, chain.Table{})
			if !ok {
				t.Fatal("no offset parent")
			}
			if op.ID != tt.want || live != tt.want {
				t.Errorf("OffsetParent(%s) = %s/%s, want %s", tt.id, op.ID, live, tt.want)
			}
		})
	}

	root, _ := tr.Element("root")
	if _, _, ok := OffsetParent(tr, root, chain.Table{}); ok {
		t.Error("root should have no offset parent")
	}
}

func TestOffsetParentThroughChain(t *testing.T) {
	tr := offsetTree(t)
	e, _ := tr.Element("static")

	// Wrapper not measured: geometry stays with the original container.
	links, err := chain.FromMap(map[string]string{"wrap": "ghost"})
	if err != nil {
		t.Fatal(err)
	}
	op, live, _ := OffsetParent(tr, e, links)
	if live != "ghost" || op.ID != "wrap" {
		t.Errorf("unmeasured wrapper: op=%s live=%s", op.ID, live)
	}

	// Measured wrapper: margins come from its box.
	links, err = chain.FromMap(map[string]string{"wrap": "appbar"})
	if err != nil {
		t.Fatal(err)
	}
	op, live, _ = OffsetParent(tr, e, links)
	if live != "appbar" || op.ID != "appbar" {
		t.Errorf("measured wrapper: op=%s live=%s", op.ID, live)
	}
}
