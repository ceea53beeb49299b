package tree

import (
	"errors"
	"math"
	"testing"

	"github.com/anpham6/squared-sub012/pkg/geom"
)

func box(l, t, r, b float64) geom.Rect {
	return geom.Rect{Left: l, Top: t, Right: r, Bottom: b}
}

func build(t *testing.T, els ...Element) *Tree {
	t.Helper()
	tr := New()
	for _, e := range els {
		if err := tr.Add(e); err != nil {
			t.Fatalf("Add(%s): %v", e.ID, err)
		}
	}
	return tr
}

func TestAdd(t *testing.T) {
	tr := New()
	if err := tr.Add(Element{}); !errors.Is(err, ErrInvalidElementID) {
		t.Errorf("empty ID: got %v, want ErrInvalidElementID", err)
	}
	if err := tr.Add(Element{ID: "a"}); err != nil {
		t.Fatalf("Add(a): %v", err)
	}
	if err := tr.Add(Element{ID: "a"}); !errors.Is(err, ErrDuplicateElementID) {
		t.Errorf("duplicate: got %v, want ErrDuplicateElementID", err)
	}
	e, ok := tr.Element("a")
	if !ok {
		t.Fatal("Element(a) not found")
	}
	if e.Meta == nil {
		t.Error("Meta should be initialized")
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr.Len())
	}
}

func TestNewElementDerivesLinear(t *testing.T) {
	e := NewElement("a", "", box(10, 10, 20, 20), geom.Edges{Left: 5, Bottom: 2})
	want := box(5, 10, 20, 22)
	if e.Linear != want {
		t.Errorf("Linear = %+v, want %+v", e.Linear, want)
	}
}

func TestNavigation(t *testing.T) {
	tr := build(t,
		Element{ID: "c2", Parent: "p"},
		Element{ID: "root"},
		Element{ID: "p", Parent: "root"},
		Element{ID: "c1", Parent: "p"},
	)

	root, ok := tr.Root()
	if !ok || root.ID != "root" {
		t.Fatalf("Root() = %v, %v", root, ok)
	}

	kids := tr.Children("p")
	if len(kids) != 2 || kids[0].ID != "c2" || kids[1].ID != "c1" {
		t.Errorf("Children(p) = %v, want insertion order [c2 c1]", ids(kids))
	}

	if p, ok := tr.Parent("c1"); !ok || p.ID != "p" {
		t.Errorf("Parent(c1) = %v, %v", p, ok)
	}
	if _, ok := tr.Parent("root"); ok {
		t.Error("root should have no parent")
	}

	anc := ids(tr.Ancestors("c1"))
	if len(anc) != 2 || anc[0] != "p" || anc[1] != "root" {
		t.Errorf("Ancestors(c1) = %v, want [p root]", anc)
	}

	cont := ids(tr.Containers())
	if len(cont) != 2 || cont[0] != "root" || cont[1] != "p" {
		t.Errorf("Containers() = %v, want [root p]", cont)
	}
}

func TestWalk(t *testing.T) {
	tr := build(t,
		Element{ID: "root"},
		Element{ID: "a", Parent: "root"},
		Element{ID: "a1", Parent: "a"},
		Element{ID: "b", Parent: "root"},
	)

	var got []string
	var depths []int
	err := tr.Walk(func(e *Element, depth int) error {
		got = append(got, e.ID)
		depths = append(depths, depth)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	want := []string{"root", "a", "a1", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Walk order = %v, want %v", got, want)
		}
	}
	if depths[2] != 2 || depths[3] != 1 {
		t.Errorf("depths = %v", depths)
	}

	stop := errors.New("stop")
	n := 0
	err = tr.Walk(func(*Element, int) error {
		n++
		if n == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) || n != 2 {
		t.Errorf("Walk did not stop: err=%v n=%d", err, n)
	}

	if err := New().Walk(func(*Element, int) error { return nil }); !errors.Is(err, ErrNoRoot) {
		t.Errorf("empty tree Walk: got %v, want ErrNoRoot", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		els  []Element
		want error
	}{
		{
			name: "valid",
			els:  []Element{{ID: "r"}, {ID: "a", Parent: "r"}},
		},
		{
			name: "empty",
			want: ErrNoRoot,
		},
		{
			name: "unknown parent",
			els:  []Element{{ID: "r"}, {ID: "a", Parent: "ghost"}},
			want: ErrUnknownParent,
		},
		{
			name: "multiple roots",
			els:  []Element{{ID: "r"}, {ID: "s"}},
			want: ErrMultipleRoots,
		},
		{
			name: "cycle beside root",
			els:  []Element{{ID: "r"}, {ID: "a", Parent: "b"}, {ID: "b", Parent: "a"}},
			want: ErrCycle,
		},
		{
			name: "cycle only",
			els:  []Element{{ID: "a", Parent: "b"}, {ID: "b", Parent: "a"}},
			want: ErrCycle,
		},
		{
			name: "NaN geometry",
			els:  []Element{{ID: "r", Box: geom.Rect{Left: math.NaN()}}},
			want: ErrNonFiniteGeometry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := build(t, tt.els...)
			err := tr.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAncestorsStopsOnCycle(t *testing.T) {
	tr := build(t, Element{ID: "a", Parent: "b"}, Element{ID: "b", Parent: "a"})
	if got := ids(tr.Ancestors("a")); len(got) != 1 || got[0] != "b" {
		t.Errorf("Ancestors(a) = %v, want [b]", got)
	}
}

func TestParseEnums(t *testing.T) {
	if p, err := ParsePosition("absolute"); err != nil || p != PositionAbsolute {
		t.Errorf("ParsePosition(absolute) = %v, %v", p, err)
	}
	if p, _ := ParsePosition(""); p != PositionStatic {
		t.Errorf("ParsePosition(\"\") = %v", p)
	}
	if _, err := ParsePosition("sticky"); err == nil {
		t.Error("ParsePosition(sticky) should fail")
	}
	if f, err := ParseFloat("right"); err != nil || f != FloatRight {
		t.Errorf("ParseFloat(right) = %v, %v", f, err)
	}
	if f, err := ParseFamily("gravity"); err != nil || f != FamilyGravity {
		t.Errorf("ParseFamily(gravity) = %v, %v", f, err)
	}
	if d, err := ParseDirection("rtl"); err != nil || d != RTL {
		t.Errorf("ParseDirection(rtl) = %v, %v", d, err)
	}
	if _, err := ParseDirection("ttb"); err == nil {
		t.Error("ParseDirection(ttb) should fail")
	}
}

func TestElementPredicates(t *testing.T) {
	e := Element{Position: PositionFixed}
	if !e.IsOffFlow() || !e.IsPositioned() {
		t.Error("fixed should be off-flow and positioned")
	}
	e = Element{Position: PositionRelative, Float: FloatLeft}
	if e.IsOffFlow() || !e.IsPositioned() || !e.IsFloating() {
		t.Error("relative float predicates wrong")
	}

	am := AutoMargin{Left: true, Right: true, Top: true}
	if !am.Centers(geom.Horizontal) || am.Centers(geom.Vertical) {
		t.Error("AutoMargin.Centers wrong")
	}

	h := 0.25
	b := Bias{Horizontal: &h}
	if v, ok := b.Get(geom.Horizontal); !ok || v != 0.25 {
		t.Errorf("Bias.Get(horizontal) = %v, %v", v, ok)
	}
	if _, ok := b.Get(geom.Vertical); ok {
		t.Error("vertical bias should be absent")
	}
}

func ids(els []*Element) []string {
	out := make([]string, len(els))
	for i, e := range els {
		out[i] = e.ID
	}
	return out
}
