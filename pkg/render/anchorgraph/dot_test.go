package anchorgraph

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/anpham6/squared-sub012/pkg/anchor"
	"github.com/anpham6/squared-sub012/pkg/document"
	"github.com/anpham6/squared-sub012/pkg/geom"
	"github.com/anpham6/squared-sub012/pkg/gravity"
)

func sample() *document.Result {
	return &document.Result{
		Anchors: []anchor.Directive{
			{ID: "header", Axis: anchor.AxisHorizontal, Kind: anchor.KindEdge, Target: "page", Edge: "left"},
			{ID: "hero", Axis: anchor.AxisVertical, Kind: anchor.KindOffset, Target: "page", Edge: "top", Offset: 56},
			{ID: "badge", Axis: anchor.AxisCircular, Kind: anchor.KindCircular, Target: "header", Radius: 303, Angle: 195},
		},
		Gravity: []gravity.Directive{{
			ID:           "back",
			OffsetParent: "appbar",
			Gravity:      gravity.NewTokenSet(gravity.Left, gravity.CenterVertical),
			Margins:      gravity.Margins{geom.EdgeLeft: 8},
		}},
		Pivots: map[string]string{"page": "header"},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sample(), Options{})

	for _, want := range []string{
		`"header" -> "page" [label="left"];`,
		`"hero" -> "page" [label="top+56"];`,
		`"badge" -> "header" [style=dashed, color=steelblue, label="r=303 a=195°"];`,
		`"back" -> "appbar" [style=dotted, color=gray40, label="left|center_vertical"];`,
		`"header" [label="header", fillcolor=lightyellow, penwidth=2];`,
		`"page" [label="page"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s\n%s", want, dot)
		}
	}
	if !strings.HasPrefix(dot, "digraph anchors {") || !strings.HasSuffix(dot, "}\n") {
		t.Error("DOT is not a complete digraph")
	}
}

func TestToDOTSkipGravity(t *testing.T) {
	dot := ToDOT(sample(), Options{SkipGravity: true})
	if strings.Contains(dot, "appbar") || strings.Contains(dot, "dotted") {
		t.Errorf("gravity edges rendered with SkipGravity:\n%s", dot)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	first := ToDOT(sample(), Options{})
	for range 5 {
		if got := ToDOT(sample(), Options{}); got != first {
			t.Fatal("ToDOT output changed between calls")
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="80pt" height="40pt" viewBox="0.00 0.00 80.00 40.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := normalizeViewBox(in)
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 80.00 40.00" width="80" height="40"><g/></svg>`
	if string(got) != want {
		t.Errorf("normalizeViewBox() = %s", got)
	}

	plain := []byte("<svg></svg>")
	if !bytes.Equal(normalizeViewBox(plain), plain) {
		t.Error("svg without viewBox should pass through")
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	svg, err := RenderSVG(context.Background(), ToDOT(sample(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) || !bytes.Contains(svg, []byte("badge")) {
		t.Errorf("unexpected SVG output: %.200s", svg)
	}
}
