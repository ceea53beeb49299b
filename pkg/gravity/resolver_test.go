package gravity

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/anpham6/squared-sub012/pkg/geom"
	"github.com/anpham6/squared-sub012/pkg/tree"
)

var parentBox = geom.Rect{Left: 0, Top: 0, Right: 200, Bottom: 100}

func element(left, top, w, h float64) *tree.Element {
	e := tree.NewElement("e", "p", geom.Rect{Left: left, Top: top, Right: left + w, Bottom: top + h}, geom.Edges{})
	return &e
}

func ptr(v float64) *float64 { return &v }

func TestResolveBiasBoundary(t *testing.T) {
	tests := []struct {
		name    string
		bias    float64
		gravity string
		margins Margins
	}{
		{
			name:    "centered",
			bias:    0.5,
			gravity: "center_horizontal|top",
			margins: Margins{geom.EdgeTop: 10},
		},
		{
			name:    "start",
			bias:    0.3,
			gravity: "left|top",
			margins: Margins{geom.EdgeLeft: 20, geom.EdgeTop: 10},
		},
		{
			name:    "end",
			bias:    0.8,
			gravity: "right|top",
			margins: Margins{geom.EdgeRight: 140, geom.EdgeTop: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := element(20, 10, 40, 20)
			e.Bias.Horizontal = ptr(tt.bias)

			d, ann := Resolve(e, Target{ID: "p", Box: parentBox}, Options{})
			if got := d.Gravity.String(); got != tt.gravity {
				t.Errorf("gravity = %q, want %q", got, tt.gravity)
			}
			if diff := cmp.Diff(tt.margins, d.Margins); diff != "" {
				t.Errorf("margins mismatch (-want +got):\n%s", diff)
			}
			if !ann.Positioned {
				t.Error("annotation not positioned")
			}
			if d.OffsetParent != "p" || d.Bias.Horizontal != tt.bias {
				t.Errorf("directive = %+v", d)
			}
		})
	}
}

func TestResolveAutoMarginsCenter(t *testing.T) {
	e := element(10, 30, 40, 20)
	e.Bias.Horizontal = ptr(0.1)
	e.AutoMargin = tree.AutoMargin{Left: true, Right: true, Top: true, Bottom: true}

	d, _ := Resolve(e, Target{ID: "p", Box: parentBox}, Options{})
	if got := d.Gravity.String(); got != "center" {
		t.Errorf("gravity = %q, want center", got)
	}
	if d.Margins != nil {
		t.Errorf("margins = %v, want none", d.Margins)
	}
}

func TestResolveFloat(t *testing.T) {
	e := element(90, 80, 20, 20)
	e.Float = tree.FloatRight

	d, _ := Resolve(e, Target{ID: "p", Box: parentBox}, Options{})
	want := Margins{geom.EdgeRight: 90, geom.EdgeBottom: 0}
	if got := d.Gravity.String(); got != "right|bottom" {
		t.Errorf("gravity = %q, want right|bottom", got)
	}
	if diff := cmp.Diff(want, d.Margins); diff != "" {
		t.Errorf("margins mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveLocalizedTokens(t *testing.T) {
	tests := []struct {
		name string
		dir  tree.Direction
		opts Options
		bias float64
		want Token
	}{
		{"physical start", tree.LTR, Options{}, 0.2, Left},
		{"physical rtl ignored", tree.RTL, Options{}, 0.2, Left},
		{"ltr start", tree.LTR, Options{SupportRTL: true}, 0.2, Start},
		{"ltr end", tree.LTR, Options{SupportRTL: true}, 0.9, End},
		{"rtl start edge", tree.RTL, Options{SupportRTL: true}, 0.2, End},
		{"rtl end edge", tree.RTL, Options{SupportRTL: true}, 0.9, Start},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := element(20, 10, 40, 20)
			e.Direction = tt.dir
			e.Bias.Horizontal = ptr(tt.bias)

			d, _ := Resolve(e, Target{ID: "p", Box: parentBox}, tt.opts)
			if got := d.Gravity.Get(geom.Horizontal); got != tt.want {
				t.Errorf("horizontal token = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBiasDerivation(t *testing.T) {
	box := geom.Rect{Left: 0, Top: 0, Right: 40, Bottom: 40}
	tests := []struct {
		name string
		e    *tree.Element
		axis geom.Axis
		want float64
	}{
		{"rounded", element(10, 0, 10, 10), geom.Horizontal, 0.333},
		{"flush start", element(0, 0, 10, 10), geom.Horizontal, 0},
		{"flush end", element(30, 0, 10, 10), geom.Horizontal, 1},
		{"fills axis", element(0, 0, 40, 40), geom.Vertical, 0.5},
		{"overflow clamps", element(-10, 0, 20, 10), geom.Horizontal, 0},
		{"vertical", element(0, 25, 10, 10), geom.Vertical, 0.833},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bias(tt.e, box, tt.axis); got != tt.want {
				t.Errorf("Bias() = %v, want %v", got, tt.want)
			}
		})
	}

	left := element(20, 0, 10, 10)
	left.Float = tree.FloatLeft
	if got := Bias(left, box, geom.Horizontal); got != 0 {
		t.Errorf("float left bias = %v, want 0", got)
	}
	if got := Bias(left, box, geom.Vertical); got != 0 {
		t.Errorf("float left vertical bias = %v, want derived 0", got)
	}
}
