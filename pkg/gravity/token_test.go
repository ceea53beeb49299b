package gravity

import (
	"encoding/json"
	"testing"

	"github.com/anpham6/squared-sub012/pkg/geom"
)

func TestTokenSetAccumulates(t *testing.T) {
	var s TokenSet
	if !s.Add(Left) {
		t.Fatal("Add(left) failed")
	}
	if !s.Add(Bottom) {
		t.Fatal("Add(bottom) failed")
	}
	if s.Add(Right) {
		t.Error("Add(right) should refuse an opposing token")
	}
	if !s.Add(Left) {
		t.Error("re-adding left should succeed")
	}
	if got := s.String(); got != "left|bottom" {
		t.Errorf("String() = %q, want left|bottom", got)
	}
	if !s.Has(Left) || s.Has(Right) {
		t.Error("Has() mismatch")
	}
	if s.Get(geom.Vertical) != Bottom {
		t.Errorf("Get(vertical) = %q", s.Get(geom.Vertical))
	}
}

func TestTokenSetCenter(t *testing.T) {
	s := NewTokenSet(CenterHorizontal, CenterVertical)
	if got := s.String(); got != "center" {
		t.Errorf("String() = %q, want center", got)
	}
	if !s.Has(Center) {
		t.Error("Has(center) = false")
	}

	var c TokenSet
	if !c.Add(Center) {
		t.Fatal("Add(center) failed")
	}
	if c != s {
		t.Errorf("Add(center) = %+v, want %+v", c, s)
	}

	half := NewTokenSet(CenterHorizontal, Top)
	if got := half.String(); got != "center_horizontal|top" {
		t.Errorf("String() = %q", got)
	}
}

func TestTokenSetUnionKeepsFirst(t *testing.T) {
	a := NewTokenSet(Left)
	b := NewTokenSet(Right, Top)
	got := a.Union(b)
	if got.String() != "left|top" {
		t.Errorf("Union() = %q, want left|top", got.String())
	}
	if a.String() != "left" {
		t.Error("Union mutated receiver")
	}
}

func TestTokenSetText(t *testing.T) {
	var s TokenSet
	if err := json.Unmarshal([]byte(`"end|center_vertical"`), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if s.Get(geom.Horizontal) != End || s.Get(geom.Vertical) != CenterVertical {
		t.Errorf("decoded %+v", s)
	}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"end|center_vertical"` {
		t.Errorf("Marshal = %s", data)
	}

	if err := s.UnmarshalText([]byte("left|right")); err == nil {
		t.Error("opposing tokens should fail to decode")
	}
	if err := s.UnmarshalText([]byte("sideways")); err == nil {
		t.Error("unknown token should fail to decode")
	}
	if err := s.UnmarshalText(nil); err != nil || !s.IsEmpty() {
		t.Errorf("empty decode: %v, %+v", err, s)
	}
}
