package chain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	var b Builder
	if err := b.Wrap("A", "B"); err != nil {
		t.Fatal(err)
	}
	tbl, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	if got := tbl.Resolve("A"); got != "B" {
		t.Errorf("Resolve(A) = %q, want B", got)
	}
	if got := tbl.Resolve("C"); got != "C" {
		t.Errorf("Resolve(C) = %q, want C unchanged", got)
	}
	if !tbl.Wrapped("A") || tbl.Wrapped("C") {
		t.Error("Wrapped() mismatch")
	}
}

func TestZeroTable(t *testing.T) {
	var tbl Table
	if got := tbl.Resolve("x"); got != "x" {
		t.Errorf("Resolve(x) = %q", got)
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() = %d", tbl.Len())
	}
}

func TestBuildCollapsesMultiLevel(t *testing.T) {
	var b Builder
	steps := [][2]string{
		{"toolbar", "collapsing"},
		{"collapsing", "appbar"},
		{"nav", "drawer"},
	}
	for _, s := range steps {
		if err := b.Wrap(s[0], s[1]); err != nil {
			t.Fatalf("Wrap(%s, %s): %v", s[0], s[1], err)
		}
	}
	tbl, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]string{
		"toolbar":    "appbar",
		"collapsing": "appbar",
		"nav":        "drawer",
	}
	if diff := cmp.Diff(want, tbl.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"collapsing", "nav", "toolbar"}, tbl.Originals()); diff != "" {
		t.Errorf("Originals() mismatch (-want +got):\n%s", diff)
	}

	wantSteps := map[string]string{
		"toolbar":    "collapsing",
		"collapsing": "appbar",
		"nav":        "drawer",
	}
	if diff := cmp.Diff(wantSteps, tbl.Steps()); diff != "" {
		t.Errorf("Steps() mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapErrors(t *testing.T) {
	var b Builder
	if err := b.Wrap("", "x"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("empty inner: %v", err)
	}
	if err := b.Wrap("x", "x"); !errors.Is(err, ErrSelfWrap) {
		t.Errorf("self wrap: %v", err)
	}
	if err := b.Wrap("x", "y"); err != nil {
		t.Fatal(err)
	}
	if err := b.Wrap("x", "y"); err != nil {
		t.Errorf("repeated step should be a no-op: %v", err)
	}
	if err := b.Wrap("x", "z"); !errors.Is(err, ErrConflict) {
		t.Errorf("conflict: %v", err)
	}
}

func TestBuildRejectsCycle(t *testing.T) {
	_, err := FromMap(map[string]string{"a": "b", "b": "c", "c": "a"})
	if !errors.Is(err, ErrCycle) {
		t.Errorf("FromMap() = %v, want ErrCycle", err)
	}
}

func TestEntriesIsCopy(t *testing.T) {
	tbl, err := FromMap(map[string]string{"a": "b"})
	if err != nil {
		t.Fatal(err)
	}
	e := tbl.Entries()
	e["a"] = "mutated"
	if tbl.Resolve("a") != "b" {
		t.Error("table mutated through Entries()")
	}
	st := tbl.Steps()
	st["a"] = "mutated"
	if tbl.Steps()["a"] != "b" {
		t.Error("table mutated through Steps()")
	}
}
