package chain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrInvalidID is returned by [Builder.Wrap] when either ID is empty.
	ErrInvalidID = errors.New("chain: container ID must not be empty")

	// ErrSelfWrap is returned by [Builder.Wrap] when a container is wrapped
	// by itself.
	ErrSelfWrap = errors.New("chain: container cannot wrap itself")

	// ErrConflict is returned by [Builder.Wrap] when a container is already
	// wrapped by a different outer container.
	ErrConflict = errors.New("chain: container already wrapped")

	// ErrCycle is returned by [Builder.Build] when wrapping steps loop back
	// on themselves.
	ErrCycle = errors.New("chain: wrapping steps form a cycle")
)

// Table maps an original container ID to the outermost wrapper that
// replaced it during restructuring. A Table is immutable once built and is
// safe for concurrent use. The zero value is an empty table.
type Table struct {
	live  map[string]string
	steps map[string]string
}

// Resolve returns the live anchor target for id: the outermost wrapper if
// id was restructured, otherwise id itself.
func (t Table) Resolve(id string) string {
	if w, ok := t.live[id]; ok {
		return w
	}
	return id
}

// Wrapped reports whether id has a live wrapper.
func (t Table) Wrapped(id string) bool {
	_, ok := t.live[id]
	return ok
}

// Len returns the number of substituted containers.
func (t Table) Len() int { return len(t.live) }

// Entries returns a copy of the original → outermost mapping.
func (t Table) Entries() map[string]string { return maps.Clone(t.live) }

// Steps returns a copy of the direct wrapping steps (inner → outer) the
// table was built from.
func (t Table) Steps() map[string]string { return maps.Clone(t.steps) }

// Originals returns the substituted container IDs in sorted order.
func (t Table) Originals() []string {
	return slices.Sorted(maps.Keys(t.live))
}

// Builder accumulates wrapping steps recorded by the restructuring stage.
// Each step says "inner was wrapped by outer"; multi-level wrapping is
// recorded as several steps and collapsed by [Builder.Build].
//
// The zero value is ready to use. A Builder is not safe for concurrent use.
type Builder struct {
	outer map[string]string
	order []string
}

// Wrap records that inner was wrapped by outer. Recording the same step
// twice is a no-op.
func (b *Builder) Wrap(inner, outer string) error {
	if inner == "" || outer == "" {
		return ErrInvalidID
	}
	if inner == outer {
		return fmt.Errorf("%w: %s", ErrSelfWrap, inner)
	}
	if b.outer == nil {
		b.outer = make(map[string]string)
	}
	if prev, ok := b.outer[inner]; ok {
		if prev == outer {
			return nil
		}
		return fmt.Errorf("%w: %s by %s, not %s", ErrConflict, inner, prev, outer)
	}
	b.outer[inner] = outer
	b.order = append(b.order, inner)
	return nil
}

// Build collapses the recorded steps so that every original container maps
// directly to its outermost wrapper.
func (b *Builder) Build() (Table, error) {
	live := make(map[string]string, len(b.order))
	for _, id := range b.order {
		w, err := b.outermost(id)
		if err != nil {
			return Table{}, err
		}
		live[id] = w
	}
	return Table{live: live, steps: maps.Clone(b.outer)}, nil
}

func (b *Builder) outermost(id string) (string, error) {
	seen := map[string]bool{id: true}
	cur := id
	for {
		next, ok := b.outer[cur]
		if !ok {
			return cur, nil
		}
		if seen[next] {
			return "", fmt.Errorf("%w: through %s", ErrCycle, id)
		}
		seen[next] = true
		cur = next
	}
}

// FromMap builds a table from direct wrapping steps (inner → outer), as
// found in a serialized document.
func FromMap(steps map[string]string) (Table, error) {
	var b Builder
	for _, inner := range slices.Sorted(maps.Keys(steps)) {
		if err := b.Wrap(inner, steps[inner]); err != nil {
			return Table{}, err
		}
	}
	return b.Build()
}
