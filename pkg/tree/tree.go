package tree

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidElementID is returned by [Tree.Add] when the element ID is
	// empty. All elements must have non-empty identifiers.
	ErrInvalidElementID = errors.New("element ID must not be empty")

	// ErrDuplicateElementID is returned by [Tree.Add] when an element with
	// the same ID already exists in the tree.
	ErrDuplicateElementID = errors.New("duplicate element ID")

	// ErrUnknownParent is returned by [Tree.Validate] when an element names a
	// parent that was never added.
	ErrUnknownParent = errors.New("unknown parent element")

	// ErrNoRoot is returned by [Tree.Validate] when no element lacks a parent.
	ErrNoRoot = errors.New("tree has no root element")

	// ErrMultipleRoots is returned by [Tree.Validate] when more than one
	// element lacks a parent.
	ErrMultipleRoots = errors.New("tree has more than one root element")

	// ErrCycle is returned by [Tree.Validate] when parent links form a loop,
	// leaving elements unreachable from the root.
	ErrCycle = errors.New("parent links contain a cycle")

	// ErrNonFiniteGeometry is returned by [Tree.Validate] when an element's
	// box, margins, or linear rectangle contain NaN or infinity.
	ErrNonFiniteGeometry = errors.New("element geometry is not finite")
)

// Tree is the measured element hierarchy handed over by the box-model stage.
// Elements are kept in insertion order, which is also the order children are
// reported in and the order resolvers iterate them.
//
// The zero value is not usable; use [New]. A Tree is not safe for concurrent
// mutation, but concurrent reads after construction are fine.
type Tree struct {
	elements map[string]*Element
	order    []string
	children map[string][]string // parentID -> child IDs in insertion order
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{
		elements: make(map[string]*Element),
		children: make(map[string][]string),
	}
}

// Add inserts an element. The parent does not need to exist yet; dangling
// parent references are reported by [Tree.Validate]. Returns
// ErrInvalidElementID for an empty ID and ErrDuplicateElementID for a
// repeated one.
func (t *Tree) Add(e Element) error {
	if e.ID == "" {
		return ErrInvalidElementID
	}
	if _, exists := t.elements[e.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateElementID, e.ID)
	}
	if e.Meta == nil {
		e.Meta = Metadata{}
	}
	el := &e
	t.elements[el.ID] = el
	t.order = append(t.order, el.ID)
	if el.Parent != "" {
		t.children[el.Parent] = append(t.children[el.Parent], el.ID)
	}
	return nil
}

// Len returns the number of elements.
func (t *Tree) Len() int { return len(t.elements) }

// Element returns the element with the given ID.
func (t *Tree) Element(id string) (*Element, bool) {
	e, ok := t.elements[id]
	return e, ok
}

// Elements returns all elements in insertion order.
func (t *Tree) Elements() []*Element {
	return t.lookup(t.order)
}

// Children returns the direct children of id in insertion order.
func (t *Tree) Children(id string) []*Element {
	return t.lookup(t.children[id])
}

// Parent returns the structural parent of id. It reports false for the root
// and for unknown IDs.
func (t *Tree) Parent(id string) (*Element, bool) {
	e, ok := t.elements[id]
	if !ok || e.Parent == "" {
		return nil, false
	}
	p, ok := t.elements[e.Parent]
	return p, ok
}

// Root returns the first element without a parent.
func (t *Tree) Root() (*Element, bool) {
	for _, id := range t.order {
		if e := t.elements[id]; e.Parent == "" {
			return e, true
		}
	}
	return nil, false
}

// Ancestors returns the ancestors of id from the nearest parent up to the
// root. The walk stops if it revisits an element, so a cyclic tree does not
// loop forever.
func (t *Tree) Ancestors(id string) []*Element {
	var out []*Element
	seen := map[string]bool{id: true}
	for p, ok := t.Parent(id); ok; p, ok = t.Parent(p.ID) {
		if seen[p.ID] {
			break
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}

// WalkFunc is called for each element visited by [Tree.Walk]. Depth is zero
// for the root. Returning an error stops the walk.
type WalkFunc func(e *Element, depth int) error

// Walk visits elements depth-first in pre-order starting at the root,
// children in insertion order. Call [Tree.Validate] first: elements not
// reachable from the root are skipped.
func (t *Tree) Walk(fn WalkFunc) error {
	root, ok := t.Root()
	if !ok {
		return ErrNoRoot
	}
	return t.walk(root, 0, fn)
}

func (t *Tree) walk(e *Element, depth int, fn WalkFunc) error {
	if err := fn(e, depth); err != nil {
		return err
	}
	for _, c := range t.Children(e.ID) {
		if err := t.walk(c, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Containers returns the elements that have at least one child, in
// insertion order.
func (t *Tree) Containers() []*Element {
	var out []*Element
	for _, id := range t.order {
		if len(t.children[id]) > 0 {
			out = append(out, t.elements[id])
		}
	}
	return out
}

// Validate checks that the tree has exactly one root, that every parent
// reference resolves, that parent links are acyclic, and that all geometry
// is finite.
func (t *Tree) Validate() error {
	var roots []string
	for _, id := range t.order {
		e := t.elements[id]
		if !e.IsFinite() {
			return fmt.Errorf("%w: %s", ErrNonFiniteGeometry, id)
		}
		if e.Parent == "" {
			roots = append(roots, id)
			continue
		}
		if _, ok := t.elements[e.Parent]; !ok {
			return fmt.Errorf("%w: %s (parent of %s)", ErrUnknownParent, e.Parent, id)
		}
	}
	switch len(roots) {
	case 0:
		if len(t.order) == 0 {
			return ErrNoRoot
		}
		return ErrCycle
	case 1:
	default:
		return fmt.Errorf("%w: %v", ErrMultipleRoots, roots)
	}
	return t.checkReachable(roots[0])
}

func (t *Tree) checkReachable(root string) error {
	seen := make(map[string]bool, len(t.elements))
	stack := []string{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		seen[id] = true
		stack = append(stack, t.children[id]...)
	}
	if len(seen) == len(t.elements) {
		return nil
	}
	var lost []string
	for _, id := range t.order {
		if !seen[id] {
			lost = append(lost, id)
		}
	}
	slices.Sort(lost)
	return fmt.Errorf("%w: %v", ErrCycle, lost)
}

func (t *Tree) lookup(ids []string) []*Element {
	out := make([]*Element, 0, len(ids))
	for _, id := range ids {
		if e, ok := t.elements[id]; ok {
			out = append(out, e)
		}
	}
	return out
}
