package anchor

import (
	"github.com/anpham6/squared-sub012/pkg/geom"
	"github.com/anpham6/squared-sub012/pkg/tree"
)

// Group is a set of siblings arranged together under one container.
type Group struct {
	// Parent is the container the members anchor to. Callers pass the
	// chain-resolved ID.
	Parent string
	// Members in document order. The first member is the pivot of last
	// resort.
	Members []*tree.Element
	// Bounds overrides the reference rectangle. When nil, the union of the
	// members' linear rectangles is used.
	Bounds *geom.Rect
}

// bounds returns the group's reference rectangle.
func (g Group) bounds() geom.Rect {
	if g.Bounds != nil {
		return *g.Bounds
	}
	rects := make([]geom.Rect, len(g.Members))
	for i, m := range g.Members {
		rects[i] = m.Linear
	}
	return geom.Bounds(rects...)
}

// Options configures a resolution pass.
type Options struct {
	// Tolerance is the pixel distance within which an edge counts as shared
	// with the group's reference edge. Negative means exact.
	Tolerance float64
}

// DefaultOptions returns options with [geom.DefaultTolerance].
func DefaultOptions() Options {
	return Options{Tolerance: geom.DefaultTolerance}
}

// Result is the outcome of resolving one group.
type Result struct {
	// Pivot is the polar origin chosen for the group, empty for an empty
	// group.
	Pivot string
	// Directives in member order; edge directives precede the circular one
	// for any single element.
	Directives []Directive
	// Annotations holds one record per member.
	Annotations map[string]tree.Annotation
}

// For returns the directives emitted for id.
func (r Result) For(id string) []Directive {
	var out []Directive
	for _, d := range r.Directives {
		if d.ID == id {
			out = append(out, d)
		}
	}
	return out
}

// Resolve anchors every member of g. Members whose linear left or top edge
// lies on the group's reference edge are anchored to it on that axis.
// Members matching neither edge are placed on a circle around the pivot.
// Every member ends the pass positioned; Resolve never fails.
func Resolve(g Group, opts Options) Result {
	p := newEdgePass(g, opts)
	p.run()
	return p.commit().place()
}

// edgePass is the first phase: direct edge matching and pivot selection.
type edgePass struct {
	group  Group
	bounds geom.Rect
	tol    float64

	anns map[string]tree.Annotation
	dirs map[string][]Directive
}

func newEdgePass(g Group, opts Options) *edgePass {
	return &edgePass{
		group:  g,
		bounds: g.bounds(),
		tol:    opts.Tolerance,
		anns:   make(map[string]tree.Annotation, len(g.Members)),
		dirs:   make(map[string][]Directive, len(g.Members)),
	}
}

func (p *edgePass) run() {
	for _, m := range p.group.Members {
		var c tree.Constraint
		if geom.WithinRange(m.Linear.Left, p.bounds.Left, p.tol) {
			p.anchor(m, geom.Horizontal, 0)
			c.Horizontal = true
		}
		if geom.WithinRange(m.Linear.Top, p.bounds.Top, p.tol) {
			p.anchor(m, geom.Vertical, 0)
			c.Vertical = true
		}
		p.anns[m.ID] = tree.Annotation{Anchored: c.Both(), Constraint: c}
	}
}

func (p *edgePass) anchor(m *tree.Element, a geom.Axis, offset float64) {
	p.dirs[m.ID] = append(p.dirs[m.ID], edgeDirective(m.ID, p.group.Parent, a, offset))
}

// pivot picks the polar origin: the first anchored member, else the first
// vertically constrained one, else the first horizontally constrained one,
// else the first member.
func (p *edgePass) pivot() *tree.Element {
	match := func(ok func(tree.Annotation) bool) *tree.Element {
		for _, m := range p.group.Members {
			if ok(p.anns[m.ID]) {
				return m
			}
		}
		return nil
	}
	if m := match(func(a tree.Annotation) bool { return a.Anchored }); m != nil {
		return m
	}
	if m := match(func(a tree.Annotation) bool { return a.Constraint.Vertical }); m != nil {
		return m
	}
	if m := match(func(a tree.Annotation) bool { return a.Constraint.Horizontal }); m != nil {
		return m
	}
	return p.group.Members[0]
}

// pin anchors every open axis of m to the group start at its current
// distance, leaving m fully anchored.
func (p *edgePass) pin(m *tree.Element) {
	ann := p.anns[m.ID]
	if !ann.Constraint.Horizontal {
		p.anchor(m, geom.Horizontal, m.Linear.Left-p.bounds.Left)
		ann.Constraint.Horizontal = true
	}
	if !ann.Constraint.Vertical {
		p.anchor(m, geom.Vertical, m.Linear.Top-p.bounds.Top)
		ann.Constraint.Vertical = true
	}
	ann.Anchored = true
	p.anns[m.ID] = ann
}

// commit finalizes the pivot and closes the edge pass. The pivot gets a
// default anchor if it has none, and partially matched members are pinned
// on their open axis. What remains free goes to the circular pass.
func (p *edgePass) commit() committed {
	c := committed{pass: p}
	if len(p.group.Members) == 0 {
		return c
	}
	c.pivot = p.pivot()
	p.pin(c.pivot)
	for _, m := range p.group.Members {
		if m == c.pivot {
			continue
		}
		ann := p.anns[m.ID]
		switch {
		case ann.Anchored:
		case ann.Constraint.Any():
			p.pin(m)
		default:
			c.free = append(c.free, m)
		}
	}
	return c
}

// committed is the second phase. It is only reachable through
// [edgePass.commit], so the circular pass always sees a final, anchored
// pivot.
type committed struct {
	pass  *edgePass
	pivot *tree.Element
	free  []*tree.Element
}

func (c committed) place() Result {
	p := c.pass
	res := Result{Annotations: p.anns}
	if c.pivot == nil {
		return res
	}
	res.Pivot = c.pivot.ID

	origin := c.pivot.Center()
	for _, m := range c.free {
		radius, angle := Polar(origin, m.Center())
		p.dirs[m.ID] = append(p.dirs[m.ID], Directive{
			ID:     m.ID,
			Axis:   AxisCircular,
			Kind:   KindCircular,
			Target: c.pivot.ID,
			Radius: radius,
			Angle:  angle,
		})
		p.anns[m.ID] = tree.Annotation{
			Anchored:   true,
			Constraint: tree.Constraint{Horizontal: true, Vertical: true},
		}
	}

	for _, m := range p.group.Members {
		ann := p.anns[m.ID]
		ann.Positioned = true
		p.anns[m.ID] = ann
		res.Directives = append(res.Directives, p.dirs[m.ID]...)
	}
	return res
}
