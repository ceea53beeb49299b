package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/anpham6/squared-sub012/pkg/anchor"
	"github.com/anpham6/squared-sub012/pkg/chain"
	"github.com/anpham6/squared-sub012/pkg/document"
	"github.com/anpham6/squared-sub012/pkg/gravity"
	"github.com/anpham6/squared-sub012/pkg/observability"
	"github.com/anpham6/squared-sub012/pkg/tree"
)

// Resolve walks t depth-first and resolves every container by its family.
// The tree must already be valid (see [document.ToTree]). Resolution only
// fails when ctx is cancelled.
func Resolve(ctx context.Context, t *tree.Tree, links chain.Table, opts Options) (*document.Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	w := &walker{
		ctx:   ctx,
		tree:  t,
		links: links,
		anchorOpts: anchor.Options{
			Tolerance: opts.effectiveTolerance(),
		},
		gravityOpts: gravity.Options{SupportRTL: opts.SupportRTL},
		logger:      opts.Logger,
		res: &document.Result{
			ID:          uuid.NewString(),
			CreatedAt:   time.Now().UTC(),
			Options:     document.ResultOptions{Tolerance: opts.effectiveTolerance(), SupportRTL: opts.SupportRTL},
			Anchors:     []anchor.Directive{},
			Gravity:     []gravity.Directive{},
			Annotations: tree.Annotations{},
			Pivots:      map[string]string{},
		},
	}
	w.res.Stats.Elements = t.Len()
	w.wrappers = make(map[string]bool, links.Len())
	for _, outer := range links.Entries() {
		w.wrappers[outer] = true
	}

	if err := t.Walk(w.visit); err != nil {
		return nil, err
	}
	return w.res, nil
}

type walker struct {
	ctx         context.Context
	tree        *tree.Tree
	links       chain.Table
	anchorOpts  anchor.Options
	gravityOpts gravity.Options
	logger      *log.Logger
	res         *document.Result

	// wrappers holds every live wrapper ID in links.
	wrappers map[string]bool
}

func (w *walker) visit(e *tree.Element, _ int) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}
	children := w.tree.Children(e.ID)
	if len(children) == 0 {
		return nil
	}

	switch e.Family {
	case tree.FamilyConstraint:
		w.constraint(e, children)
	case tree.FamilyGravity:
		w.gravity(children)
	default:
		return nil
	}
	observability.Pipeline().OnGroupResolved(w.ctx, e.ID, e.Family.String(), len(children))
	return nil
}

func (w *walker) constraint(container *tree.Element, members []*tree.Element) {
	parent := w.live(container.ID)
	out := anchor.Resolve(anchor.Group{Parent: parent, Members: members}, w.anchorOpts)

	for _, d := range out.Directives {
		// Edge anchors already target the live parent; circular anchors
		// name a sibling pivot that may itself have been wrapped.
		if d.Target != parent {
			d.Target = w.live(d.Target)
		}
		switch d.Kind {
		case anchor.KindEdge:
			w.res.Stats.EdgeAnchors++
		case anchor.KindOffset:
			w.res.Stats.OffsetAnchors++
		case anchor.KindCircular:
			w.res.Stats.CircularAnchors++
		}
		w.res.Anchors = append(w.res.Anchors, d)
	}
	w.res.Annotations.Apply(out.Annotations)
	if out.Pivot != "" {
		w.res.Pivots[container.ID] = out.Pivot
	}
	w.res.Stats.ConstraintGroups++

	w.logger.Debug("resolved constraint group",
		"container", container.ID,
		"anchor", parent,
		"pivot", out.Pivot,
		"members", len(members))
}

func (w *walker) gravity(children []*tree.Element) {
	for _, c := range children {
		if w.res.Annotations.Get(c.ID).Positioned {
			continue
		}
		op, liveID, ok := gravity.OffsetParent(w.tree, c, w.links)
		if !ok {
			continue
		}
		if w.wrappers[liveID] {
			w.res.Stats.ChainSubstituted++
		}
		d, ann := gravity.Resolve(c, gravity.Target{ID: liveID, Box: op.Box}, w.gravityOpts)
		w.res.Gravity = append(w.res.Gravity, d)
		w.res.Annotations.Apply(map[string]tree.Annotation{c.ID: ann})
		w.res.Stats.GravityElements++

		w.logger.Debug("resolved gravity",
			"element", c.ID,
			"offset_parent", liveID,
			"gravity", d.Gravity.String())
	}
	w.res.Stats.GravityGroups++
}

// live returns the chain-resolved ID, counting substitutions.
func (w *walker) live(id string) string {
	out := w.links.Resolve(id)
	if out != id {
		w.res.Stats.ChainSubstituted++
	}
	return out
}
