package document

import (
	"fmt"
	"maps"
	"slices"

	"github.com/anpham6/squared-sub012/pkg/errors"
	"github.com/anpham6/squared-sub012/pkg/geom"
	"github.com/anpham6/squared-sub012/pkg/tree"
)

// Validate checks the document at the boundary so resolvers only ever see
// finite geometry and known enum values. All problems are reported at once.
//
// Checked:
//   - schema version
//   - element IDs (non-empty, unique, no whitespace or '|')
//   - finite box, margin and linear rectangles; boxes not inverted
//   - position, float, direction, family and auto_margin keywords
//   - bias values in [0, 1]
//   - parent and offset_parent references, exactly one root
//   - chain entries name a known container or a wrapper named elsewhere
//     in the chain
func (d *Document) Validate() error {
	issues := errors.Issues{Source: d.Name}

	if d.Version != 0 && d.Version != CurrentVersion {
		issues.Addf(errors.ErrCodeUnsupported, "document version %d is not supported (want %d)", d.Version, CurrentVersion)
	}
	if len(d.Elements) == 0 {
		issues.Addf(errors.ErrCodeInvalidDocument, "document has no elements")
		return issues.Err()
	}

	ids := make(map[string]bool, len(d.Elements))
	for i := range d.Elements {
		e := &d.Elements[i]
		if err := errors.ValidateElementID(e.ID); err != nil {
			issues.Add(err)
			continue
		}
		if ids[e.ID] {
			issues.Addf(errors.ErrCodeInvalidElement, "duplicate element ID %q", e.ID)
			continue
		}
		ids[e.ID] = true
		validateElement(e, &issues)
	}

	var roots []string
	for _, e := range d.Elements {
		switch {
		case e.Parent == "":
			roots = append(roots, e.ID)
		case !ids[e.Parent]:
			issues.Addf(errors.ErrCodeInvalidElement, "element %s: unknown parent %q", e.ID, e.Parent)
		}
		if e.OffsetParent != "" && !ids[e.OffsetParent] {
			issues.Addf(errors.ErrCodeInvalidElement, "element %s: unknown offset_parent %q", e.ID, e.OffsetParent)
		}
	}
	if len(roots) != 1 {
		issues.Addf(errors.ErrCodeInvalidDocument, "document must have exactly one root element, found %d %v", len(roots), roots)
	}

	wrappers := make(map[string]bool, len(d.Chain))
	for _, outer := range d.Chain {
		wrappers[outer] = true
	}
	for _, inner := range slices.Sorted(maps.Keys(d.Chain)) {
		if !ids[inner] && !wrappers[inner] {
			issues.Addf(errors.ErrCodeInvalidChain, "chain entry %q names an unknown container", inner)
		}
		if d.Chain[inner] == "" {
			issues.Addf(errors.ErrCodeInvalidChain, "chain entry %q has an empty wrapper", inner)
		}
	}

	return issues.Err()
}

func validateElement(e *Element, issues *errors.Issues) {
	checkRect(e.ID, "box", e.Box, issues)
	if e.Linear != nil {
		checkRect(e.ID, "linear", *e.Linear, issues)
	}
	for _, side := range []geom.Edge{geom.EdgeTop, geom.EdgeRight, geom.EdgeBottom, geom.EdgeLeft} {
		issues.Add(errors.ValidateFinite(fmt.Sprintf("element %s: margin.%s", e.ID, side), e.Margin.Get(side)))
	}

	if _, err := tree.ParsePosition(e.Position); err != nil {
		issues.Addf(errors.ErrCodeInvalidElement, "element %s: %v", e.ID, err)
	}
	if _, err := tree.ParseFloat(e.Float); err != nil {
		issues.Addf(errors.ErrCodeInvalidElement, "element %s: %v", e.ID, err)
	}
	if _, err := tree.ParseDirection(e.Direction); err != nil {
		issues.Addf(errors.ErrCodeInvalidElement, "element %s: %v", e.ID, err)
	}
	if _, err := tree.ParseFamily(e.Family); err != nil {
		issues.Addf(errors.ErrCodeInvalidElement, "element %s: %v", e.ID, err)
	}
	for _, name := range e.AutoMargin {
		var side geom.Edge
		if err := side.UnmarshalText([]byte(name)); err != nil {
			issues.Addf(errors.ErrCodeInvalidElement, "element %s: auto_margin: %v", e.ID, err)
		}
	}

	if e.Bias != nil {
		if v := e.Bias.Horizontal; v != nil {
			issues.Add(errors.ValidateBias(fmt.Sprintf("element %s: bias.horizontal", e.ID), *v))
		}
		if v := e.Bias.Vertical; v != nil {
			issues.Add(errors.ValidateBias(fmt.Sprintf("element %s: bias.vertical", e.ID), *v))
		}
	}
}

func checkRect(id, name string, r geom.Rect, issues *errors.Issues) {
	if !r.IsFinite() {
		issues.Addf(errors.ErrCodeInvalidGeometry, "element %s: %s is not finite", id, name)
		return
	}
	if r.Right < r.Left || r.Bottom < r.Top {
		issues.Addf(errors.ErrCodeInvalidGeometry, "element %s: %s is inverted (%v,%v,%v,%v)", id, name, r.Top, r.Right, r.Bottom, r.Left)
	}
}
