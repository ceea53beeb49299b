package document

import (
	"github.com/anpham6/squared-sub012/pkg/chain"
	"github.com/anpham6/squared-sub012/pkg/errors"
	"github.com/anpham6/squared-sub012/pkg/geom"
	"github.com/anpham6/squared-sub012/pkg/tree"
)

// ToTree validates d and converts it into an element tree. Linear
// rectangles missing from the document are derived from box and margin.
func ToTree(d *Document) (*tree.Tree, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	t := tree.New()
	for _, de := range d.Elements {
		if err := t.Add(toElement(de)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidElement, err, "element %s", de.ID)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid element tree")
	}
	return t, nil
}

// ChainTable builds the anchor chain table from the document's wrapping
// steps.
func ChainTable(d *Document) (chain.Table, error) {
	tbl, err := chain.FromMap(d.Chain)
	if err != nil {
		return chain.Table{}, errors.Wrap(errors.ErrCodeInvalidChain, err, "invalid chain")
	}
	return tbl, nil
}

// FromTree converts a tree back to a document, keeping insertion order.
// The chain is written as the direct steps links was built from.
func FromTree(t *tree.Tree, links chain.Table, name string) *Document {
	d := &Document{Version: CurrentVersion, Name: name}
	for _, e := range t.Elements() {
		d.Elements = append(d.Elements, fromElement(e))
	}
	if links.Len() > 0 {
		d.Chain = links.Steps()
	}
	return d
}

// Enum values were checked by Validate; parse errors cannot happen here.
func toElement(de Element) tree.Element {
	e := tree.NewElement(de.ID, de.Parent, de.Box, de.Margin)
	if de.Linear != nil {
		e.Linear = *de.Linear
	}
	e.Position, _ = tree.ParsePosition(de.Position)
	e.Float, _ = tree.ParseFloat(de.Float)
	e.Direction, _ = tree.ParseDirection(de.Direction)
	e.Family, _ = tree.ParseFamily(de.Family)
	for _, name := range de.AutoMargin {
		var side geom.Edge
		_ = side.UnmarshalText([]byte(name))
		switch side {
		case geom.EdgeTop:
			e.AutoMargin.Top = true
		case geom.EdgeRight:
			e.AutoMargin.Right = true
		case geom.EdgeBottom:
			e.AutoMargin.Bottom = true
		case geom.EdgeLeft:
			e.AutoMargin.Left = true
		}
	}
	if de.Bias != nil {
		e.Bias = tree.Bias{Horizontal: de.Bias.Horizontal, Vertical: de.Bias.Vertical}
	}
	e.OffsetParent = de.OffsetParent
	e.Meta = de.Meta
	return e
}

func fromElement(e *tree.Element) Element {
	de := Element{
		ID:           e.ID,
		Parent:       e.Parent,
		Box:          e.Box,
		Margin:       e.Margin,
		OffsetParent: e.OffsetParent,
	}
	if e.Linear != e.Box.Expand(e.Margin) {
		lin := e.Linear
		de.Linear = &lin
	}
	if e.Position != tree.PositionStatic {
		de.Position = e.Position.String()
	}
	if e.Float != tree.FloatNone {
		de.Float = e.Float.String()
	}
	if e.Direction != tree.LTR {
		de.Direction = e.Direction.String()
	}
	if e.Family != tree.FamilyNone {
		de.Family = e.Family.String()
	}
	am := e.AutoMargin
	for _, s := range []struct {
		on   bool
		edge geom.Edge
	}{{am.Top, geom.EdgeTop}, {am.Right, geom.EdgeRight}, {am.Bottom, geom.EdgeBottom}, {am.Left, geom.EdgeLeft}} {
		if s.on {
			de.AutoMargin = append(de.AutoMargin, s.edge.String())
		}
	}
	if e.Bias.Horizontal != nil || e.Bias.Vertical != nil {
		de.Bias = &Bias{Horizontal: e.Bias.Horizontal, Vertical: e.Bias.Vertical}
	}
	if len(e.Meta) > 0 {
		de.Meta = e.Meta
	}
	return de
}
