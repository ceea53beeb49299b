package document

import (
	"time"

	"github.com/anpham6/squared-sub012/pkg/anchor"
	"github.com/anpham6/squared-sub012/pkg/gravity"
	"github.com/anpham6/squared-sub012/pkg/tree"
)

// Result is everything the template renderer needs for one document:
// anchor directives for constraint-family containers, gravity directives
// for gravity-family containers, and the final annotation of every
// resolved element.
type Result struct {
	ID           string    `json:"id"`
	Document     string    `json:"document,omitempty"`
	DocumentHash string    `json:"document_hash"`
	CreatedAt    time.Time `json:"created_at"`

	Options ResultOptions `json:"options"`

	Anchors     []anchor.Directive  `json:"anchors"`
	Gravity     []gravity.Directive `json:"gravity"`
	Annotations tree.Annotations    `json:"annotations"`
	// Pivots maps each constraint container to the pivot of its children.
	Pivots map[string]string `json:"pivots,omitempty"`

	Stats Stats `json:"stats"`
}

// ResultOptions records the options the result was produced with.
type ResultOptions struct {
	Tolerance  float64 `json:"tolerance"`
	SupportRTL bool    `json:"support_rtl,omitempty"`
}

// Stats summarizes a resolution run.
type Stats struct {
	Elements         int `json:"elements"`
	ConstraintGroups int `json:"constraint_groups"`
	GravityGroups    int `json:"gravity_groups"`
	EdgeAnchors      int `json:"edge_anchors"`
	OffsetAnchors    int `json:"offset_anchors"`
	CircularAnchors  int `json:"circular_anchors"`
	GravityElements  int `json:"gravity_elements"`
	ChainSubstituted int `json:"chain_substituted"`
}

// AnchorsFor returns the anchor directives of one element.
func (r *Result) AnchorsFor(id string) []anchor.Directive {
	var out []anchor.Directive
	for _, d := range r.Anchors {
		if d.ID == id {
			out = append(out, d)
		}
	}
	return out
}

// GravityFor returns the gravity directive of one element.
func (r *Result) GravityFor(id string) (gravity.Directive, bool) {
	for _, d := range r.Gravity {
		if d.ID == id {
			return d, true
		}
	}
	return gravity.Directive{}, false
}

// Directives returns the total number of directives.
func (r *Result) Directives() int { return len(r.Anchors) + len(r.Gravity) }
