package document

import (
	"github.com/anpham6/squared-sub012/pkg/geom"
)

// CurrentVersion is the document schema version this package reads and
// writes. Documents without a version are treated as CurrentVersion.
const CurrentVersion = 1

// =============================================================================
// Document - Geometry Provider Output
// =============================================================================

// Document is the serialized output of the measuring stage: every element
// with its final geometry, plus the wrapping steps recorded while the
// output tree was restructured.
//
// JSON and TOML encodings share field names:
//
//	{
//	  "name": "checkout",
//	  "elements": [
//	    {"id": "page", "box": {"top": 0, "right": 360, "bottom": 640, "left": 0}, "family": "constraint"},
//	    {"id": "title", "parent": "page", "box": {"top": 16, "right": 200, "bottom": 48, "left": 16}}
//	  ],
//	  "chain": {"toolbar": "collapsing", "collapsing": "appbar"}
//	}
type Document struct {
	Version  int       `json:"version,omitempty" toml:"version,omitempty"`
	Name     string    `json:"name,omitempty" toml:"name,omitempty"`
	Elements []Element `json:"elements" toml:"elements"`
	// Chain maps a container to the wrapper that directly replaced it.
	// Multi-level wrapping is written as several entries.
	Chain map[string]string `json:"chain,omitempty" toml:"chain,omitempty"`
}

// Element is one measured element.
type Element struct {
	ID     string `json:"id" toml:"id"`
	Parent string `json:"parent,omitempty" toml:"parent,omitempty"`

	Box    geom.Rect  `json:"box" toml:"box"`
	Margin geom.Edges `json:"margin,omitzero" toml:"margin,omitempty"`
	// Linear overrides box+margin when the provider measured it directly.
	Linear *geom.Rect `json:"linear,omitempty" toml:"linear,omitempty"`

	Position  string `json:"position,omitempty" toml:"position,omitempty"`
	Float     string `json:"float,omitempty" toml:"float,omitempty"`
	Direction string `json:"direction,omitempty" toml:"direction,omitempty"`
	Family    string `json:"family,omitempty" toml:"family,omitempty"`
	// AutoMargin lists the edges whose CSS margin was "auto".
	AutoMargin   []string `json:"auto_margin,omitempty" toml:"auto_margin,omitempty"`
	Bias         *Bias    `json:"bias,omitempty" toml:"bias,omitempty"`
	OffsetParent string   `json:"offset_parent,omitempty" toml:"offset_parent,omitempty"`

	Meta map[string]any `json:"meta,omitempty" toml:"meta,omitempty"`
}

// Bias is an optional provider-supplied bias per axis.
type Bias struct {
	Horizontal *float64 `json:"horizontal,omitempty" toml:"horizontal,omitempty"`
	Vertical   *float64 `json:"vertical,omitempty" toml:"vertical,omitempty"`
}
