package gravity

import (
	"fmt"
	"strings"

	"github.com/anpham6/squared-sub012/pkg/geom"
)

// Token is a gravity keyword understood by gravity-family containers.
type Token string

const (
	Left             Token = "left"
	Right            Token = "right"
	Start            Token = "start"
	End              Token = "end"
	Top              Token = "top"
	Bottom           Token = "bottom"
	CenterHorizontal Token = "center_horizontal"
	CenterVertical   Token = "center_vertical"
	// Center is the combined form of CenterHorizontal and CenterVertical.
	Center Token = "center"
)

// Axis returns the axis the token positions on. Center has no single axis
// and reports false.
func (t Token) Axis() (geom.Axis, bool) {
	switch t {
	case Left, Right, Start, End, CenterHorizontal:
		return geom.Horizontal, true
	case Top, Bottom, CenterVertical:
		return geom.Vertical, true
	}
	return geom.Horizontal, false
}

// TokenSet accumulates gravity tokens, holding at most one per axis. Adding
// a token never removes one already set, so an element can never carry two
// opposing tokens on the same axis.
//
// The zero value is an empty set.
type TokenSet struct {
	horizontal Token
	vertical   Token
}

// NewTokenSet builds a set from tokens, ignoring any that conflict with an
// earlier one on the same axis.
func NewTokenSet(tokens ...Token) TokenSet {
	var s TokenSet
	for _, t := range tokens {
		s.Add(t)
	}
	return s
}

// Add inserts t. It reports false if the axis already holds a different
// token or t is unknown; re-adding the same token is a successful no-op.
// Center expands to both center tokens.
func (s *TokenSet) Add(t Token) bool {
	if t == Center {
		h := s.set(geom.Horizontal, CenterHorizontal)
		v := s.set(geom.Vertical, CenterVertical)
		return h && v
	}
	axis, ok := t.Axis()
	if !ok {
		return false
	}
	return s.set(axis, t)
}

func (s *TokenSet) set(axis geom.Axis, t Token) bool {
	slot := &s.horizontal
	if axis == geom.Vertical {
		slot = &s.vertical
	}
	if *slot != "" {
		return *slot == t
	}
	*slot = t
	return true
}

// Get returns the token held for the axis, or "".
func (s TokenSet) Get(axis geom.Axis) Token {
	if axis == geom.Vertical {
		return s.vertical
	}
	return s.horizontal
}

// Has reports whether t is in the set.
func (s TokenSet) Has(t Token) bool {
	if t == Center {
		return s.horizontal == CenterHorizontal && s.vertical == CenterVertical
	}
	return t != "" && (s.horizontal == t || s.vertical == t)
}

// IsEmpty reports whether no token has been added.
func (s TokenSet) IsEmpty() bool { return s.horizontal == "" && s.vertical == "" }

// Union returns the set with every token of o added. Tokens already in s
// win on conflict.
func (s TokenSet) Union(o TokenSet) TokenSet {
	if o.horizontal != "" {
		s.set(geom.Horizontal, o.horizontal)
	}
	if o.vertical != "" {
		s.set(geom.Vertical, o.vertical)
	}
	return s
}

// Tokens returns the tokens in render order, horizontal first. Two center
// tokens collapse into [Center].
func (s TokenSet) Tokens() []Token {
	if s.horizontal == CenterHorizontal && s.vertical == CenterVertical {
		return []Token{Center}
	}
	var out []Token
	if s.horizontal != "" {
		out = append(out, s.horizontal)
	}
	if s.vertical != "" {
		out = append(out, s.vertical)
	}
	return out
}

// String renders the set as a "|" separated attribute value.
func (s TokenSet) String() string {
	parts := make([]string, 0, 2)
	for _, t := range s.Tokens() {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, "|")
}

// MarshalText encodes the set in its attribute form.
func (s TokenSet) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses a "|" separated attribute value.
func (s *TokenSet) UnmarshalText(b []byte) error {
	*s = TokenSet{}
	if len(b) == 0 {
		return nil
	}
	for _, part := range strings.Split(string(b), "|") {
		if !s.Add(Token(strings.TrimSpace(part))) {
			return fmt.Errorf("invalid gravity %q", string(b))
		}
	}
	return nil
}
