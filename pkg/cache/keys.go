package cache

// Keyer builds cache keys. Implementations must be deterministic: the same
// inputs always give the same key.
type Keyer interface {
	// DocumentKey addresses a normalized geometry document by content hash.
	DocumentKey(docHash string) string

	// ResultKey addresses the resolved result of a document under the
	// options that influence resolution.
	ResultKey(docHash string, opts ResultKeyOpts) string
}

// ResultKeyOpts lists every option that changes resolver output.
type ResultKeyOpts struct {
	Tolerance  float64 `json:"tolerance"`
	SupportRTL bool    `json:"support_rtl"`
	// Version is the resolver version; bumping it invalidates old results.
	Version string `json:"version"`
}

// DefaultKeyer produces "kind:sha256(...)" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// DocumentKey returns "doc:<hash>".
func (DefaultKeyer) DocumentKey(docHash string) string {
	return "doc:" + docHash
}

// ResultKey hashes the document hash together with opts.
func (DefaultKeyer) ResultKey(docHash string, opts ResultKeyOpts) string {
	return hashKey("result", docHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix so several projects can share one
// backend without colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "project:storefront:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DocumentKey returns the prefixed document key.
func (k *ScopedKeyer) DocumentKey(docHash string) string {
	return k.prefix + k.inner.DocumentKey(docHash)
}

// ResultKey returns the prefixed result key.
func (k *ScopedKeyer) ResultKey(docHash string, opts ResultKeyOpts) string {
	return k.prefix + k.inner.ResultKey(docHash, opts)
}
