// Package pipeline turns a geometry document into a directive result.
//
// The pipeline walks the element tree depth-first. Every container whose
// family is constraint has its children resolved as one sibling group by
// [anchor.Resolve]; every container whose family is gravity has each child
// resolved against its offset parent by [gravity.Resolve]. The chain table
// rewrites every anchor target so directives point at the live wrapper
// rather than a container that was replaced during restructuring.
//
// # Usage
//
// Resolve a document without caching:
//
//	res, err := pipeline.Resolve(ctx, t, links, pipeline.Options{})
//
// Or through a Runner, which adds result caching, logging and hooks:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, info, err := runner.Execute(ctx, doc, pipeline.Options{SupportRTL: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Stats.CircularAnchors, info.Hit)
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/anpham6/squared-sub012/pkg/cache"
	"github.com/anpham6/squared-sub012/pkg/errors"
	"github.com/anpham6/squared-sub012/pkg/geom"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Callers
// =============================================================================

const (
	// DefaultTolerance is the edge-matching tolerance in pixels.
	DefaultTolerance = geom.DefaultTolerance

	// ResolverVersion is part of every result cache key. Bump it whenever
	// resolver output changes for the same input.
	ResolverVersion = "1"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a resolution run.
type Options struct {
	// Tolerance is the maximum distance in pixels at which two edges count
	// as shared. Zero selects DefaultTolerance.
	Tolerance float64 `json:"tolerance,omitempty"`

	// Exact requires edges to match exactly, overriding Tolerance.
	Exact bool `json:"exact,omitempty"`

	// SupportRTL emits start/end gravity instead of left/right.
	SupportRTL bool `json:"support_rtl,omitempty"`

	// Refresh bypasses the result cache on read; the fresh result is still
	// written back.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// CacheInfo reports how a result was obtained.
type CacheInfo struct {
	Hit bool   // Result came from the cache
	Key string // Result cache key
}

// ValidateAndSetDefaults checks the options and applies defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateTolerance(o.Tolerance); err != nil {
		return err
	}
	o.SetDefaults()
	o.validated = true
	return nil
}

// SetDefaults fills in zero-valued options.
func (o *Options) SetDefaults() {
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ResultKeyOpts returns cache key options for the result.
func (o *Options) ResultKeyOpts() cache.ResultKeyOpts {
	return cache.ResultKeyOpts{
		Tolerance:  o.effectiveTolerance(),
		SupportRTL: o.SupportRTL,
		Version:    ResolverVersion,
	}
}

func (o *Options) effectiveTolerance() float64 {
	if o.Exact {
		return 0
	}
	return o.Tolerance
}
