package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/anpham6/squared-sub012/pkg/cache"
	"github.com/anpham6/squared-sub012/pkg/document"
	"github.com/anpham6/squared-sub012/pkg/errors"
	"github.com/anpham6/squared-sub012/pkg/observability"
)

// Key types reported to cache hooks.
const (
	keyTypeDocument = "document"
	keyTypeResult   = "result"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// ResultTTL overrides cache.ResultTTL for stored results when positive.
	ResultTTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Load reads a geometry document from path and stores its normalized form
// in the cache under its content hash.
func (r *Runner) Load(ctx context.Context, path string) (*document.Document, string, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	doc, err := document.ReadDocumentFile(path)
	if err != nil {
		hooks.OnLoadComplete(ctx, path, 0, time.Since(start), err)
		return nil, "", err
	}
	hash, err := cache.HashJSON(doc)
	if err != nil {
		hooks.OnLoadComplete(ctx, path, len(doc.Elements), time.Since(start), err)
		return nil, "", errors.Wrap(errors.ErrCodeInternal, err, "hash document")
	}
	if data, err := json.Marshal(doc); err == nil {
		r.cacheSet(ctx, keyTypeDocument, r.Keyer.DocumentKey(hash), data, cache.DocumentTTL)
	}
	hooks.OnLoadComplete(ctx, path, len(doc.Elements), time.Since(start), nil)

	r.Logger.Debug("loaded document",
		"path", path,
		"elements", len(doc.Elements),
		"hash", hash[:12],
		"duration", time.Since(start))
	return doc, hash, nil
}

// Document returns a previously loaded document by content hash.
func (r *Runner) Document(ctx context.Context, hash string) (*document.Document, bool, error) {
	data, hit, err := r.Cache.Get(ctx, r.Keyer.DocumentKey(hash))
	if err != nil || !hit {
		return nil, false, err
	}
	doc, err := document.ReadDocument(bytes.NewReader(data), document.FormatJSON)
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

// Execute resolves doc with caching. Results are keyed by the document's
// content hash and the options that change resolver output.
func (r *Runner) Execute(ctx context.Context, doc *document.Document, opts Options) (*document.Result, CacheInfo, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, CacheInfo{}, fmt.Errorf("invalid options: %w", err)
	}

	hash, err := cache.HashJSON(doc)
	if err != nil {
		return nil, CacheInfo{}, errors.Wrap(errors.ErrCodeInternal, err, "hash document")
	}
	info := CacheInfo{Key: r.Keyer.ResultKey(hash, opts.ResultKeyOpts())}

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, info.Key); err == nil && hit {
			if res, err := document.ReadResult(bytes.NewReader(data)); err == nil {
				info.Hit = true
				observability.Cache().OnCacheHit(ctx, keyTypeResult)
				r.Logger.Debug("result cache hit", "key", info.Key)
				return res, info, nil
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeResult)
	}

	t, err := document.ToTree(doc)
	if err != nil {
		return nil, info, err
	}
	links, err := document.ChainTable(doc)
	if err != nil {
		return nil, info, err
	}

	hooks := observability.Pipeline()
	containers := len(t.Containers())
	hooks.OnResolveStart(ctx, containers)
	start := time.Now()

	res, err := Resolve(ctx, t, links, opts)
	if err != nil {
		hooks.OnResolveComplete(ctx, 0, time.Since(start), err)
		return nil, info, err
	}
	res.Document = doc.Name
	res.DocumentHash = hash
	hooks.OnResolveComplete(ctx, res.Directives(), time.Since(start), nil)

	r.Logger.Info("resolved document",
		"document", doc.Name,
		"containers", containers,
		"anchors", len(res.Anchors),
		"gravity", len(res.Gravity),
		"duration", time.Since(start))

	if data, err := document.MarshalResult(res); err == nil {
		r.cacheSet(ctx, keyTypeResult, info.Key, data, r.resultTTL())
	}
	return res, info, nil
}

func (r *Runner) resultTTL() time.Duration {
	if r.ResultTTL > 0 {
		return r.ResultTTL
	}
	return cache.ResultTTL
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// cacheSet writes to the cache; failures only cost a future recompute.
func (r *Runner) cacheSet(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
