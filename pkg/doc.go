// Package pkg provides the core libraries for squared layout translation.
//
// # Overview
//
// Squared sits between a box-model stage, which measures every element of a
// page, and a template renderer that only understands anchors and gravity.
// It turns measured geometry into layout directives. The pkg directory is
// organized into four main areas:
//
//  1. Vocabulary - [geom] rectangles, edges and polar math; [tree] the
//     measured element hierarchy and its annotations
//  2. Resolvers - [anchor] edge, offset and circular anchors; [gravity]
//     tokens, bias and margins; [chain] wrapper substitution
//  3. Orchestration - [pipeline] walks a tree and runs both resolvers;
//     [document] is the file format on either side of it
//  4. Infrastructure - [cache], [store], [config], [errors] and
//     [observability]
//
// # Architecture
//
// The typical data flow:
//
//	geometry document (JSON or TOML)
//	         ↓
//	    [document] package (decode + validate)
//	         ↓
//	    [tree] package (measured elements)
//	         ↓
//	    [pipeline] package (constraint and gravity passes)
//	         ↓
//	    result file (anchors, gravity, annotations)
//	         ↓
//	    [render/anchorgraph] package (optional DOT/SVG view)
//
// # Quick Start
//
// Resolve a document without the cache:
//
//	import (
//	    "context"
//	    "github.com/anpham6/squared-sub012/pkg/document"
//	    "github.com/anpham6/squared-sub012/pkg/pipeline"
//	)
//
//	doc, _ := document.ReadDocumentFile("checkout.json")
//	t, _ := document.ToTree(doc)
//	links, _ := document.ChainTable(doc)
//	res, _ := pipeline.Resolve(context.Background(), t, links, pipeline.Options{})
//
//	for _, d := range res.Anchors {
//	    fmt.Println(d)
//	}
//
// With caching, use a [pipeline.Runner]:
//
//	c, _ := cache.NewFileCache(dir)
//	runner := pipeline.NewRunner(c, nil, logger)
//	doc, _, _ := runner.Load(ctx, "checkout.json")
//	res, info, _ := runner.Execute(ctx, doc, pipeline.Options{SupportRTL: true})
//
// # Main Packages
//
// ## Resolvers
//
// [anchor] - Groups the children of a constraint container, picks a pivot,
// and binds every member that shares an edge with the group. Members that
// share nothing are placed on a circle around the pivot.
//
// [gravity] - Derives a bias per axis from where an element sits inside its
// offset parent and maps it to gravity tokens plus a start or end margin.
//
// [chain] - Collapses chains of wrapper substitutions so a directive never
// names an element the renderer discarded.
//
// ## Infrastructure
//
// [cache] - Result cache with file, Redis and no-op backends, keyed by
// document hash and resolver options.
//
// [store] - Saved runs in memory, on disk, or in MongoDB.
//
// [render/anchorgraph] - Graphviz view of a result's anchors.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                                 # All tests
//	go test ./pkg/anchor/...                          # Specific package
//	SQUARED_TEST_MONGO_URI=mongodb://... go test ./pkg/store/  # Include MongoDB
//
// [geom]: https://pkg.go.dev/github.com/anpham6/squared-sub012/pkg/geom
// [tree]: https://pkg.go.dev/github.com/anpham6/squared-sub012/pkg/tree
// [anchor]: https://pkg.go.dev/github.com/anpham6/squared-sub012/pkg/anchor
// [gravity]: https://pkg.go.dev/github.com/anpham6/squared-sub012/pkg/gravity
// [chain]: https://pkg.go.dev/github.com/anpham6/squared-sub012/pkg/chain
// [pipeline]: https://pkg.go.dev/github.com/anpham6/squared-sub012/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/anpham6/squared-sub012/pkg/pipeline#Runner
// [document]: https://pkg.go.dev/github.com/anpham6/squared-sub012/pkg/document
// [cache]: https://pkg.go.dev/github.com/anpham6/squared-sub012/pkg/cache
// [store]: https://pkg.go.dev/github.com/anpham6/squared-sub012/pkg/store
// [config]: https://pkg.go.dev/github.com/anpham6/squared-sub012/pkg/config
// [errors]: https://pkg.go.dev/github.com/anpham6/squared-sub012/pkg/errors
// [observability]: https://pkg.go.dev/github.com/anpham6/squared-sub012/pkg/observability
// [render/anchorgraph]: https://pkg.go.dev/github.com/anpham6/squared-sub012/pkg/render/anchorgraph
package pkg
