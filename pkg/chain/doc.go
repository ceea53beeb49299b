// Package chain resolves anchor targets through container restructuring.
//
// When the restructuring stage splits a container into nested output
// containers (a bar promoted into app-bar → collapsing-bar → toolbar),
// elements that anchored to the original must anchor to the outermost
// surviving wrapper instead. The restructuring stage records each step with
// [Builder.Wrap]; [Builder.Build] produces an immutable [Table] that is
// threaded explicitly through resolution calls.
//
// A missing mapping is not an error: [Table.Resolve] returns the ID
// unchanged, meaning no restructuring happened.
package chain
