// Package store persists resolution runs so results can be listed and
// reopened later.
//
// Three backends implement [Store]:
//   - [MemoryStore]: in-process storage for tests and one-shot runs
//   - [FileStore]: JSON files under the user data directory, for the CLI
//   - [MongoStore]: a MongoDB collection, for shared deployments
//
// # Usage
//
//	st, err := store.Open(ctx, "mongodb://localhost:27017/squared")
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
//
//	if err := st.Save(ctx, res); err != nil {
//	    return err
//	}
//	runs, err := st.List(ctx, store.ListOptions{DocumentHash: res.DocumentHash})
package store

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/anpham6/squared-sub012/pkg/document"
	"github.com/anpham6/squared-sub012/pkg/errors"
	"github.com/anpham6/squared-sub012/pkg/observability"
)

// DefaultListLimit caps List when no limit is given.
const DefaultListLimit = 50

// Store is the interface for run storage backends.
type Store interface {
	// Save stores a run. Saving a run with an existing ID replaces it.
	Save(ctx context.Context, res *document.Result) error

	// Get retrieves a run by ID. Returns a RUN_NOT_FOUND error if the run
	// does not exist.
	Get(ctx context.Context, id string) (*document.Result, error)

	// List returns run summaries, newest first.
	List(ctx context.Context, opts ListOptions) ([]Summary, error)

	// Delete removes a run. Deleting a missing run is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases the backend.
	Close() error
}

// ListOptions filters List.
type ListOptions struct {
	// DocumentHash restricts the listing to runs of one document.
	DocumentHash string
	// Limit caps the number of summaries; zero means DefaultListLimit.
	Limit int
}

func (o ListOptions) limit() int {
	if o.Limit <= 0 {
		return DefaultListLimit
	}
	return o.Limit
}

// Summary is the listing view of a run.
type Summary struct {
	ID           string    `json:"id"`
	Document     string    `json:"document,omitempty"`
	DocumentHash string    `json:"document_hash"`
	CreatedAt    time.Time `json:"created_at"`
	Anchors      int       `json:"anchors"`
	Gravity      int       `json:"gravity"`
}

func summarize(res *document.Result) Summary {
	return Summary{
		ID:           res.ID,
		Document:     res.Document,
		DocumentHash: res.DocumentHash,
		CreatedAt:    res.CreatedAt,
		Anchors:      len(res.Anchors),
		Gravity:      len(res.Gravity),
	}
}

// Open selects a backend by URI scheme: "mongodb" and "mongodb+srv" open a
// MongoStore, "file" a FileStore rooted at the path, and "memory" a
// MemoryStore.
func Open(ctx context.Context, uri string) (Store, error) {
	if err := errors.ValidateURI(uri, "mongodb", "mongodb+srv", "file", "memory"); err != nil {
		return nil, err
	}
	u, _ := url.Parse(uri)
	switch u.Scheme {
	case "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(u.Path)
	default:
		db := strings.TrimPrefix(u.Path, "/")
		return NewMongoStore(ctx, uri, db)
	}
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeRunNotFound, "run %s not found", id)
}

// validateResult checks the fields every backend keys on.
func validateResult(res *document.Result) error {
	if res == nil || res.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "run has no ID")
	}
	return nil
}

// timed reports a save or get to the store hooks.
func timed(ctx context.Context, op, backend, id string, start time.Time, err error) {
	hooks := observability.Store()
	switch op {
	case "save":
		hooks.OnSave(ctx, backend, id, time.Since(start), err)
	case "get":
		hooks.OnGet(ctx, backend, id, time.Since(start), err)
	}
}
