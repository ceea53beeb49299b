package store

import (
	"bytes"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/anpham6/squared-sub012/pkg/document"
)

// MemoryStore keeps runs in process. Runs are stored serialized so callers
// cannot mutate a saved run through the pointer they passed in.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string][]byte
	sums map[string]Summary
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs: make(map[string][]byte),
		sums: make(map[string]Summary),
	}
}

func (s *MemoryStore) Save(ctx context.Context, res *document.Result) (err error) {
	start := time.Now()
	defer func() { timed(ctx, "save", "memory", resultID(res), start, err) }()

	if err := validateResult(res); err != nil {
		return err
	}
	data, err := document.MarshalResult(res)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[res.ID] = data
	s.sums[res.ID] = summarize(res)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (res *document.Result, err error) {
	start := time.Now()
	defer func() { timed(ctx, "get", "memory", id, start, err) }()

	s.mu.RLock()
	data, ok := s.runs[id]
	s.mu.RUnlock()
	if !ok {
		return nil, notFound(id)
	}
	return document.ReadResult(bytes.NewReader(data))
}

func (s *MemoryStore) List(_ context.Context, opts ListOptions) ([]Summary, error) {
	s.mu.RLock()
	out := make([]Summary, 0, len(s.sums))
	for _, sum := range s.sums {
		if opts.DocumentHash != "" && sum.DocumentHash != opts.DocumentHash {
			continue
		}
		out = append(out, sum)
	}
	s.mu.RUnlock()
	return newestFirst(out, opts.limit()), nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, id)
	delete(s.sums, id)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)

// newestFirst sorts by creation time descending, ID ascending on ties, and
// truncates to limit.
func newestFirst(sums []Summary, limit int) []Summary {
	slices.SortFunc(sums, func(a, b Summary) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	if len(sums) > limit {
		sums = sums[:limit]
	}
	return sums
}

func resultID(res *document.Result) string {
	if res == nil {
		return ""
	}
	return res.ID
}
