package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/anpham6/squared-sub012/pkg/document"
	"github.com/anpham6/squared-sub012/pkg/errors"
)

// FileStore is a file-based run store for CLI use. Each run is one JSON
// file named after its ID.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based run store.
// If baseDir is empty, defaults to ~/.local/share/squared/runs/ (or
// $XDG_DATA_HOME/squared/runs/).
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return nil, err
		}
		baseDir = filepath.Join(dir, "runs")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create run dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func defaultDataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "squared"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "squared"), nil
}

// fileSafeID rejects IDs that would escape the run directory.
func fileSafeID(id string) error {
	if err := errors.ValidateElementID(id); err != nil || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return errors.New(errors.ErrCodeInvalidInput, "run ID %q cannot be used as a file name", id)
	}
	return nil
}

func (s *FileStore) runPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *FileStore) Save(ctx context.Context, res *document.Result) (err error) {
	start := time.Now()
	defer func() { timed(ctx, "save", "file", resultID(res), start, err) }()

	if err := validateResult(res); err != nil {
		return err
	}
	if err := fileSafeID(res.ID); err != nil {
		return err
	}
	data, err := document.MarshalResult(res)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.runPath(res.ID), data, 0o644); err != nil {
		return fmt.Errorf("write run file: %w", err)
	}
	return nil
}

func (s *FileStore) Get(ctx context.Context, id string) (res *document.Result, err error) {
	start := time.Now()
	defer func() { timed(ctx, "get", "file", id, start, err) }()

	if err := fileSafeID(id); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, err := os.ReadFile(s.runPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("read run file: %w", err)
	}
	return document.ReadResult(bytes.NewReader(data))
}

func (s *FileStore) List(_ context.Context, opts ListOptions) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read run dir: %w", err)
	}
	var out []Summary
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var res document.Result
		if err := json.Unmarshal(data, &res); err != nil {
			continue
		}
		if opts.DocumentHash != "" && res.DocumentHash != opts.DocumentHash {
			continue
		}
		out = append(out, summarize(&res))
	}
	return newestFirst(out, opts.limit()), nil
}

func (s *FileStore) Delete(_ context.Context, id string) error {
	if err := fileSafeID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.runPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove run file: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// Path returns the base directory for run files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)
