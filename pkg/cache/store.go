package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/matzehuels/viewlayout/pkg/observability"
)

// Store persists byte blobs across runs, keyed by content. Rendered output
// is stored under the hash of its input, so entries never go stale.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Hash computes a SHA-256 hash of the input data as 64 hex characters.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// =============================================================================
// FileStore
// =============================================================================

// FileStore keeps one file per entry below a directory. Files are spread
// over subdirectories named after the first two hex digits of the key hash.
type FileStore struct {
	name string
	dir  string
	ext  string
}

// NewFileStore creates a store in dir, creating the directory if needed.
// ext (e.g. ".svg") is appended to entry files so they can be opened
// directly.
func NewFileStore(name, dir, ext string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{name: name, dir: dir, ext: ext}, nil
}

// Get returns the stored data for key. A missing entry is a miss, not an
// error.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		observability.Cache().OnCacheMiss(s.name)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	observability.Cache().OnCacheHit(s.name)
	return data, true, nil
}

// Set stores data under key. The file is written next to its final path
// and renamed into place so readers never see a partial entry.
func (s *FileStore) Set(_ context.Context, key string, data []byte) error {
	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	observability.Cache().OnCacheSet(s.name)
	return nil
}

// Delete removes the entry for key. Deleting a missing entry succeeds.
func (s *FileStore) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	if err == nil {
		observability.Cache().OnCacheRemove(s.name)
	}
	return err
}

// Dir returns the store's root directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(s.dir, hash[:2], hash[2:]+s.ext)
}

// =============================================================================
// NullStore
// =============================================================================

// NullStore never stores anything. It stands in when caching is disabled.
type NullStore struct{}

func (NullStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NullStore) Set(context.Context, string, []byte) error         { return nil }
func (NullStore) Delete(context.Context, string) error              { return nil }

var (
	_ Store = (*FileStore)(nil)
	_ Store = NullStore{}
)
