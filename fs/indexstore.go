package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docindex"
)

// Ensure IndexStore implements docindex.IndexStore at compile time.
var _ docindex.IndexStore = (*IndexStore)(nil)

// IndexStore writes the serialized index to a single file.
// Data is written to path.tmp and renamed over path, so a failed run
// never leaves a partial artifact behind.
type IndexStore struct {
	path string
}

// NewIndexStore creates a new IndexStore writing to path.
func NewIndexStore(path string) *IndexStore {
	return &IndexStore{path: path}
}

func (s *IndexStore) tempPath() string {
	return s.path + ".tmp"
}

// Write stores data and returns its digest.
func (s *IndexStore) Write(ctx context.Context, data []byte) (string, error) {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	if err := os.WriteFile(s.tempPath(), data, 0644); err != nil {
		_ = s.abort()
		return "", err
	}

	if err := os.Rename(s.tempPath(), s.path); err != nil {
		_ = s.abort()
		return "", err
	}

	return Digest(data), nil
}

func (s *IndexStore) abort() error {
	return os.RemoveAll(s.tempPath())
}

// Digest returns the xxHash of data as a 16-character hex string.
func Digest(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
