// Package fs provides file-based sources and storage for the index.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/json"
	"github.com/fwojciec/docindex/yaml"
)

// Ensure ContainerSource implements docindex.ContainerSource at compile time.
var _ docindex.ContainerSource = (*ContainerSource)(nil)

// ContainerSource reads local JSON documentation dumps.
type ContainerSource struct{}

// NewContainerSource creates a new ContainerSource.
func NewContainerSource() *ContainerSource {
	return &ContainerSource{}
}

// ReadContainer decodes the JSON file at path.
func (s *ContainerSource) ReadContainer(ctx context.Context, path string) ([]docindex.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return json.DecodeContainer(f)
}

// LoadPatchTable reads a patch table from path. Files ending in .yaml or
// .yml are decoded as YAML, anything else as JSON. An empty path returns
// a nil table, which applies no patches.
func LoadPatchTable(path string) (*docindex.PatchTable, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.DecodePatchTable(f)
	default:
		return json.DecodePatchTable(f)
	}
}
