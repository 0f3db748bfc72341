// Package yaml decodes YAML patch tables using goccy/go-yaml.
package yaml

import (
	"io"

	"github.com/fwojciec/docindex"
	"github.com/goccy/go-yaml"
)

type patchFile struct {
	RenameParams   map[string][]string `yaml:"rename_params"`
	OptionalParams map[string][]string `yaml:"optional_params"`
	HasRestElement []string            `yaml:"hasRestElement"`
}

// DecodePatchTable reads a YAML patch table with the same layout as the
// JSON form: rename_params, optional_params and a hasRestElement list.
func DecodePatchTable(r io.Reader) (*docindex.PatchTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var f patchFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "invalid patch table: %v", err)
	}
	return docindex.NewPatchTable(f.RenameParams, f.OptionalParams, f.HasRestElement), nil
}
