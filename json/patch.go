package json

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/docindex"
)

type patchFile struct {
	RenameParams   map[string][]string `json:"rename_params"`
	OptionalParams map[string][]string `json:"optional_params"`
	HasRestElement []string            `json:"hasRestElement"`
}

// DecodePatchTable reads a patch table with the rename_params,
// optional_params and hasRestElement sub-maps. Missing sub-maps are empty.
func DecodePatchTable(r io.Reader) (*docindex.PatchTable, error) {
	var f patchFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "invalid patch table: %v", err)
	}
	return docindex.NewPatchTable(f.RenameParams, f.OptionalParams, f.HasRestElement), nil
}
