package docindex

import "slices"

// PatchTable holds per-key overrides for entries the automatic derivation
// gets wrong. A nil *PatchTable behaves as an empty table.
type PatchTable struct {
	renameParams   map[string][]string
	optionalParams map[string][]string
	hasRestElement map[string]struct{}
}

// NewPatchTable builds a PatchTable from its three sub-maps.
func NewPatchTable(renameParams, optionalParams map[string][]string, hasRestElement []string) *PatchTable {
	p := &PatchTable{
		renameParams:   make(map[string][]string, len(renameParams)),
		optionalParams: make(map[string][]string, len(optionalParams)),
		hasRestElement: make(map[string]struct{}, len(hasRestElement)),
	}
	for k, v := range renameParams {
		p.renameParams[k] = nonNil(v)
	}
	for k, v := range optionalParams {
		p.optionalParams[k] = nonNil(v)
	}
	for _, k := range hasRestElement {
		p.hasRestElement[k] = struct{}{}
	}
	return p
}

// ResolveParams returns the parameter list for key. A rename_params patch
// wins unconditionally and derive is never called; otherwise the result of
// derive is returned as-is.
func (p *PatchTable) ResolveParams(key string, derive func() ([]string, error)) ([]string, error) {
	if p != nil {
		if params, ok := p.renameParams[key]; ok {
			return slices.Clone(params), nil
		}
	}
	return derive()
}

// OptionalParams returns the optional parameter names patched for key.
func (p *PatchTable) OptionalParams(key string) ([]string, bool) {
	if p == nil {
		return nil, false
	}
	params, ok := p.optionalParams[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(params), true
}

// HasRestElement reports whether key's last parameter is variadic.
func (p *PatchTable) HasRestElement(key string) bool {
	if p == nil {
		return false
	}
	_, ok := p.hasRestElement[key]
	return ok
}

// Len returns the number of patched keys across all sub-maps.
func (p *PatchTable) Len() int {
	if p == nil {
		return 0
	}
	return len(p.renameParams) + len(p.optionalParams) + len(p.hasRestElement)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
