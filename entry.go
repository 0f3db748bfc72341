package docindex

import "slices"

// Meta identifies the kind of a documented symbol.
type Meta string

// Meta constants.
const (
	MetaFunc    Meta = "func"
	MetaConst   Meta = "const"
	MetaUnknown Meta = "unknown"
)

// ParseMeta maps a raw meta string onto a Meta. Anything other than
// "func" or "const" is MetaUnknown.
func ParseMeta(s string) Meta {
	switch Meta(s) {
	case MetaFunc, MetaConst:
		return Meta(s)
	default:
		return MetaUnknown
	}
}

// Entry is the canonical documentation entry consumed by the editor.
//
// Parameters distinguishes nil (field absent) from an empty slice (a
// function taking no arguments), so it relies on omitzero rather than
// omitempty.
type Entry struct {
	Label          string   `json:"label"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Meta           Meta     `json:"meta"`
	Parameters     []string `json:"parameters,omitzero"`
	OptionalParams []string `json:"optional_params,omitzero"`
	HasRestElement bool     `json:"hasRestElement,omitempty"`
}

// Validate returns an error if the entry breaks the canonical schema rules.
func (e *Entry) Validate() error {
	if e.Label == "" {
		return Errorf(EINVALID, "entry label required")
	}
	if e.Meta != MetaFunc && e.Parameters != nil {
		return Errorf(EINVALID, "entry %q: parameters on non-function entry", e.Label)
	}
	for _, name := range e.OptionalParams {
		if !slices.Contains(e.Parameters, name) {
			return Errorf(EINVALID, "entry %q: optional parameter %q is not a parameter", e.Label, name)
		}
	}
	if e.HasRestElement && len(e.Parameters) == 0 {
		return Errorf(EINVALID, "entry %q: rest element without parameters", e.Label)
	}
	return nil
}

// Group is an ordered list of entries sourced from one raw container.
// Name is the container location (chapter) or the module name.
type Group struct {
	Name    string
	Entries []*Entry
}

// EntryCount returns the total number of entries across groups.
func EntryCount(groups []*Group) int {
	var n int
	for _, g := range groups {
		n += len(g.Entries)
	}
	return n
}
