package index

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docindex"
)

// Normalizer converts raw records into canonical entries.
type Normalizer struct {
	Renderer docindex.Renderer

	// Patches apply to local records only. Nil means no patches.
	Patches *docindex.PatchTable
}

// Normalize produces one validated Entry for rec.
func (n *Normalizer) Normalize(rec docindex.Record) (*docindex.Entry, error) {
	var (
		e   *docindex.Entry
		err error
	)
	switch r := rec.(type) {
	case *docindex.LocalRecord:
		e, err = n.normalizeLocal(r)
	case *docindex.ModuleVariable:
		e, err = n.normalizeVariable(r)
	case *docindex.ModuleFunction:
		e, err = n.normalizeFunction(r)
	case *docindex.ModuleUnknown:
		e = &docindex.Entry{
			Label: r.Label,
			Title: moduleTitle(r.Module),
			Meta:  docindex.MetaUnknown,
		}
	default:
		return nil, docindex.Errorf(docindex.EINTERNAL, "unsupported record type %T", rec)
	}
	if err != nil {
		return nil, err
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (n *Normalizer) normalizeLocal(r *docindex.LocalRecord) (*docindex.Entry, error) {
	desc, err := n.Renderer.Render(r.Description)
	if err != nil {
		return nil, fmt.Errorf("entry %q: %w", r.Label, err)
	}

	e := &docindex.Entry{
		Label:       r.Label,
		Title:       r.Title,
		Description: desc,
		Meta:        docindex.ParseMeta(r.Meta),
	}

	if e.Meta == docindex.MetaFunc {
		params, err := n.Patches.ResolveParams(r.Label, func() ([]string, error) {
			return docindex.ParseSignature(r.Title)
		})
		if err != nil {
			return nil, docindex.Errorf(docindex.EINVALID, "entry %q: %s", r.Label, docindex.ErrorMessage(err))
		}
		e.Parameters = params
	}

	if opt, ok := n.Patches.OptionalParams(r.Label); ok {
		e.OptionalParams = opt
	}
	e.HasRestElement = n.Patches.HasRestElement(r.Label)

	return e, nil
}

func (n *Normalizer) normalizeVariable(r *docindex.ModuleVariable) (*docindex.Entry, error) {
	body, err := n.Renderer.Render(r.Description)
	if err != nil {
		return nil, fmt.Errorf("module %s: entry %q: %w", r.Module, r.Label, err)
	}

	return &docindex.Entry{
		Label:       r.Label,
		Title:       moduleTitle(r.Module),
		Description: "#### " + r.Label + ":" + r.Type + "\n" + body,
		Meta:        docindex.MetaConst,
	}, nil
}

func (n *Normalizer) normalizeFunction(r *docindex.ModuleFunction) (*docindex.Entry, error) {
	body, err := n.Renderer.Render(r.Description)
	if err != nil {
		return nil, fmt.Errorf("module %s: entry %q: %w", r.Module, r.Label, err)
	}

	names := make([]string, len(r.Params))
	placeholders := make([]string, len(r.Params))
	for i, p := range r.Params {
		names[i] = p.Name
		placeholders[i] = fmt.Sprintf("${%d:%s}", i+1, p.Name)
	}

	header := fmt.Sprintf("#### %s(%s) → %s", r.Label, strings.Join(names, ", "), r.ReturnType)
	return &docindex.Entry{
		Label:       r.Label,
		Title:       moduleTitle(r.Module),
		Description: header + "\n" + body,
		Meta:        docindex.MetaFunc,
		Parameters:  placeholders,
	}, nil
}

func moduleTitle(module string) string {
	return "Auto-import from " + module
}
