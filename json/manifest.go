package json

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/docindex"
)

type symbol struct {
	Kind        string  `json:"kind"`
	Type        string  `json:"type"`
	Params      []param `json:"params"`
	RetType     string  `json:"retType"`
	Description string  `json:"description"`
}

// param decodes a [name, type, ...] tuple.
type param docindex.Param

func (p *param) UnmarshalJSON(b []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(b, &tuple); err != nil {
		return err
	}
	if len(tuple) == 0 {
		return docindex.Errorf(docindex.EINVALID, "empty parameter tuple")
	}
	if err := json.Unmarshal(tuple[0], &p.Name); err != nil {
		return docindex.Errorf(docindex.EINVALID, "parameter name: %v", err)
	}
	if len(tuple) > 1 {
		if err := json.Unmarshal(tuple[1], &p.Type); err != nil {
			p.Type = string(tuple[1])
		}
	}
	return nil
}

// DecodeModuleList reads the module list: a JSON object whose keys are
// module names. Values are ignored.
func DecodeModuleList(r io.Reader) ([]string, error) {
	names := []string{}
	err := eachMember(r, func(key string, _ json.RawMessage) error {
		names = append(names, key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// DecodeManifest reads a module manifest mapping symbol name to
// {kind, type, params, retType, description}. Records keep key order.
func DecodeManifest(module string, r io.Reader) ([]docindex.Record, error) {
	records := []docindex.Record{}
	err := eachMember(r, func(key string, raw json.RawMessage) error {
		var s symbol
		if err := json.Unmarshal(raw, &s); err != nil {
			return docindex.Errorf(docindex.EINVALID, "symbol %q: %v", key, err)
		}
		records = append(records, s.record(module, key))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *symbol) record(module, key string) docindex.Record {
	switch s.Kind {
	case docindex.KindVariable:
		return &docindex.ModuleVariable{
			Module:      module,
			Label:       key,
			Type:        s.Type,
			Description: s.Description,
		}
	case docindex.KindFunction:
		params := make([]docindex.Param, len(s.Params))
		for i, p := range s.Params {
			params[i] = docindex.Param(p)
		}
		return &docindex.ModuleFunction{
			Module:      module,
			Label:       key,
			Params:      params,
			ReturnType:  s.RetType,
			Description: s.Description,
		}
	default:
		return &docindex.ModuleUnknown{Module: module, Label: key}
	}
}
