package json_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docindex"
	docjson "github.com/fwojciec/docindex/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeModuleList(t *testing.T) {
	t.Parallel()

	t.Run("returns keys in order", func(t *testing.T) {
		t.Parallel()

		in := `{"rune": {"tabs": []}, "curve": {}, "binary_tree": {"tabs": ["x"]}}`

		names, err := docjson.DecodeModuleList(strings.NewReader(in))

		require.NoError(t, err)
		assert.Equal(t, []string{"rune", "curve", "binary_tree"}, names)
	})

	t.Run("rejects non-object", func(t *testing.T) {
		t.Parallel()

		_, err := docjson.DecodeModuleList(strings.NewReader(`<html>404</html>`))

		require.Error(t, err)
		assert.Equal(t, docindex.EINVALID, docindex.ErrorCode(err))
	})
}

func TestDecodeManifest(t *testing.T) {
	t.Parallel()

	t.Run("decodes every kind in order", func(t *testing.T) {
		t.Parallel()

		in := `{
			"f": {"kind": "function", "params": [["x", "number"], ["y", "string"]], "retType": "string", "description": "<p>F.</p>"},
			"v": {"kind": "variable", "type": "Rune", "description": "<p>V.</p>"},
			"T": {"kind": "unknown", "description": ""}
		}`

		records, err := docjson.DecodeManifest("M", strings.NewReader(in))

		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, &docindex.ModuleFunction{
			Module:      "M",
			Label:       "f",
			Params:      []docindex.Param{{Name: "x", Type: "number"}, {Name: "y", Type: "string"}},
			ReturnType:  "string",
			Description: "<p>F.</p>",
		}, records[0])
		assert.Equal(t, &docindex.ModuleVariable{Module: "M", Label: "v", Type: "Rune", Description: "<p>V.</p>"}, records[1])
		assert.Equal(t, &docindex.ModuleUnknown{Module: "M", Label: "T"}, records[2])
	})

	t.Run("unrecognized kind reserves the name", func(t *testing.T) {
		t.Parallel()

		records, err := docjson.DecodeManifest("M", strings.NewReader(`{"C": {"kind": "class"}}`))

		require.NoError(t, err)
		assert.Equal(t, []docindex.Record{&docindex.ModuleUnknown{Module: "M", Label: "C"}}, records)
	})

	t.Run("parameter tuple with name only", func(t *testing.T) {
		t.Parallel()

		records, err := docjson.DecodeManifest("M", strings.NewReader(`{"f": {"kind": "function", "params": [["x"]], "retType": "void"}}`))

		require.NoError(t, err)
		fn := records[0].(*docindex.ModuleFunction)
		assert.Equal(t, []docindex.Param{{Name: "x"}}, fn.Params)
	})

	t.Run("function without params", func(t *testing.T) {
		t.Parallel()

		records, err := docjson.DecodeManifest("M", strings.NewReader(`{"now": {"kind": "function", "retType": "number"}}`))

		require.NoError(t, err)
		fn := records[0].(*docindex.ModuleFunction)
		assert.Empty(t, fn.Params)
	})

	t.Run("rejects empty parameter tuple", func(t *testing.T) {
		t.Parallel()

		_, err := docjson.DecodeManifest("M", strings.NewReader(`{"f": {"kind": "function", "params": [[]]}}`))

		require.Error(t, err)
		assert.Equal(t, docindex.EINVALID, docindex.ErrorCode(err))
	})
}
