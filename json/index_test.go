package json_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docindex"
	docjson "github.com/fwojciec/docindex/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalChapters(t *testing.T) {
	t.Parallel()

	t.Run("encodes one array per group", func(t *testing.T) {
		t.Parallel()

		groups := []*docindex.Group{
			{Name: "source_1.json", Entries: []*docindex.Entry{
				{Label: "foo", Title: "foo(a, b)", Description: "does X", Meta: docindex.MetaFunc, Parameters: []string{"a", "b"}},
			}},
			{Name: "source_2.json"},
		}

		b, err := docjson.MarshalChapters(groups)

		require.NoError(t, err)
		assert.JSONEq(t, `[[{"label":"foo","title":"foo(a, b)","description":"does X","meta":"func","parameters":["a","b"]}],[]]`, string(b))
	})

	t.Run("does not escape markup characters", func(t *testing.T) {
		t.Parallel()

		groups := []*docindex.Group{{Entries: []*docindex.Entry{
			{Label: "lt", Title: "a < b && c > d", Meta: docindex.MetaConst},
		}}}

		b, err := docjson.MarshalChapters(groups)

		require.NoError(t, err)
		assert.Contains(t, string(b), `"a < b && c > d"`)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		groups := []*docindex.Group{{Entries: []*docindex.Entry{
			{Label: "list", Title: "list(...xs)", Meta: docindex.MetaFunc, Parameters: []string{"xs"}, HasRestElement: true},
		}}}

		first, err := docjson.MarshalChapters(groups)
		require.NoError(t, err)
		second, err := docjson.MarshalChapters(groups)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestMarshalModules(t *testing.T) {
	t.Parallel()

	t.Run("keeps module order", func(t *testing.T) {
		t.Parallel()

		groups := []*docindex.Group{
			{Name: "rune", Entries: []*docindex.Entry{{Label: "heart", Title: "Auto-import from rune", Description: "#### heart:Rune\n", Meta: docindex.MetaConst}}},
			{Name: "curve"},
			{Name: "binary_tree"},
		}

		b, err := docjson.MarshalModules(groups)

		require.NoError(t, err)
		assert.JSONEq(t, `{"rune":[{"label":"heart","title":"Auto-import from rune","description":"#### heart:Rune\n","meta":"const"}],"curve":[],"binary_tree":[]}`, string(b))
		out := string(b)
		assert.Less(t, strings.Index(out, `"rune"`), strings.Index(out, `"curve"`))
		assert.Less(t, strings.Index(out, `"curve"`), strings.Index(out, `"binary_tree"`))
	})

	t.Run("empty index is an empty object", func(t *testing.T) {
		t.Parallel()

		b, err := docjson.MarshalModules(nil)

		require.NoError(t, err)
		assert.Equal(t, "{}\n", string(b))
	})
}
