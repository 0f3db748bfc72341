package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestContainerSource_ReadContainer(t *testing.T) {
	t.Parallel()

	t.Run("reads records from file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "source_1.json", `{"foo": {"title": "foo(a, b)", "description": "<p>does X</p>", "meta": "func"}}`)

		records, err := fs.NewContainerSource().ReadContainer(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, []docindex.Record{
			&docindex.LocalRecord{Label: "foo", Title: "foo(a, b)", Description: "<p>does X</p>", Meta: "func"},
		}, records)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewContainerSource().ReadContainer(context.Background(), filepath.Join(t.TempDir(), "nope.json"))

		require.Error(t, err)
	})

	t.Run("malformed file is invalid", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "bad.json", `{"foo": `)

		_, err := fs.NewContainerSource().ReadContainer(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, docindex.EINVALID, docindex.ErrorCode(err))
	})
}

func TestLoadPatchTable(t *testing.T) {
	t.Parallel()

	t.Run("empty path means no patches", func(t *testing.T) {
		t.Parallel()

		patches, err := fs.LoadPatchTable("")

		require.NoError(t, err)
		assert.Nil(t, patches)
	})

	t.Run("loads JSON by default", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "patches.json", `{"rename_params": {"foo": ["x"]}, "optional_params": {}, "hasRestElement": []}`)

		patches, err := fs.LoadPatchTable(path)

		require.NoError(t, err)
		params, err := patches.ResolveParams("foo", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, params)
	})

	t.Run("loads YAML by extension", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "patches.YML", "hasRestElement:\n  - list\n")

		patches, err := fs.LoadPatchTable(path)

		require.NoError(t, err)
		assert.True(t, patches.HasRestElement("list"))
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := fs.LoadPatchTable(filepath.Join(t.TempDir(), "missing.json"))

		require.Error(t, err)
	})
}
