package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/docindex"
	dochttp "github.com/fwojciec/docindex/http"
	"github.com/fwojciec/docindex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModuleServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/modules.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rune": {"tabs": []}, "curve": {"tabs": []}}`))
	})
	mux.HandleFunc("/jsons/rune.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"heart": {"kind": "variable", "type": "Rune", "description": "<p>A heart.</p>"},
			"stack": {"kind": "function", "params": [["a", "Rune"], ["b", "Rune"]], "retType": "Rune", "description": "<p>Stacks.</p>"}
		}`))
	})
	mux.HandleFunc("/jsons/curve.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestModuleService_ListModules(t *testing.T) {
	t.Parallel()

	t.Run("returns module names in order", func(t *testing.T) {
		t.Parallel()

		server := newModuleServer(t)
		svc := dochttp.NewModuleService(dochttp.NewFetcher(), server.URL+"/modules.json", server.URL+"/jsons")

		names, err := svc.ListModules(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"rune", "curve"}, names)
	})

	t.Run("fetch failure is returned", func(t *testing.T) {
		t.Parallel()

		server := newModuleServer(t)
		svc := dochttp.NewModuleService(dochttp.NewFetcher(), server.URL+"/missing.json", server.URL+"/jsons")

		_, err := svc.ListModules(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})
}

func TestModuleService_ReadModule(t *testing.T) {
	t.Parallel()

	t.Run("decodes manifest records", func(t *testing.T) {
		t.Parallel()

		server := newModuleServer(t)
		svc := dochttp.NewModuleService(dochttp.NewFetcher(), server.URL+"/modules.json", server.URL+"/jsons/")

		records, err := svc.ReadModule(context.Background(), "rune")

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, &docindex.ModuleVariable{Module: "rune", Label: "heart", Type: "Rune", Description: "<p>A heart.</p>"}, records[0])
		assert.Equal(t, "stack", records[1].Key())
	})

	t.Run("non-JSON manifest is invalid", func(t *testing.T) {
		t.Parallel()

		server := newModuleServer(t)
		svc := dochttp.NewModuleService(dochttp.NewFetcher(), server.URL+"/modules.json", server.URL+"/jsons")

		_, err := svc.ReadModule(context.Background(), "curve")

		require.Error(t, err)
		assert.Equal(t, docindex.EINVALID, docindex.ErrorCode(err))
	})

	t.Run("requests docs URL with module name", func(t *testing.T) {
		t.Parallel()

		var requested string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				requested = url
				return `{}`, nil
			},
		}
		svc := dochttp.NewModuleService(fetcher, "https://example.com/modules.json", "https://example.com/jsons")

		records, err := svc.ReadModule(context.Background(), "binary_tree")

		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Equal(t, "https://example.com/jsons/binary_tree.json", requested)
	})
}
