package http

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/json"
)

// Default locations of the module list and per-module manifests.
const (
	DefaultModuleListURL = "https://raw.githubusercontent.com/source-academy/modules/refs/heads/master/modules.json"
	DefaultModuleDocsURL = "https://source-academy.github.io/modules/jsons"
)

// Ensure ModuleService implements docindex.ModuleSource at compile time.
var _ docindex.ModuleSource = (*ModuleService)(nil)

// ModuleService reads the module list and module manifests over HTTP.
type ModuleService struct {
	fetcher docindex.Fetcher
	listURL string
	docsURL string
}

// NewModuleService creates a ModuleService. Manifests are read from
// docsURL/<name>.json.
func NewModuleService(fetcher docindex.Fetcher, listURL, docsURL string) *ModuleService {
	return &ModuleService{
		fetcher: fetcher,
		listURL: listURL,
		docsURL: strings.TrimSuffix(docsURL, "/"),
	}
}

// ListModules returns module names in the list's key order.
func (s *ModuleService) ListModules(ctx context.Context) ([]string, error) {
	body, err := s.fetcher.Fetch(ctx, s.listURL)
	if err != nil {
		return nil, fmt.Errorf("fetching module list: %w", err)
	}
	return json.DecodeModuleList(strings.NewReader(body))
}

// ReadModule fetches and decodes the manifest of one module.
func (s *ModuleService) ReadModule(ctx context.Context, name string) ([]docindex.Record, error) {
	body, err := s.fetcher.Fetch(ctx, s.ManifestURL(name))
	if err != nil {
		return nil, fmt.Errorf("fetching manifest: %w", err)
	}
	return json.DecodeManifest(name, strings.NewReader(body))
}

// ManifestURL returns the manifest location for module name.
func (s *ModuleService) ManifestURL(name string) string {
	return s.docsURL + "/" + url.PathEscape(name) + ".json"
}
