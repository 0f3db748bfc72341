package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.ContainerSource = (*ContainerSource)(nil)

// ContainerSource is a mock implementation of docindex.ContainerSource.
type ContainerSource struct {
	ReadContainerFn func(ctx context.Context, location string) ([]docindex.Record, error)
}

func (s *ContainerSource) ReadContainer(ctx context.Context, location string) ([]docindex.Record, error) {
	return s.ReadContainerFn(ctx, location)
}

var _ docindex.ModuleSource = (*ModuleSource)(nil)

// ModuleSource is a mock implementation of docindex.ModuleSource.
type ModuleSource struct {
	ListModulesFn func(ctx context.Context) ([]string, error)
	ReadModuleFn  func(ctx context.Context, name string) ([]docindex.Record, error)
}

func (s *ModuleSource) ListModules(ctx context.Context) ([]string, error) {
	return s.ListModulesFn(ctx)
}

func (s *ModuleSource) ReadModule(ctx context.Context, name string) ([]docindex.Record, error) {
	return s.ReadModuleFn(ctx, name)
}

var _ docindex.IndexStore = (*IndexStore)(nil)

// IndexStore is a mock implementation of docindex.IndexStore.
type IndexStore struct {
	WriteFn func(ctx context.Context, data []byte) (string, error)
}

func (s *IndexStore) Write(ctx context.Context, data []byte) (string, error) {
	return s.WriteFn(ctx, data)
}
