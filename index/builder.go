package index

import (
	"context"
	"fmt"

	"github.com/fwojciec/docindex"
)

// Builder aggregates normalized entries into groups, one per container
// or module, preserving source order throughout.
type Builder struct {
	Normalizer *Normalizer
	Containers docindex.ContainerSource
	Modules    docindex.ModuleSource
}

// BuildChapters reads each location in order and returns one group per
// location. Any error aborts the whole build.
func (b *Builder) BuildChapters(ctx context.Context, locations []string) ([]*docindex.Group, error) {
	groups := make([]*docindex.Group, 0, len(locations))
	for _, loc := range locations {
		records, err := b.Containers.ReadContainer(ctx, loc)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", loc, err)
		}

		g, err := b.buildGroup(loc, records)
		if err != nil {
			return nil, fmt.Errorf("normalizing %s: %w", loc, err)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// BuildModules lists the available modules and reads them one at a time.
// A failure on any module aborts the whole build.
func (b *Builder) BuildModules(ctx context.Context) ([]*docindex.Group, error) {
	names, err := b.Modules.ListModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}

	groups := make([]*docindex.Group, 0, len(names))
	for _, name := range names {
		records, err := b.Modules.ReadModule(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("reading module %s: %w", name, err)
		}

		g, err := b.buildGroup(name, records)
		if err != nil {
			return nil, fmt.Errorf("normalizing module %s: %w", name, err)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func (b *Builder) buildGroup(name string, records []docindex.Record) (*docindex.Group, error) {
	seen := make(map[string]struct{}, len(records))
	entries := make([]*docindex.Entry, 0, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.Key()]; ok {
			return nil, docindex.Errorf(docindex.EINVALID, "duplicate label %q", rec.Key())
		}
		seen[rec.Key()] = struct{}{}

		e, err := b.Normalizer.Normalize(rec)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return &docindex.Group{Name: name, Entries: entries}, nil
}
