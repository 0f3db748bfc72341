package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/fs"
	"github.com/fwojciec/docindex/index"
	"github.com/fwojciec/docindex/json"
)

const localUsage = "usage: docindex local FILE.json [FILE.json ...]"

// Run executes the local command.
func (c *LocalCmd) Run(deps *Dependencies) error {
	if len(c.Paths) == 0 {
		fmt.Fprintln(deps.Stdout, localUsage)
		return nil
	}

	return buildChapters(deps, c.Paths, c.Patches)
}

// buildChapters normalizes every location into one group and writes the
// chapters array. Shared by the local and site commands.
func buildChapters(deps *Dependencies, locations []string, patchPath string) error {
	patches, err := fs.LoadPatchTable(patchPath)
	if err != nil {
		return fmt.Errorf("loading patches: %w", err)
	}

	b := &index.Builder{
		Normalizer: &index.Normalizer{Renderer: deps.Renderer, Patches: patches},
		Containers: deps.Containers,
	}

	groups, err := b.BuildChapters(deps.Ctx, locations)
	if err != nil {
		return err
	}

	data, err := json.MarshalChapters(groups)
	if err != nil {
		return err
	}

	return writeIndex(deps, groups, data)
}

func writeIndex(deps *Dependencies, groups []*docindex.Group, data []byte) error {
	digest, err := deps.Store.Write(deps.Ctx, data)
	if err != nil {
		return fmt.Errorf("writing index: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d groups, %d entries (digest %s)\n",
		len(groups), docindex.EntryCount(groups), digest)
	return nil
}
