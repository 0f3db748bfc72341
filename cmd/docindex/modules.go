package main

import (
	"github.com/fwojciec/docindex/index"
	"github.com/fwojciec/docindex/json"
)

// Run executes the modules command.
func (c *ModulesCmd) Run(deps *Dependencies) error {
	b := &index.Builder{
		Normalizer: &index.Normalizer{Renderer: deps.Renderer},
		Modules:    deps.Modules,
	}

	groups, err := b.BuildModules(deps.Ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalModules(groups)
	if err != nil {
		return err
	}

	return writeIndex(deps, groups, data)
}
