package main

// Run executes the site command.
func (c *SiteCmd) Run(deps *Dependencies) error {
	return buildChapters(deps, c.Chapters, c.Patches)
}
