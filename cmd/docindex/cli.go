package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Renderer   docindex.Renderer
	Containers docindex.ContainerSource
	Modules    docindex.ModuleSource
	Store      docindex.IndexStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" env:"DOCINDEX_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`

	Local   LocalCmd   `cmd:"" help:"Convert local JSON documentation dumps, one chapter per file"`
	Modules ModulesCmd `cmd:"" help:"Download and convert module documentation manifests"`
	Site    SiteCmd    `cmd:"" help:"Scrape and convert the generated documentation site"`
}

// LocalCmd is the "local" subcommand.
type LocalCmd struct {
	Paths   []string `arg:"" optional:"" help:"JSON documentation dumps"`
	Patches string   `short:"P" env:"DOCINDEX_PATCHES" help:"Patch table (.json, .yaml or .yml)"`
	Output  string   `short:"o" default:"source.json" help:"Output file"`
}

// ModulesCmd is the "modules" subcommand.
type ModulesCmd struct {
	FetchOptions `embed:""`

	ListURL string `name:"list-url" default:"${module_list_url}" env:"DOCINDEX_MODULE_LIST_URL" help:"Module list URL"`
	DocsURL string `name:"docs-url" default:"${module_docs_url}" env:"DOCINDEX_MODULE_DOCS_URL" help:"Base URL of module manifests"`
	Output  string `short:"o" default:"modules.json" help:"Output file"`
}

// SiteCmd is the "site" subcommand.
type SiteCmd struct {
	FetchOptions `embed:""`

	BaseURL  string   `name:"base-url" default:"${site_base_url}" env:"DOCINDEX_SITE_URL" help:"Documentation site base URL"`
	Page     string   `default:"${site_page}" help:"Page to read in each chapter"`
	Chapters []string `name:"chapter" short:"c" default:"${site_chapters}" help:"Chapter to read (repeatable)"`
	Patches  string   `short:"P" env:"DOCINDEX_PATCHES" help:"Patch table (.json, .yaml or .yml)"`
	Output   string   `short:"o" default:"source.json" help:"Output file"`
}

// FetchOptions configures HTTP fetching.
type FetchOptions struct {
	Timeout time.Duration `short:"t" default:"10s" help:"Timeout per request (0 disables)"`
	Rate    float64       `default:"0" help:"Maximum requests per second (0 means unlimited)"`
}
