// Command docindex builds the autocomplete documentation index from local
// JSON dumps, remote module manifests, or a generated documentation site.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/fs"
	"github.com/fwojciec/docindex/goquery"
	"github.com/fwojciec/docindex/htmltomarkdown"
	dochttp "github.com/fwojciec/docindex/http"
	"github.com/fwojciec/docindex/index"
	docslog "github.com/fwojciec/docindex/slog"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// Optional; flags and the environment still apply without it.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docindex"),
		kong.Description("Build the autocomplete documentation index"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"module_list_url": dochttp.DefaultModuleListURL,
			"module_docs_url": dochttp.DefaultModuleDocsURL,
			"site_base_url":   goquery.DefaultBaseURL,
			"site_page":       goquery.DefaultPage,
			"site_chapters":   strings.Join(goquery.DefaultChapters, ","),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docindex --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cli.LogLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger.With("run", uuid.NewString())

	conv := htmltomarkdown.NewConverter()

	// Wire command-specific dependencies based on command
	switch cmd := strings.Fields(kongCtx.Command())[0]; cmd {
	case "local":
		deps.Containers = docslog.NewLoggingContainerSource(fs.NewContainerSource(), deps.Logger)
		deps.Store = fs.NewIndexStore(cli.Local.Output)

	case "modules":
		fetcher := newFetcher(cli.Modules.FetchOptions, deps.Logger)
		defer fetcher.Close()

		svc := dochttp.NewModuleService(fetcher, cli.Modules.ListURL, cli.Modules.DocsURL)
		deps.Modules = docslog.NewLoggingModuleSource(svc, deps.Logger)
		deps.Store = fs.NewIndexStore(cli.Modules.Output)

	case "site":
		fetcher := newFetcher(cli.Site.FetchOptions, deps.Logger)
		defer fetcher.Close()

		pages := goquery.NewPageSource(fetcher, cli.Site.BaseURL, cli.Site.Page)
		deps.Containers = docslog.NewLoggingContainerSource(pages, deps.Logger)
		deps.Store = fs.NewIndexStore(cli.Site.Output)
		conv = htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(cli.Site.BaseURL))
	}
	deps.Renderer = index.NewRenderer(conv)

	return kongCtx.Run(deps)
}

func newFetcher(opts FetchOptions, logger *slog.Logger) docindex.Fetcher {
	fetcher := dochttp.NewFetcher(
		dochttp.WithTimeout(opts.Timeout),
		dochttp.WithRateLimit(opts.Rate),
	)
	return docslog.NewLoggingFetcher(fetcher, logger)
}
