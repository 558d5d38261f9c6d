package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/dsdoc/dsdoc"
	"github.com/dsdoc/dsdoc/extract"
	"github.com/dsdoc/dsdoc/figma"
	"github.com/dsdoc/dsdoc/goquery"
	"github.com/dsdoc/dsdoc/htmltomarkdown"
	dshttp "github.com/dsdoc/dsdoc/http"
	"github.com/dsdoc/dsdoc/mem"
	"github.com/dsdoc/dsdoc/rod"
	dslog "github.com/dsdoc/dsdoc/slog"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. Run wires production
	// implementations for any left nil.
	Index    dsdoc.StoryIndexService
	Fetcher  dsdoc.Fetcher
	Parser   dsdoc.PropParser
	Launcher dsdoc.RendererLauncher
	Cache    dsdoc.SchemaCache

	// FigmaBaseURL overrides the design API endpoint for tests.
	FigmaBaseURL string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dsdoc"),
		kong.Description("Extract design-system metadata from component documentation sites"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'dsdoc --help' to see available commands")
	}
	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cmd := ""
	if node := kongCtx.Selected(); node != nil {
		cmd = node.Name
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Wire command-specific dependencies based on command
	if cmd == "extract" {
		index := m.Index
		if index == nil {
			index = dshttp.NewIndexService(nil)
		}
		fetcher := m.Fetcher
		if fetcher == nil {
			fetcher = dshttp.NewFetcher()
		}
		propParser := m.Parser
		if propParser == nil {
			propParser = goquery.NewParser(goquery.WithConverter(htmltomarkdown.NewConverter()))
		}
		cache := m.Cache
		if cache == nil {
			cache = mem.NewCache()
		}
		launcher := m.Launcher
		if launcher == nil && cli.Extract.Retry {
			launcher = rod.NewLauncher(rod.WithRenderTimeout(cli.Extract.RetryTimeout))
		}

		if cli.Verbose {
			index = dslog.NewLoggingIndexService(index, logger)
			fetcher = dslog.NewLoggingFetcher(fetcher, logger)
			propParser = dslog.NewLoggingParser(propParser, logger)
			cache = dslog.NewLoggingCache(cache, logger)
		}

		deps.Extractor = &extract.Extractor{
			Index:            index,
			Fetcher:          fetcher,
			Parser:           propParser,
			Launcher:         launcher,
			Cache:            cache,
			Name:             cli.Extract.Name,
			RetryDisabled:    !cli.Extract.Retry,
			BatchSize:        cli.Extract.Concurrency,
			MaxRetryFailures: cli.Extract.MaxRetryFailures,
		}
	}

	if cmd == "layout" {
		token := cli.Layout.Token
		if token == "" {
			fmt.Fprintln(stderr, "FIGMA_TOKEN environment variable not set. Generate a personal access token in your account settings.")
			return fmt.Errorf("figma API token not set. Pass --token or set FIGMA_TOKEN")
		}

		var opts []figma.Option
		if m.FigmaBaseURL != "" {
			opts = append(opts, figma.WithBaseURL(m.FigmaBaseURL))
		}
		deps.Figma = figma.NewClient(token, opts...)
	}

	return kongCtx.Run(deps)
}
