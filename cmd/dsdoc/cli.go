package main

import (
	"context"
	"io"
	"time"

	"github.com/dsdoc/dsdoc/extract"
	"github.com/dsdoc/dsdoc/figma"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Extractor *extract.Extractor
	Figma     *figma.Client
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log service calls to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract a component schema from a documentation site"`
	Layout  LayoutCmd  `cmd:"" help:"Extract a layout tree from a design file node"`
	Version VersionCmd `cmd:"" help:"Print the version"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL              string        `arg:"" help:"Documentation site URL"`
	Name             string        `help:"Schema name (defaults to the site host)"`
	Retry            bool          `default:"true" negatable:"" help:"Render low-confidence pages in a headless browser (--no-retry disables)"`
	RetryTimeout     time.Duration `default:"10s" env:"DSDOC_TIMEOUT" help:"Render timeout per retried page"`
	MaxRetryFailures int           `default:"3" help:"Consecutive render failures before remaining retries are cancelled"`
	Concurrency      int           `short:"c" default:"5" env:"DSDOC_CONCURRENCY" help:"Concurrent page fetches per batch"`
	Format           string        `default:"list" enum:"list,map" help:"Schema shape: ordered component list or by-name map"`
	Out              string        `short:"o" help:"Write the schema to a file instead of stdout"`
}

// LayoutCmd is the "layout" subcommand.
type LayoutCmd struct {
	URL   string `arg:"" help:"Design file URL carrying a node-id parameter"`
	Token string `env:"FIGMA_TOKEN" help:"Personal access token (defaults to FIGMA_TOKEN)"`
	Out   string `short:"o" help:"Write the layout to a file instead of stdout"`
}
