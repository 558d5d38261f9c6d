package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dsdoc/dsdoc"
	"github.com/dsdoc/dsdoc/extract"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	progress := func(event extract.ProgressEvent) {
		switch event.Type {
		case extract.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Found %d components\n", event.Total)
		case extract.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Component, event.Error)
		case extract.ProgressRetried:
			fmt.Fprintf(deps.Stderr, "  rendered %s\n", event.Component)
		case extract.ProgressFinished:
			// Summary printed after extraction completes
		}
	}

	result, err := deps.Extractor.Extract(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dsdoc.ErrorMessage(err))
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(deps.Stderr, "warning: %s (%s)\n", w.Message, strings.Join(w.Components, ", "))
	}

	switch {
	case result.FromCache:
		fmt.Fprintf(deps.Stderr, "Serving cached schema for %s\n", result.Schema.Source)
	case result.Retried > 0:
		fmt.Fprintf(deps.Stderr, "Extracted %d components (%d rendered, %d recovered)\n",
			len(result.Schema.Components), result.Retried, result.Recovered)
	default:
		fmt.Fprintf(deps.Stderr, "Extracted %d components\n", len(result.Schema.Components))
	}

	data, err := c.marshal(result.Schema)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dsdoc.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		if err := os.WriteFile(c.Out, append(data, '\n'), 0o644); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote schema for %q to %s\n", result.Schema.Name, c.Out)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s\n", data)
	return nil
}

// marshal serializes the schema in the requested shape, indented for
// human consumption.
func (c *ExtractCmd) marshal(schema *dsdoc.Schema) ([]byte, error) {
	if c.Format == "map" {
		raw, err := schema.MarshalMap()
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return json.MarshalIndent(schema, "", "  ")
}
