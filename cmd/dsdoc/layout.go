package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dsdoc/dsdoc"
	"github.com/dsdoc/dsdoc/figma"
)

// Run executes the layout command.
func (c *LayoutCmd) Run(deps *Dependencies) error {
	fileKey, nodeID, err := figma.ParseFileURL(c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dsdoc.ErrorMessage(err))
		return err
	}

	layout, err := deps.Figma.ExtractLayout(deps.Ctx, fileKey, nodeID)
	if err != nil {
		var rateErr *figma.RateLimitError
		if errors.As(err, &rateErr) && rateErr.RetryAfter > 0 {
			fmt.Fprintf(deps.Stderr, "error: rate limited, try again in %s\n", rateErr.RetryAfter)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", dsdoc.ErrorMessage(err))
		return err
	}

	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return err
	}

	if c.Out != "" {
		if err := os.WriteFile(c.Out, append(data, '\n'), 0o644); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote layout %q to %s\n", layout.Name, c.Out)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s\n", data)
	return nil
}
