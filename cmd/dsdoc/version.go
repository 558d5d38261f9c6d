package main

import "fmt"

// version is stamped at build time via -ldflags.
var version = "dev"

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "dsdoc %s\n", version)
	return nil
}
