// Package main implements the tabulate binary. It is the only
// public-facing entry point to tabulate, since tabulate's Go packages
// are all internal.
package main

import "github.com/tabulatehq/tabulate/internal/cli"

// Main entry point for the tabulate binary.
func main() {
	cli.DoCLI()
}
