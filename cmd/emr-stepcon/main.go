// Package main is the entry point for the emr-stepcon CLI.
//
// emr-stepcon manages the step concurrency level of EMR clusters through
// bindings: a binding claims one cluster's attribute, tracks it with a
// bookkeeping tag, and restores the default when deleted.
//
// For detailed usage information, run:
//
//	emr-stepcon --help
package main

import (
	"fmt"
	"os"

	"github.com/jbx-labs/emr-stepcon/cmd/emr-stepcon/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
