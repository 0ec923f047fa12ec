// Package main is the entry point for the auroractl CLI.
//
// auroractl is a command-line tool for provisioning auto-scaling serverless
// database clusters on AWS. It provides a stateless, declarative approach:
// a single YAML file describes the cluster, and auroractl resolves,
// validates and materializes it.
//
// Commands: init, validate, render, apply.
//
// For detailed usage information, run:
//
//	auroractl --help
package main

import (
	"fmt"
	"os"

	"github.com/auroractl/auroractl/cmd/auroractl/commands"
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
