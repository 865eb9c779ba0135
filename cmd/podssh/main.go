// Package main is the entry point for the podssh CLI.
//
// podssh keeps an SSH client config fragment in sync with the instances
// of a cloud GPU provider, and extracts public keys from free-form text.
//
// Commands: sync, keys, init, version, completion.
//
// For detailed usage information, run:
//
//	podssh --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/podssh/cmd/podssh/commands"
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
