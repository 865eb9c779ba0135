// Package main is the standalone public key extractor.
//
//	parse-keys pod.log -o authorized_keys.new [--append]
package main

import (
	"fmt"
	"os"

	"github.com/imamik/podssh/cmd/podssh/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.ParseKeys().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
