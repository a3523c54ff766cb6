package main

import (
	"os"

	"github.com/katalvlaran/combinat/internal/cli"
)

// Build-time version metadata, injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
