// Package cli implements the combinat command-line interface.
//
// The CLI exposes one subcommand per combinatorial space — comb, perm,
// kperm, gosper, powerset, product — each streaming results line by line
// to stdout. Elements come from positional arguments or from a TOML file
// via --input. Diagnostics go to stderr through charmbracelet/log;
// --verbose (-v) raises the level to debug.
//
// # Example
//
//	combinat comb -k 2 red green blue
//	combinat gosper -n 5 -k 3
//	combinat product --input pairs.toml
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v0.3.0")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version,
// typically injected by the main package via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the combinat CLI and returns an error if any command
// fails. Logging defaults to info level on stderr; --verbose switches to
// debug. The logger travels in the command context so every subcommand
// retrieves it with loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "combinat",
		Short:        "combinat enumerates combinatorial spaces from the shell",
		Long:         `combinat streams combinations, permutations, arrangements, bitmask spaces and Cartesian products to stdout, one result per line, without materializing the space.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("combinat %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newCombCmd())
	root.AddCommand(newPermCmd())
	root.AddCommand(newKPermCmd())
	root.AddCommand(newGosperCmd())
	root.AddCommand(newPowerSetCmd())
	root.AddCommand(newProductCmd())

	return root.ExecuteContext(context.Background())
}
