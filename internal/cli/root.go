// Package cli implements the graphtrail command-line interface.
//
// Commands:
//   - paths: enumerate simple paths between two nodes of a graph file
//   - serve: run the HTTP query API
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the graphtrail CLI and returns an error if any command
// fails. The logger level follows the --verbose flag and the logger is
// attached to the command context for loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "graphtrail",
		Short:        "graphtrail enumerates simple paths in graphs",
		Long:         `graphtrail loads a graph from an edge-list or TOML file and enumerates every simple path between two nodes, optionally bounded by a maximum path length.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("graphtrail %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPathsCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
