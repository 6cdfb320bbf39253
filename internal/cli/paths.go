package cli

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/graphtrail/graphtrail/pkg/edgefile"
)

// pathsOpts holds the flags for the paths command.
type pathsOpts struct {
	maxSteps int  // maximum nodes per path, negative for unbounded
	directed bool // force directed interpretation
}

// newPathsCmd creates the paths command. It loads a graph file (edge
// list or TOML, detected by extension), runs the unbounded search or,
// with --max-steps, the bounded variant, and prints one path per line.
func newPathsCmd() *cobra.Command {
	opts := pathsOpts{maxSteps: -1}

	cmd := &cobra.Command{
		Use:   "paths <file> <start> <end>",
		Short: "Enumerate simple paths between two nodes of a graph file",
		Long: `Enumerate every simple path between two nodes of a graph file.

The file is either plain edge-list text (one "from to" pair per line,
# comments allowed) or a TOML document with directed and edges keys,
detected by extension.

Examples:
  graphtrail paths edges.txt 1 4
  graphtrail paths edges.txt a d --max-steps 3
  graphtrail paths graph.toml start end --directed`,
		Args: cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			return runPaths(c.Context(), &opts, args[0], args[1], args[2], c.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&opts.maxSteps, "max-steps", opts.maxSteps, "maximum nodes per path (negative for unbounded)")
	cmd.Flags().BoolVar(&opts.directed, "directed", false, "treat edges as directed")

	return cmd
}

// runPaths loads the graph file, runs the query, and writes the result
// to out. An empty result is not an error: a dim note is printed and
// the command exits zero.
func runPaths(ctx context.Context, opts *pathsOpts, file, start, end string, out io.Writer) error {
	logger := loggerFromContext(ctx)

	doc, err := edgefile.ParseFile(file)
	if err != nil {
		return err
	}
	if opts.directed {
		doc.Directed = true
	}
	g := doc.Graph()
	logger.Debugf("Loaded %s: %d edges, %d nodes, directed=%v", file, len(doc.Edges), g.NodeCount(), g.IsDirected())

	prog := newProgress(logger)
	var paths [][]string
	if opts.maxSteps < 0 {
		paths = g.FindAllPaths(start, end)
	} else {
		paths = g.FindPathsWithMaxSteps(start, end, opts.maxSteps)
	}
	prog.done(fmt.Sprintf("Found %d paths from %s to %s", len(paths), start, end))

	if len(paths) == 0 {
		fmt.Fprintln(out, styleDim.Render(fmt.Sprintf("no paths from %s to %s", start, end)))
		return nil
	}

	// Neighbor iteration order is unspecified, so sort the rendered
	// lines for stable shell output. Node order within a path is the
	// visit order and is never touched.
	lines := make([]string, len(paths))
	for i, p := range paths {
		lines[i] = renderPath(p)
	}
	slices.Sort(lines)
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}

	return nil
}
