package cli

import (
	"github.com/spf13/cobra"

	"github.com/graphtrail/graphtrail/internal/server"
)

// newServeCmd creates the serve command, which runs the HTTP query API
// until interrupted.
func newServeCmd() *cobra.Command {
	addr := ":8080"

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP path-enumeration API",
		Long: `Run the HTTP path-enumeration API.

POST /v1/paths takes a JSON body with edges, start, end, and an optional
max_steps, and answers with every matching simple path. The server is
stateless; each request carries its own graph.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			s := server.New(loggerFromContext(c.Context()))
			return s.ListenAndServe(c.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", addr, "listen address")

	return cmd
}
