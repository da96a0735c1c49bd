package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// ServeFunc starts the HTTP server on addr and blocks until ctx is done.
type ServeFunc func(ctx context.Context, addr string) error

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ServeFn(cmd.Context(), addr)
		},
	}

	defaultAddr := os.Getenv("CRONO_ADDR")
	if defaultAddr == "" {
		defaultAddr = ":8321"
	}
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address (also CRONO_ADDR)")
	return cmd
}
