package main

import (
	"github.com/spf13/cobra"

	"github.com/cssonce/cssonce/pkg/server"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo SSR server",
		Long: `Serve the demo pages.

Routes:
  /         repeated instances of one styled component, one style block
  /gallery  several component types behind one keyed tracker
  /live     WebSocket endpoint; the connection is the tracker scope
  /metrics  Prometheus metrics
  /healthz  liveness probe`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.DefaultConfig()
			cfg.Address = addr
			return server.New(cfg).Start()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
