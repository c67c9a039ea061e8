package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/server"
)

func newServeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  "Start an HTTP server exposing the parse, score, question generation and health endpoints.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return server.New(c.cfg, c.svc, c.logger).Start(cmd.Context())
		},
	}

	cmd.Flags().String("host", "0.0.0.0", "Address to bind")
	cmd.Flags().Int("port", 8000, "Port to listen on")
	_ = c.v.BindPFlag("host", cmd.Flags().Lookup("host"))
	_ = c.v.BindPFlag("port", cmd.Flags().Lookup("port"))

	return cmd
}
