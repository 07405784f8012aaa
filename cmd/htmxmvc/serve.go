package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-htmx-mvc/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	var reload bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("reload") {
				cfg.Views.Reload = reload
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			srv, err := server.New(cfg, a.logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address override")
	cmd.Flags().BoolVar(&reload, "reload", false, "recompile views when files under views.dir change")
	return cmd
}
