package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/observability"
	"github.com/matzehuels/tagcloud/pkg/server"
)

type serveOpts struct {
	addr    string
	noCache bool
}

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve the layout and render API over HTTP.

Routes:
  GET  /healthz
  POST /v1/layouts
  GET  /v1/layouts/{id}
  POST /v1/layouts/{id}/render?format=svg
  POST /v1/render?format=png
  GET  /v1/stats`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			addr := c.cfg.Server.Addr
			if cmd.Flags().Changed("addr") {
				addr = opts.addr
			}

			runner, err := c.newRunner(ctx, opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			stats := observability.NewStats()
			observability.SetAll(observability.Tee{observability.NewLogHooks(logger), stats})

			srv := server.New(runner, logger, server.Config{
				MaxRadius: c.cfg.Server.MaxRadius,
				MaxRects:  c.cfg.Server.MaxRects,
				MaxPixels: c.cfg.Server.MaxPixels,
				Timeout:   c.cfg.Server.Timeout,
				Stats:     stats,
			})
			printInfo("Listening on %s", StyleLink.Render(addr))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}
