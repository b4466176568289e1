package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/observability"
	"github.com/matzehuels/algoviz/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		noMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve trees, searches, renders, stepping sessions and ciphers over HTTP.
Prometheus metrics are exposed at /metrics unless --no-metrics is set.`,
		Example: `  algoviz serve
  algoviz serve --addr :9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			cfg := c.serverConfig()
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			opts := []server.Option{server.WithLogger(c.Logger)}
			if !noMetrics {
				prom := observability.NewPrometheusHooks(prometheus.NewRegistry())
				prom.Register()
				defer observability.Reset()
				opts = append(opts, server.WithMetrics(prom.Handler()))
			}

			c.Logger.Info("starting server", "addr", cfg.Addr, "cache", c.Config.Cache.Backend)
			return server.New(runner, cfg, opts...).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "do not expose /metrics")
	return cmd
}

// serverConfig maps the [server] config section to listener settings.
func (c *CLI) serverConfig() server.Config {
	s := c.Config.Server
	return server.Config{
		Addr:            s.Addr,
		ReadTimeout:     s.ReadTimeout.Std(),
		WriteTimeout:    s.WriteTimeout.Std(),
		ShutdownTimeout: s.ShutdownTimeout.Std(),
		SessionTTL:      s.SessionTTL.Std(),
		MaxBodyBytes:    s.MaxBodyBytes,
	}
}
