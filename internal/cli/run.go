package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/squaresum/driver"
)

func (c *CLI) runCommand() *cobra.Command {
	var (
		configPath string
		flags      = DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Grow cycles from the seed until the ceiling",
		Long: `Run extends the 32-vertex seed cycle one vertex at a time, closing each
extended path by randomized reversals, and prints a checkpoint whenever the
size hits a milestone and once more at the ceiling.

Checkpoints go to stdout, progress logs to stderr. A size whose path cannot be
closed within --max-attempts steps aborts the run with a non-zero exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				loaded, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			cfg.overrideFrom(cmd.Flags(), flags)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML configuration file")
	flags.bindFlags(cmd.Flags())

	return cmd
}

// run executes one grow loop with cfg.
func (c *CLI) run(ctx context.Context, cfg Config) error {
	logger := loggerFromContext(ctx)

	var reporter driver.Reporter = driver.NewTextReporter(c.out)
	if cfg.Format == FormatJSON {
		reporter = driver.NewJSONReporter(c.out)
	}

	opts := []driver.Option{
		driver.WithCeiling(cfg.Ceiling),
		driver.WithMilestones(cfg.MilestoneEvery, cfg.MilestoneOffset),
		driver.WithCycleOptions(cfg.cycleOptions()...),
		driver.WithReporter(reporter),
		driver.WithLogger(logger),
	}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		opts = append(opts, driver.WithMetrics(driver.NewMetrics(reg)))

		stop, err := serveMetrics(cfg.MetricsAddr, reg, logger)
		if err != nil {
			return err
		}
		defer stop()
		logger.Info("serving metrics", "addr", cfg.MetricsAddr)
	}

	sum, err := driver.New(opts...).Run(ctx)
	logger.Info("run finished",
		"start", sum.Start,
		"final", sum.Final,
		"extensions", sum.Extensions,
		"steps", sum.Steps,
		"max_iterations", sum.MaxIterations,
		"elapsed", sum.Elapsed.Round(time.Millisecond),
	)
	return err
}

// serveMetrics exposes reg on addr/metrics until the returned stop is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *log.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "err", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
