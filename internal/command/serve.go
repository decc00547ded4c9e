package command

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stolasapp/syllabus/internal/api"
	"github.com/stolasapp/syllabus/internal/config"
	"github.com/stolasapp/syllabus/internal/monitoring"
	"github.com/stolasapp/syllabus/internal/server"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "serve the course directory REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
			cfg, logger, store, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			grp, ctx := errgroup.WithContext(cmd.Context())

			metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)
			apiServer := api.New(cfg, logger, store, metrics)

			serveAPI(ctx, grp, cfg, logger, apiServer)
			serveMetrics(ctx, grp, cfg, logger)
			return grp.Wait()
		},
	}
}

func serveAPI(
	ctx context.Context,
	grp *errgroup.Group,
	cfg *config.Config,
	logger *slog.Logger,
	srv *echo.Echo,
) {
	listener, err := server.Listen(ctx, cfg.ListenAddress)
	if err != nil {
		grp.Go(func() error { return err })
		return
	}

	logger.InfoContext(ctx,
		"starting API server...",
		slog.String("address", cfg.ListenAddress),
	)
	server.Serve(ctx, grp, srv.Server, listener, server.ShutdownTimeout)
}

func serveMetrics(
	ctx context.Context,
	grp *errgroup.Group,
	cfg *config.Config,
	logger *slog.Logger,
) {
	addr := cfg.MetricsAddress
	if addr == "" {
		return
	}

	listener, err := server.Listen(ctx, addr)
	if err != nil {
		grp.Go(func() error { return err })
		return
	}

	srv := &http.Server{Handler: monitoring.NewHandler(prometheus.DefaultGatherer)} //nolint:gosec // Serve() sets timeouts

	logger.InfoContext(ctx,
		"starting metrics server...",
		slog.String("address", addr),
	)
	server.Serve(ctx, grp, srv, listener, server.ShutdownTimeout)
}
