// Package api contains the REST API for users and courses.
package api

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/stolasapp/syllabus/internal/config"
	"github.com/stolasapp/syllabus/internal/monitoring"
	"github.com/stolasapp/syllabus/internal/storage"
)

// New creates the API server. The metrics may be nil to disable counting.
func New(
	cfg *config.Config,
	logger *slog.Logger,
	store storage.Store,
	metrics *monitoring.Metrics,
) *echo.Echo {
	srv := echo.New()

	srv.HideBanner = true
	srv.HidePort = true
	srv.Logger.SetLevel(log.OFF)
	srv.HTTPErrorHandler = normalizeErrors(logger)

	srv.Use(
		middleware.Recover(),
		middleware.RequestID(),
	)
	if cfg.DevMode {
		srv.Debug = true
		srv.Use(logRequests(logger))
	}
	if metrics != nil {
		srv.Use(countRequests(metrics))
	}

	handler{logger: logger, store: store, metrics: metrics}.register(srv)
	return srv
}

func logRequests(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("uri", req.RequestURI),
				slog.String("route", c.Path()),
				slog.Duration("latency", latency),
				slog.Int("status", res.Status),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}
			logger.LogAttrs(
				req.Context(),
				slog.LevelDebug,
				"request handled",
				attrs...,
			)
			return err
		}
	}
}

func countRequests(metrics *monitoring.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			metrics.RequestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(c.Response().Status),
			).Inc()
			return err
		}
	}
}
