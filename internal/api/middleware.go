package api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stolasapp/syllabus/internal/monitoring"
	"github.com/stolasapp/syllabus/internal/sec"
	"github.com/stolasapp/syllabus/internal/storage"
)

// requireAuth gates a route on Basic Auth credentials. Every denial responds
// with the same status and body; the reason is only logged and counted so the
// caller cannot probe which email addresses exist.
func requireAuth(
	logger *slog.Logger,
	metrics *monitoring.Metrics,
	users storage.Users,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			principal, err := sec.Authenticate(req.Context(), req, users)
			if sec.Denied(err) {
				logger.WarnContext(req.Context(), "authentication denied",
					slog.String("reason", err.Error()),
					slog.String("method", req.Method),
					slog.String("route", c.Path()),
				)
				if metrics != nil {
					metrics.AuthDenialsTotal.WithLabelValues(err.Error()).Inc()
				}
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Access Denied"})
			} else if err != nil {
				return err
			}
			c.SetRequest(req.WithContext(sec.WithPrincipal(req.Context(), principal)))
			return next(c)
		}
	}
}
