package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stolasapp/syllabus/internal/storage"
)

// normalizeErrors is the single error responder wrapped around every handler.
// Store-layer constraint failures become a 400 with the collected messages,
// matching the shape of the pre-store field validation. Anything unexpected
// is logged and collapsed into a generic 500 so internal detail never leaks.
func normalizeErrors(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var respErr error
		var verr *storage.ValidationError
		var herr *echo.HTTPError
		switch {
		case errors.As(err, &verr):
			respErr = c.JSON(http.StatusBadRequest, failureResponse{Errors: verr.Messages()})
		case errors.As(err, &herr):
			// bind failures and echo's own routing errors
			respErr = c.JSON(herr.Code, messageResponse{Message: fmt.Sprintf("%v", herr.Message)})
		default:
			logger.ErrorContext(c.Request().Context(), "request failed",
				slog.String("method", c.Request().Method),
				slog.String("route", c.Path()),
				slog.Any("error", err),
			)
			respErr = c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal Server Error"})
		}
		if respErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response",
				slog.Any("error", respErr),
			)
		}
	}
}
