package middleware

import (
	"log/slog"
	"net/http"

	"petplace/internal/delivery/api/response"
	deliverycontext "petplace/internal/delivery/context"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// notFoundSentinels are repository errors that surface as 404 when a use case returns them unmapped
var notFoundSentinels = []error{
	repository.ErrUserNotFound,
	repository.ErrBusinessNotFound,
	repository.ErrReviewNotFound,
	repository.ErrPostNotFound,
	repository.ErrAffiliateLinkNotFound,
	repository.ErrNotificationNotFound,
	repository.ErrCategoryNotFound,
	repository.ErrImageNotFound,
	repository.ErrDeviceNotFound,
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	for _, sentinel := range notFoundSentinels {
		if errors.Is(err, sentinel) {
			_ = response.NotFound(c, "NOT_FOUND", sentinel.Error())

			return
		}
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	m.logUnhandled(c, err)

	// For 500 errors, do not expose internal error details to the client
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	logger := deliverycontext.LoggerFrom(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
