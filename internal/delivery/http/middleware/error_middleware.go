package middleware

import (
	"log/slog"
	"net/http"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger          *slog.Logger
	shutdowner      fx.Shutdowner
	failFastOnPanic bool
}

// ErrorMiddlewareParams holds dependencies for ErrorMiddleware, injected by Fx.
type ErrorMiddlewareParams struct {
	fx.In

	Logger     *slog.Logger
	Config     *config.Config
	Shutdowner fx.Shutdowner `optional:"true"`
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(params ErrorMiddlewareParams) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:          params.Logger,
		shutdowner:      params.Shutdowner,
		failFastOnPanic: params.Config.HTTP.FailFastOnPanic,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("stack", errors.StackTrace(err)),
			)
		}
		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	// Unknown errors never reach the client.
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.String("stack", errors.StackTrace(err)),
	)
	_ = response.InternalServerError(c)
}

// Recover turns panics into 500 responses. With failFastOnPanic the application is
// asked to stop with exit code 1 once the response is written.
func (m *ErrorMiddleware) Recover() echo.MiddlewareFunc {
	return echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		DisablePrintStack: true,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Recovered from panic",
				slog.Any("error", err),
				slog.String("stack", string(stack)),
				slog.String("path", c.Request().URL.Path),
			)

			if m.failFastOnPanic && m.shutdowner != nil {
				if shutdownErr := m.shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					m.logger.Error("Failed to request shutdown after panic", slog.Any("error", shutdownErr))
				}
			}

			return errors.Wrap(err, "panic recovered")
		},
	})
}
