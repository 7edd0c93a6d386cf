package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
)

// CSRFHeader carries the token on unsafe requests.
const CSRFHeader = "X-CSRF-Token"

// CSRFMiddleware wraps gorilla/csrf for echo.
type CSRFMiddleware struct {
	enabled   bool
	plaintext bool
	protect   func(http.Handler) http.Handler
}

// NewCSRFMiddleware builds the CSRF guard from config. It is a pass-through when disabled.
func NewCSRFMiddleware(cfg *config.Config, logger *slog.Logger) *CSRFMiddleware {
	if cfg.CSRF == nil || !cfg.CSRF.Enabled {
		return &CSRFMiddleware{}
	}

	key := []byte(cfg.CSRF.Key)
	if len(key) != 32 {
		logger.Warn("csrf.key should be 32 bytes", slog.Int("length", len(key)))
	}

	return &CSRFMiddleware{
		enabled:   true,
		plaintext: !cfg.Session.Secure,
		protect: csrf.Protect(key,
			csrf.Secure(cfg.Session.Secure),
			csrf.Path("/"),
			csrf.SameSite(csrf.SameSiteLaxMode),
			csrf.RequestHeader(CSRFHeader),
			csrf.TrustedOrigins(cfg.CSRF.TrustedOrigins),
			csrf.ErrorHandler(http.HandlerFunc(csrfFailure(logger))),
		),
	}
}

// Handle validates the token on unsafe methods and exposes it for safe ones.
func (m *CSRFMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.enabled {
		return next
	}

	protected := echo.WrapMiddleware(m.protect)(next)

	return func(c echo.Context) error {
		if m.plaintext {
			c.SetRequest(csrf.PlaintextHTTPRequest(c.Request()))
		}

		return protected(c)
	}
}

// CSRFToken returns the token for the current request, empty when protection is off.
func CSRFToken(c echo.Context) string {
	return csrf.Token(c.Request())
}

func csrfFailure(logger *slog.Logger) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		reason := csrf.FailureReason(r)
		deliverycontext.GetLoggerOrDefault(r.Context(), logger).Warn("CSRF validation failed", slog.Any("reason", reason))

		w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(domainerrors.Response{
			Success: false,
			Status:  domainerrors.Status(http.StatusForbidden),
			Code:    http.StatusForbidden,
			Message: "Invalid or missing CSRF token",
			Error: &domainerrors.ErrorInfo{
				Code: domainerrors.ErrForbidden.ErrorCode(),
			},
			RequestID: deliverycontext.GetRequestIDFromContext(r.Context()),
		})
	}
}
