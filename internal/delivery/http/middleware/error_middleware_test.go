package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

type fakeShutdowner struct {
	calls int
	opts  []fx.ShutdownOption
}

func (f *fakeShutdowner) Shutdown(opts ...fx.ShutdownOption) error {
	f.calls++
	f.opts = opts

	return nil
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newErrorMiddleware(failFast bool, shutdowner fx.Shutdowner) *ErrorMiddleware {
	cfg := &config.Config{}
	cfg.HTTP.FailFastOnPanic = failFast

	return NewErrorMiddleware(ErrorMiddlewareParams{
		Logger:     newDiscardLogger(),
		Config:     cfg,
		Shutdowner: shutdowner,
	})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.Response {
	var body domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus string
		wantBiz    string
	}{
		{
			name:       "app error 4xx is fail",
			err:        domainerrors.ErrImageRequired.WrapMessage("create product"),
			wantCode:   http.StatusUnprocessableEntity,
			wantStatus: "fail",
			wantBiz:    "IMAGE_REQUIRED",
		},
		{
			name:       "app error 5xx is error",
			err:        domainerrors.ErrPaymentGateway,
			wantCode:   http.StatusBadGateway,
			wantStatus: "error",
			wantBiz:    "PAYMENT_GATEWAY_FAILED",
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantCode:   http.StatusMethodNotAllowed,
			wantStatus: "fail",
			wantBiz:    "HTTP_ERROR",
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("pq: connection refused"),
			wantCode:   http.StatusInternalServerError,
			wantStatus: "error",
			wantBiz:    "INTERNAL_ERROR",
		},
	}

	m := newErrorMiddleware(false, nil)
	e := echo.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decodeEnvelope(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantStatus, body.Status)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantBiz, body.Error.Code)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestErrorMiddleware_Recover(t *testing.T) {
	panicking := func(echo.Context) error { panic("boom") }

	t.Run("answers 500 and requests shutdown", func(t *testing.T) {
		shutdowner := &fakeShutdowner{}
		m := newErrorMiddleware(true, shutdowner)
		e := echo.New()
		e.HTTPErrorHandler = m.HandleHTTPError
		e.Use(m.Recover())
		e.GET("/", panicking)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "error", decodeEnvelope(t, rec).Status)
		assert.Equal(t, 1, shutdowner.calls)
		assert.Len(t, shutdowner.opts, 1)
	})

	t.Run("keeps serving without fail fast", func(t *testing.T) {
		shutdowner := &fakeShutdowner{}
		m := newErrorMiddleware(false, shutdowner)
		e := echo.New()
		e.HTTPErrorHandler = m.HandleHTTPError
		e.Use(m.Recover())
		e.GET("/", panicking)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Zero(t, shutdowner.calls)
	})
}
