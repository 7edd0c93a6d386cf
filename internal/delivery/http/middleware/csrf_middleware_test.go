package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCSRFServer(enabled bool) *echo.Echo {
	cfg := newTestConfig()
	cfg.CSRF.Enabled = enabled

	e := echo.New()
	e.Use(NewCSRFMiddleware(cfg, newDiscardLogger()).Handle)
	e.GET("/token", func(c echo.Context) error {
		return c.String(http.StatusOK, CSRFToken(c))
	})
	e.POST("/cart", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	return e
}

func TestCSRFMiddleware(t *testing.T) {
	t.Run("token round trip", func(t *testing.T) {
		e := newCSRFServer(true)

		tokenRec := httptest.NewRecorder()
		e.ServeHTTP(tokenRec, httptest.NewRequest(http.MethodGet, "/token", nil))
		require.Equal(t, http.StatusOK, tokenRec.Code)
		token := tokenRec.Body.String()
		require.NotEmpty(t, token)

		req := httptest.NewRequest(http.MethodPost, "/cart", nil)
		req.Header.Set(CSRFHeader, token)
		for _, ck := range tokenRec.Result().Cookies() {
			req.AddCookie(ck)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing token is forbidden", func(t *testing.T) {
		e := newCSRFServer(true)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cart", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"fail"`)
	})

	t.Run("disabled passes through", func(t *testing.T) {
		e := newCSRFServer(false)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cart", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
