package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/http/session"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.Name = "test_session"
	cfg.Session.Key = "0123456789abcdef0123456789abcdef"
	cfg.CSRF = &config.CSRFConfig{Enabled: true, Key: "abcdef0123456789abcdef0123456789"}

	return cfg
}

// newAuthServer mounts a login endpoint and a protected endpoint behind RequireAuth.
func newAuthServer(authUC *mockUsecase.MockAuthUsecase, userID uuid.UUID) *echo.Echo {
	cfg := newTestConfig()
	e := echo.New()
	e.HTTPErrorHandler = newErrorMiddleware(false, nil).HandleHTTPError
	e.Use(session.NewMiddleware(session.NewStore(cfg, newDiscardLogger()), cfg).Load)

	e.POST("/login", func(c echo.Context) error {
		if err := session.Login(c, userID); err != nil {
			return err
		}

		return c.NoContent(http.StatusOK)
	})
	e.GET("/me", func(c echo.Context) error {
		return c.String(http.StatusOK, CurrentUser(c).Email)
	}, NewAuthMiddleware(authUC).RequireAuth)

	return e
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "buyer@example.com"}

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		e := newAuthServer(mockUsecase.NewMockAuthUsecase(t), user.ID)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("session user is loaded", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().GetUser(mock.Anything, user.ID).Return(user, nil).Once()
		e := newAuthServer(authUC, user.ID)

		login := httptest.NewRecorder()
		e.ServeHTTP(login, httptest.NewRequest(http.MethodPost, "/login", nil))
		require.Equal(t, http.StatusOK, login.Code)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		for _, ck := range login.Result().Cookies() {
			req.AddCookie(ck)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "buyer@example.com", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("deleted account clears cookie", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().GetUser(mock.Anything, user.ID).Return(nil, domainerrors.ErrUnauthorized).Once()
		e := newAuthServer(authUC, user.ID)

		login := httptest.NewRecorder()
		e.ServeHTTP(login, httptest.NewRequest(http.MethodPost, "/login", nil))

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		for _, ck := range login.Result().Cookies() {
			req.AddCookie(ck)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		cookies := rec.Result().Cookies()
		require.NotEmpty(t, cookies)
		assert.Less(t, cookies[0].MaxAge, 0)
	})
}
