package middleware

import (
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/session"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

const currentUserKey = "user"

// AuthMiddleware resolves the session user for protected routes.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// RequireAuth rejects requests without a logged-in session. The loaded user is
// available to handlers through CurrentUser.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := session.UserID(c)
		if !ok {
			return domainerrors.ErrUnauthorized
		}

		ctx := c.Request().Context()
		user, err := m.authUC.GetUser(ctx, userID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUnauthorized) {
				// The account is gone; drop the stale cookie.
				if logoutErr := session.Logout(c); logoutErr != nil {
					deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).Warn("Failed to clear stale session", slog.Any("error", logoutErr))
				}
			}

			return errors.WithStack(err)
		}

		c.Set(currentUserKey, user)
		deliverycontext.AddLoggerAttrs(c, slog.Default(), slog.String("user_id", user.ID.String()))

		return next(c)
	}
}

// CurrentUser returns the user loaded by RequireAuth.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(currentUserKey).(*entity.User)

	return user
}
