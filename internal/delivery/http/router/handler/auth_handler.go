package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/delivery/http/session"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// Signup opens an account. The user logs in separately.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authUC.Signup(c.Request().Context(), usecase.SignupInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			h.flash(c, constants.FlashError, domainerrors.ErrUserAlreadyExists.Message())
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "Signup succeeded")
}

// Login verifies credentials and marks the session as authenticated.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			h.flash(c, constants.FlashError, domainerrors.ErrInvalidCredentials.Message())
		}

		return errors.WithStack(err)
	}

	if err := session.Login(c, user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Login successful")
}

// Logout expires the session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := session.Logout(c); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// RequestReset mails a reset link. The answer is the same whether or not the email is known.
func (h *AuthHandler) RequestReset(c echo.Context) error {
	var req resetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "If the account exists, a reset link has been sent")
}

// NewPassword sets a new password using the token from the reset link.
func (h *AuthHandler) NewPassword(c echo.Context) error {
	var req newPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authUC.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Token:    c.Param("token"),
		Password: req.Password,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated")
}

type sessionResponse struct {
	Authenticated bool            `json:"authenticated"`
	User          *userResponse   `json:"user,omitempty"`
	CSRFToken     string          `json:"csrfToken,omitempty"`
	Flashes       []session.Flash `json:"flashes"`
}

// Session reports the current user and CSRF token, and drains pending flash messages.
func (h *AuthHandler) Session(c echo.Context) error {
	resp := sessionResponse{CSRFToken: middleware.CSRFToken(c)}

	if userID, ok := session.UserID(c); ok {
		user, err := h.authUC.GetUser(c.Request().Context(), userID)
		switch {
		case err == nil:
			resp.Authenticated = true
			resp.User = toUserResponse(user)
		case !errors.Is(err, domainerrors.ErrUnauthorized):
			return errors.WithStack(err)
		}
	}

	flashes, err := session.Flashes(c)
	if err != nil {
		return errors.WithStack(err)
	}
	resp.Flashes = flashes

	c.Response().Header().Set("Cache-Control", "no-store")

	return response.Success(c, http.StatusOK, resp, "")
}

func (h *AuthHandler) flash(c echo.Context, kind, message string) {
	if err := session.AddFlash(c, kind, message); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Failed to store flash message", slog.Any("error", err))
	}
}
