package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	notifier          *MailNotifier
	baseURL           string
	minPasswordLength int
	resetTokenTTL     time.Duration
	now               func() time.Time
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Notifier     *MailNotifier
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		notifier:          params.Notifier,
		baseURL:           strings.TrimRight(params.Config.HTTP.BaseURL, "/"),
		minPasswordLength: 6,
		resetTokenTTL:     time.Hour,
		now:               time.Now,
		logger:            params.Logger,
	}
	if auth := params.Config.Auth; auth != nil {
		if auth.MinPasswordLength > 0 {
			srv.minPasswordLength = auth.MinPasswordLength
		}
		if auth.ResetTokenTTL > 0 {
			srv.resetTokenTTL = auth.ResetTokenTTL
		}
	}

	return srv
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates an account and sends a welcome mail in the background.
func (srv *authService) Signup(ctx context.Context, input usecase.SignupInput) (*entity.User, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if err := srv.validatePassword(input.Password, input.ConfirmPassword); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Info("Signup with existing email", slog.String("email", email))
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User signed up", slog.Any("userID", user.ID))

	srv.notifier.Notify(ctx, &service.MailMessage{
		To:       user.Email,
		Subject:  "Signup succeeded!",
		HTMLBody: "<h1>You successfully signed up!</h1>",
		TextBody: "You successfully signed up!",
	})

	return user, nil
}

// Login verifies the credentials and returns the account.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*entity.User, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Login with unknown email", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Login with wrong password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

// GetUser re-reads the session user.
func (srv *authService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("session user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// RequestPasswordReset stores a fresh reset token and mails the link.
func (srv *authService) RequestPasswordReset(ctx context.Context, email string) error {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	user, err := srv.userRepo.FindByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find user by email")
	}

	token, expiresAt, err := srv.tokenService.GenerateResetToken(user.ID, srv.resetTokenTTL)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	user.ResetTokenHash = srv.tokenService.HashToken(token)
	user.ResetTokenExpiresAt = &expiresAt
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	link := srv.baseURL + "/new-password/" + token
	srv.notifier.Notify(ctx, &service.MailMessage{
		To:       user.Email,
		Subject:  "Password reset",
		HTMLBody: fmt.Sprintf(`<p>You requested a password reset</p><p>Click this <a href="%s">link</a> to set a new password.</p>`, link),
		TextBody: "You requested a password reset. Set a new password here: " + link,
	})

	srv.log(ctx).Info("Password reset requested", slog.Any("userID", user.ID))

	return nil
}

// ResetPassword sets a new password using a single-use reset token.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	if err := srv.validatePassword(input.Password, input.Password); err != nil {
		return err
	}

	claims, err := srv.tokenService.ValidateResetToken(input.Token)
	if err != nil {
		return domainerrors.ErrResetTokenInvalid.WrapMessage(err.Error())
	}

	tokenHash := srv.tokenService.HashToken(input.Token)
	user, err := srv.userRepo.FindByResetTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrResetTokenInvalid.WrapMessage("reset token already used")
		}

		return errors.Wrap(err, "failed to find user by reset token")
	}
	if user.ID != claims.UserID || !user.HasValidResetToken(tokenHash, srv.now()) {
		return domainerrors.ErrResetTokenInvalid.WrapMessage("reset token does not match user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user.PasswordHash = hash
	user.ClearResetToken()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", user.ID))

	return nil
}

func (srv *authService) validatePassword(password, confirm string) error {
	if len(password) < srv.minPasswordLength {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be at least %d characters", srv.minPasswordLength))
	}
	if password != confirm {
		return domainerrors.ErrValidationFailed.WithDetails("passwords have to match")
	}

	return nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("email is required")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return "", domainerrors.ErrValidationFailed.WithDetails("please enter a valid email")
	}

	return email, nil
}
