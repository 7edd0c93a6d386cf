// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to open an account.
type SignupInput struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResetPasswordInput carries the reset token from the mailed link and the new password.
type ResetPasswordInput struct {
	Token    string
	Password string
}

// AuthUsecase defines account and credential operations.
// Sessions are owned by the delivery layer; these methods only verify and mutate credentials.
type AuthUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*entity.User, error)
	Login(ctx context.Context, input LoginInput) (*entity.User, error)

	// GetUser re-reads the session user; ErrUnauthorized if the account no longer exists.
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// RequestPasswordReset mails a reset link when the email is known. Unknown emails are not reported.
	RequestPasswordReset(ctx context.Context, email string) error

	ResetPassword(ctx context.Context, input ResetPasswordInput) error
}
