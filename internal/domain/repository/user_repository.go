// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a user and their cart.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByResetTokenHash retrieves the user holding the given reset token hash.
	FindByResetTokenHash(ctx context.Context, tokenHash string) (*entity.User, error)

	// Create persists a new user; a duplicate email yields domain ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// Update writes the credential fields of the user.
	Update(ctx context.Context, user *entity.User) error

	// SaveCart replaces the stored cart of userID with cart.
	SaveCart(ctx context.Context, userID uuid.UUID, cart entity.Cart) error
}
