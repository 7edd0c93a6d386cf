package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase mutates and resolves the cart stored on the user record.
type CartUsecase interface {
	// GetCart resolves each entry against live product data. Entries whose product is gone are skipped.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.CartView, error)

	// AddToCart increments the line for productID or appends it.
	AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) error

	// RemoveFromCart drops the line for productID. A missing line is not an error.
	RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) error

	ClearCart(ctx context.Context, userID uuid.UUID) error
}
