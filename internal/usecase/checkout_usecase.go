package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutQuote is the priced cart together with the gateway session the buyer is sent to.
type CheckoutQuote struct {
	Cart        *entity.CartView
	TotalMinor  int64
	Currency    string
	SessionID   string
	RedirectURL string
}

// CheckoutUsecase turns a cart into a paid order.
type CheckoutUsecase interface {
	// BeginCheckout prices the cart and opens a payment session. No state is persisted.
	BeginCheckout(ctx context.Context, userID uuid.UUID) (*CheckoutQuote, error)

	// FinalizeOrder verifies the payment session with the gateway and converts the cart into an order.
	// Calling it again for the same session returns the existing order.
	FinalizeOrder(ctx context.Context, userID uuid.UUID, sessionID string) (*entity.Order, error)
}
