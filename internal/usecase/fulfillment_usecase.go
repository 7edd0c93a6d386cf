package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// FulfillmentUsecase handles order events after checkout has returned to the buyer.
type FulfillmentUsecase interface {
	// SendConfirmation mails the order summary to its owner.
	SendConfirmation(ctx context.Context, orderID uuid.UUID) error

	// Reconcile removes the ordered quantities from the owner's cart and finalizes an order
	// left in needs_reconciliation. Orders in any other status are returned unchanged.
	Reconcile(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
}
