package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Order persistence errors
var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderAlreadyExists  = errors.New("order already exists for payment session")
	ErrOrderStatusConflict = errors.New("order status changed concurrently")
)

// OrderRepository is append-only: orders are created once and only their status moves.
type OrderRepository interface {
	// Create inserts the order with its lines; ErrOrderAlreadyExists on a duplicate payment session.
	Create(ctx context.Context, order *entity.Order) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	FindByPaymentSession(ctx context.Context, sessionID string) (*entity.Order, error)

	// UpdateStatus moves an order from one status to another; ErrOrderStatusConflict if it was not in from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error
}
