package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase reads the order ledger and renders invoices.
type OrderUsecase interface {
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrderForUser returns ErrOrderNotFound or ErrOrderForbidden when the order is missing or not owned.
	GetOrderForUser(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// StreamInvoice renders the invoice for order to w and to storage at the same time.
	StreamInvoice(ctx context.Context, order *entity.Order, w io.Writer) error
}

// InvoiceFilename is the download name of the invoice for orderID.
func InvoiceFilename(orderID uuid.UUID) string {
	return "invoice-" + orderID.String() + ".pdf"
}
