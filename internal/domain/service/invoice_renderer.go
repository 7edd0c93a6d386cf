package service

import (
	"io"

	"storefront/internal/domain/entity"
)

// InvoiceRenderer writes a PDF summary of an order.
type InvoiceRenderer interface {
	Render(w io.Writer, order *entity.Order) error
}
