package entity

import (
	"time"

	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus tracks an order through finalization.
type OrderStatus string

const (
	// OrderStatusPending is set when the order row exists but the cart has not been cleared yet.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusFinalized is set once the originating cart is cleared.
	OrderStatusFinalized OrderStatus = "finalized"
	// OrderStatusNeedsReconciliation marks an order whose cart could not be cleared.
	OrderStatusNeedsReconciliation OrderStatus = "needs_reconciliation"
)

// Order snapshot validation errors
var (
	ErrEmptyOrder       = errors.New("order must contain at least one line")
	ErrInvalidOrderLine = errors.New("order line is invalid")
	ErrStatusTransition = errors.New("order status transition not allowed")
)

// OrderOwner identifies who placed the order.
type OrderOwner struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// OrderLine is a frozen copy of the product data at the time of purchase.
// Later catalog edits never reach it.
type OrderLine struct {
	ProductID   uuid.UUID       `json:"product_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// Subtotal is price × quantity.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is an append-only purchase record.
type Order struct {
	ID               uuid.UUID   `json:"id"`
	Owner            OrderOwner  `json:"owner"`
	Lines            []OrderLine `json:"lines"`
	Status           OrderStatus `json:"status"`
	PaymentSessionID string      `json:"payment_session_id"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// SnapshotLine freezes a product and quantity into an order line.
func SnapshotLine(product *Product, quantity int) OrderLine {
	return OrderLine{
		ProductID:   product.ID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    quantity,
	}
}

// NewOrder builds a pending order after validating every snapshot line.
func NewOrder(owner OrderOwner, lines []OrderLine, paymentSessionID string) (*Order, error) {
	if len(lines) == 0 {
		return nil, errors.WithStack(ErrEmptyOrder)
	}

	frozen := make([]OrderLine, len(lines))
	for i, line := range lines {
		if line.ProductID == uuid.Nil || line.Title == "" || line.Quantity <= 0 || line.Price.IsNegative() {
			return nil, errors.Wrapf(ErrInvalidOrderLine, "line %d", i)
		}
		frozen[i] = line
	}

	return &Order{
		Owner:            owner,
		Lines:            frozen,
		Status:           OrderStatusPending,
		PaymentSessionID: paymentSessionID,
	}, nil
}

// Total sums the line subtotals.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Subtotal())
	}

	return total
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.Owner.UserID == userID
}

// CanTransitionTo reports whether the status may move forward to next.
// Pending orders settle either way; a reconciled order can still be finalized.
func (o *Order) CanTransitionTo(next OrderStatus) bool {
	switch o.Status {
	case OrderStatusPending:
		return next == OrderStatusFinalized || next == OrderStatusNeedsReconciliation
	case OrderStatusNeedsReconciliation:
		return next == OrderStatusFinalized
	default:
		return false
	}
}
