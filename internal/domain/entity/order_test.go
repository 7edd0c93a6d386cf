package entity

import (
	"testing"

	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(title string, price string) *Product {
	return &Product{
		ID:          uuid.New(),
		Title:       title,
		Description: title + " description",
		Price:       decimal.RequireFromString(price),
		UserID:      uuid.New(),
	}
}

func TestNewOrder_StartsPendingAndTotals(t *testing.T) {
	a := newTestProduct("A", "10")
	b := newTestProduct("B", "2.50")
	owner := OrderOwner{UserID: uuid.New(), Email: "u@example.com"}

	order, err := NewOrder(owner, []OrderLine{SnapshotLine(a, 2), SnapshotLine(b, 3)}, "cs_1")
	require.NoError(t, err)

	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, "cs_1", order.PaymentSessionID)
	assert.True(t, order.Total().Equal(decimal.RequireFromString("27.5")))
	assert.True(t, order.IsOwnedBy(owner.UserID))
	assert.False(t, order.IsOwnedBy(uuid.New()))
}

func TestNewOrder_RejectsInvalidSnapshot(t *testing.T) {
	owner := OrderOwner{UserID: uuid.New(), Email: "u@example.com"}
	valid := SnapshotLine(newTestProduct("A", "1"), 1)

	tests := []struct {
		name  string
		lines []OrderLine
		want  error
	}{
		{name: "no lines", lines: nil, want: ErrEmptyOrder},
		{name: "zero quantity", lines: []OrderLine{{ProductID: uuid.New(), Title: "x", Price: decimal.NewFromInt(1)}}, want: ErrInvalidOrderLine},
		{name: "missing title", lines: []OrderLine{{ProductID: uuid.New(), Quantity: 1}}, want: ErrInvalidOrderLine},
		{name: "negative price", lines: []OrderLine{valid, {ProductID: uuid.New(), Title: "x", Quantity: 1, Price: decimal.NewFromInt(-1)}}, want: ErrInvalidOrderLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := NewOrder(owner, tt.lines, "cs")
			assert.Nil(t, order)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestOrder_SnapshotIsFrozen(t *testing.T) {
	product := newTestProduct("Book", "10")
	lines := []OrderLine{SnapshotLine(product, 1)}

	order, err := NewOrder(OrderOwner{UserID: uuid.New()}, lines, "cs")
	require.NoError(t, err)

	product.Title = "Renamed"
	product.Price = decimal.NewFromInt(99)
	lines[0].Quantity = 50

	assert.Equal(t, "Book", order.Lines[0].Title)
	assert.True(t, order.Lines[0].Price.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 1, order.Lines[0].Quantity)
}

func TestOrder_CanTransitionTo(t *testing.T) {
	order := &Order{Status: OrderStatusPending}
	assert.True(t, order.CanTransitionTo(OrderStatusFinalized))
	assert.True(t, order.CanTransitionTo(OrderStatusNeedsReconciliation))
	assert.False(t, order.CanTransitionTo(OrderStatusPending))

	order.Status = OrderStatusNeedsReconciliation
	assert.True(t, order.CanTransitionTo(OrderStatusFinalized))
	assert.False(t, order.CanTransitionTo(OrderStatusPending))

	order.Status = OrderStatusFinalized
	assert.False(t, order.CanTransitionTo(OrderStatusNeedsReconciliation))
	assert.False(t, order.CanTransitionTo(OrderStatusPending))
}
