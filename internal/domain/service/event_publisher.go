package service

import (
	"context"
	"time"
)

// Order event types
const (
	OrderEventFinalized           = "order.finalized"
	OrderEventNeedsReconciliation = "order.needs_reconciliation"
)

// OrderEvent is published after an order leaves the pending state.
type OrderEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Total     string    `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
