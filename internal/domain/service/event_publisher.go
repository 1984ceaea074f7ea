package service

import (
	"context"
	"time"
)

// Order event types carried in the envelope.
const (
	EventOrderCreated       = "OrderCreated"
	EventOrderStatusChanged = "OrderStatusChanged"
)

// OrderEvent is the envelope published for order lifecycle changes.
// All events for one order share a partition key so consumers see them in
// order.
type OrderEvent struct {
	EventID     string    `json:"event_id"`   // uuid
	EventType   string    `json:"event_type"` // one of the constants above
	OccurredAt  time.Time `json:"occurred_at"`
	OrderID     string    `json:"order_id"`
	UserID      string    `json:"user_id"`
	FarmID      string    `json:"farm_id"`
	Status      string    `json:"status"`
	TotalAmount string    `json:"total_amount"` // decimal string
}

// EventPublisher defines the interface for publishing order events to a
// message broker.
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async consumers.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
