// Package events implements the order event publisher on Kafka, with a
// no-op fallback when no broker is configured.
package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"freshmarket/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// kafkaPublisher implements service.EventPublisher on a kafka-go Writer.
type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to the given brokers and
// topic. Messages for one order share a partition via the hashed key, so
// consumers see that order's events in publish order.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}

	return &kafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

// PublishOrderEvent publishes an order lifecycle event keyed by order ID.
func (p *kafkaPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal order event")
	}

	message := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
		Time:  event.OccurredAt,
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return errors.Wrap(err, "failed to publish order event")
	}

	p.logger.Debug("Published order event",
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.EventType),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

// Close flushes and closes the underlying writer.
func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
