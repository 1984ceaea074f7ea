package events

import (
	"context"
	"log/slog"

	"freshmarket/config"
	"freshmarket/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Kafka is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishOrderEvent(_ context.Context, event *service.OrderEvent) error {
	p.logger.Debug("[NoopEvents] Event publishing disabled, skipping",
		slog.String("event_type", event.EventType),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.Kafka
	logger := params.Logger

	// If Kafka is not configured, return a no-op publisher
	if cfg == nil || len(cfg.Brokers) == 0 {
		logger.Info("Kafka not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	if cfg.Topic == "" {
		return nil, errors.New("topic is required when kafka brokers are set")
	}

	logger.Info("Using Kafka order event publisher",
		slog.Any("brokers", cfg.Brokers),
		slog.String("topic", cfg.Topic),
	)

	publisher := NewKafkaPublisher(cfg.Brokers, cfg.Topic, logger)

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the events FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
