package events

import (
	"context"

	"dreamshoots/pkg/kafka"
	"dreamshoots/pkg/logger"
)

const (
	BookingCreated       = "booking.created"
	BookingStatusChanged = "booking.status_changed"
	BookingDeleted       = "booking.deleted"
	ReelCreated          = "reel.created"
	ReelDeleted          = "reel.deleted"

	source = "dreamshoots-api"
)

// Publisher emits resource lifecycle events to the broker. With no producer
// configured it is a no-op, and publish failures never fail the request that
// triggered them.
type Publisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewPublisher(producer *kafka.Producer, log *logger.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		log:      log,
	}
}

func (p *Publisher) Enabled() bool {
	return p != nil && p.producer != nil
}

func (p *Publisher) Publish(ctx context.Context, eventType, key string, payload any) {
	if !p.Enabled() {
		return
	}

	msg := kafka.NewMessage().
		WithKey(key).
		WithValue(payload).
		WithEventType(eventType).
		WithSource(source).
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Error("Failed to publish event",
			"event_type", eventType,
			"key", key,
			"topic", p.producer.Topic(),
			"error", err,
		)
		return
	}

	p.log.Debug("Event published", "event_type", eventType, "key", key)
}
