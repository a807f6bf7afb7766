package events

import (
	"context"
	"fmt"
	"time"

	"travelease/pkg/config"
	"travelease/pkg/kafka"
	kafka_config "travelease/pkg/kafka/config"
	kafka_middleware "travelease/pkg/kafka/middleware"
	"travelease/pkg/logger"
)

const Source = "travelease"

type Type string

const (
	BookingCreated   Type = "booking.created"
	BookingCancelled Type = "booking.cancelled"
)

type Resource string

const (
	ResourceFlight Resource = "flight"
	ResourceHotel  Resource = "hotel"
)

// BookingEvent is the payload published for booking lifecycle changes.
type BookingEvent struct {
	Type       Type      `json:"type"`
	Resource   Resource  `json:"resource"`
	BookingID  string    `json:"bookingId"`
	Demo       bool      `json:"demo"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher emits booking events. Callers treat failures as non-fatal.
type Publisher interface {
	Publish(ctx context.Context, event BookingEvent) error
	Close() error
}

type messagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	producer messagePublisher
}

// NewKafkaPublisher wraps a producer that already targets the booking topic.
func NewKafkaPublisher(producer messagePublisher) Publisher {
	return &kafkaPublisher{producer: producer}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event BookingEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	msg, err := kafka.NewMessage().
		WithKey(event.BookingID).
		WithValue(event).
		WithTimestamp(event.OccurredAt).
		WithEventID("").
		WithEventType(string(event.Type)).
		WithSource(Source).
		Build()
	if err != nil {
		return err
	}

	if err := p.producer.Publish(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event for %s: %w", event.Type, event.BookingID, err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops every event.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, BookingEvent) error { return nil }
func (nopPublisher) Close() error                                { return nil }

// NewPublisher returns a Kafka publisher when brokers are configured, otherwise a no-op one.
func NewPublisher(cfg *config.Config) (Publisher, error) {
	if !cfg.KafkaEnabled() {
		return NewNopPublisher(), nil
	}

	kafkaCfg, err := kafka_config.Load(cfg.KafkaBrokers)
	if err != nil {
		return nil, err
	}

	producer, err := kafka.NewProducer(kafkaCfg, cfg.KafkaBookingTopic, cfg.KafkaDLQTopic, cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))

	return NewKafkaPublisher(producer), nil
}

// Emit publishes event and logs a failure instead of returning it.
func Emit(ctx context.Context, p Publisher, log *logger.Logger, event BookingEvent) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, event); err != nil && log != nil {
		log.Warn("Failed to publish booking event",
			"event_type", string(event.Type),
			"booking_id", event.BookingID,
			"error", err,
		)
	}
}
