package kafka_middleware

import (
	"context"
	"time"

	"travelease/pkg/kafka"
	"travelease/pkg/logger"
)

// LoggingProducerMiddleware logs every publish attempt with its outcome and duration.
func LoggingProducerMiddleware(log *logger.Logger) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()

		err := next(ctx, msg)

		attrs := []any{
			"topic", msg.Topic,
			"key", msg.Key,
			"event_id", msg.GetEventID(),
			"event_type", msg.GetEventType(),
			"duration", time.Since(start),
		}
		if err != nil {
			log.Warn("Failed to publish kafka message", append(attrs, "error", err)...)
			return err
		}
		log.Debug("Published kafka message", attrs...)
		return nil
	}
}
