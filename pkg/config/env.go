package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvAmadeusBaseURL      = "AMADEUS_BASE_URL"
	EnvAmadeusClientID     = "AMADEUS_CLIENT_ID"
	EnvAmadeusClientSecret = "AMADEUS_CLIENT_SECRET"
	EnvUpstreamTimeout     = "UPSTREAM_TIMEOUT"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"
	EnvCORSOrigins    = "CORS_ALLOWED_ORIGINS"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvDemoBookingTTL = "DEMO_BOOKING_TTL"

	EnvJWTSecret = "JWT_SECRET"
	EnvJWTTTL    = "JWT_TTL"

	EnvDefaultDealsOrigin = "DEFAULT_DEALS_ORIGIN"
	EnvDealsLeadDays      = "DEALS_LEAD_DAYS"

	EnvKafkaBrokers      = "KAFKA_BROKERS"
	EnvKafkaBookingTopic = "KAFKA_BOOKING_TOPIC"
	EnvKafkaDLQTopic     = "KAFKA_DLQ_TOPIC"
)
