package config

import "time"

const (
	DefaultPort = "3001"

	// Sandbox credentials shipped with the demo; override them in any real deployment.
	DefaultAmadeusBaseURL      = "https://test.api.amadeus.com"
	DefaultAmadeusClientID     = "CpvPQzL7k1GKLJL1SZ9Q4Yv9PTUyVq"
	DefaultAmadeusClientSecret = "4uaFa4uOivjoGVmr"
	DefaultUpstreamTimeout     = 20 * time.Second

	DefaultRateLimitRequests = 120
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 45 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 50 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultDemoBookingTTL = 6 * time.Hour

	DefaultJWTSecret = "travelease-dev-secret"
	DefaultJWTTTL    = 24 * time.Hour

	DefaultDealsOrigin   = "MAD"
	DefaultDealsLeadDays = 30

	DefaultKafkaBookingTopic = "travelease.bookings"
	DefaultKafkaDLQTopic     = "dlq-travelease"
)
