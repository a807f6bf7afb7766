package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"travelease/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	AmadeusBaseURL      string
	AmadeusClientID     string
	AmadeusClientSecret string
	UpstreamTimeout     time.Duration

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int
	CORSOrigins    []string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	DemoBookingTTL time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	DefaultDealsOrigin string
	DealsLeadDays      int

	KafkaBrokers      []string
	KafkaBookingTopic string
	KafkaDLQTopic     string

	Log *logger.Logger
}

// Load reads an optional .env file, then the process environment.
func Load(serviceName string) *Config {
	_ = godotenv.Load()

	return &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		AmadeusBaseURL:      strings.TrimSuffix(getEnvStr(EnvAmadeusBaseURL, DefaultAmadeusBaseURL), "/"),
		AmadeusClientID:     getEnvStr(EnvAmadeusClientID, DefaultAmadeusClientID),
		AmadeusClientSecret: getEnvStr(EnvAmadeusClientSecret, DefaultAmadeusClientSecret),
		UpstreamTimeout:     getEnvDuration(EnvUpstreamTimeout, DefaultUpstreamTimeout),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),
		CORSOrigins:    getEnvList(EnvCORSOrigins),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		DemoBookingTTL: getEnvDuration(EnvDemoBookingTTL, DefaultDemoBookingTTL),

		JWTSecret: getEnvStr(EnvJWTSecret, DefaultJWTSecret),
		JWTTTL:    getEnvDuration(EnvJWTTTL, DefaultJWTTTL),

		DefaultDealsOrigin: strings.ToUpper(getEnvStr(EnvDefaultDealsOrigin, DefaultDealsOrigin)),
		DealsLeadDays:      getEnvNum(EnvDealsLeadDays, DefaultDealsLeadDays),

		KafkaBrokers:      getEnvList(EnvKafkaBrokers),
		KafkaBookingTopic: getEnvStr(EnvKafkaBookingTopic, DefaultKafkaBookingTopic),
		KafkaDLQTopic:     getEnvStr(EnvKafkaDLQTopic, DefaultKafkaDLQTopic),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, logger.INFO),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if !strings.HasPrefix(cfg.AmadeusBaseURL, "http://") && !strings.HasPrefix(cfg.AmadeusBaseURL, "https://") {
		errors = append(errors, fmt.Sprintf("AmadeusBaseURL must start with 'http://' or 'https://', got: %s", cfg.AmadeusBaseURL))
	}
	if cfg.AmadeusClientID == "" {
		errors = append(errors, "AmadeusClientID cannot be empty")
	}
	if cfg.AmadeusClientSecret == "" {
		errors = append(errors, "AmadeusClientSecret cannot be empty")
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"UpstreamTimeout", cfg.UpstreamTimeout},
		{"RateLimitWindow", cfg.RateLimitWindow},
		{"RequestTimeout", cfg.RequestTimeout},
		{"IdempotencyTTL", cfg.IdempotencyTTL},
		{"ReadTimeout", cfg.ReadTimeout},
		{"WriteTimeout", cfg.WriteTimeout},
		{"IdleTimeout", cfg.IdleTimeout},
		{"ShutdownTimeout", cfg.ShutdownTimeout},
		{"DemoBookingTTL", cfg.DemoBookingTTL},
		{"JWTTTL", cfg.JWTTTL},
	}
	for _, d := range durations {
		if d.value <= 0 {
			errors = append(errors, fmt.Sprintf("%s must be positive, got: %s", d.name, d.value))
		}
	}

	// A request may spend one upstream timeout on the token and one on the resource.
	if cfg.UpstreamTimeout > 0 && cfg.RequestTimeout > 0 && cfg.RequestTimeout <= 2*cfg.UpstreamTimeout {
		errors = append(errors, fmt.Sprintf("RequestTimeout must exceed twice UpstreamTimeout (%s), got: %s", 2*cfg.UpstreamTimeout, cfg.RequestTimeout))
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.DealsLeadDays < 0 {
		errors = append(errors, fmt.Sprintf("DealsLeadDays cannot be negative, got: %d", cfg.DealsLeadDays))
	}
	if len(cfg.DefaultDealsOrigin) != 3 {
		errors = append(errors, fmt.Sprintf("DefaultDealsOrigin must be a 3-letter IATA code, got: %s", cfg.DefaultDealsOrigin))
	}
	if cfg.JWTSecret == "" {
		errors = append(errors, "JWTSecret cannot be empty")
	}
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaBookingTopic == "" {
		errors = append(errors, "KafkaBookingTopic cannot be empty when KafkaBrokers is set")
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) KafkaEnabled() bool {
	return len(cfg.KafkaBrokers) > 0
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"amadeus_base_url", cfg.AmadeusBaseURL,
		"amadeus_client_id", cfg.AmadeusClientID,
		"amadeus_client_secret", redactSecret(cfg.AmadeusClientSecret),
		"upstream_timeout", cfg.UpstreamTimeout,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"cors_origins", cfg.CORSOrigins,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"demo_booking_ttl", cfg.DemoBookingTTL,
		"jwt_ttl", cfg.JWTTTL,
		"default_deals_origin", cfg.DefaultDealsOrigin,
		"deals_lead_days", cfg.DealsLeadDays,
		"kafka_enabled", cfg.KafkaEnabled(),
		"kafka_booking_topic", cfg.KafkaBookingTopic,
	)
}

func redactSecret(secret string) string {
	if len(secret) <= 4 {
		return "***"
	}
	return secret[:2] + "***" + secret[len(secret)-2:]
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
