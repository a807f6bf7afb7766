package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvPort, EnvAmadeusBaseURL, EnvAmadeusClientID, EnvAmadeusClientSecret,
		EnvRequestTimeout, EnvRateLimitRequests, EnvJWTSecret, EnvJWTTTL,
		EnvDefaultDealsOrigin, EnvDealsLeadDays, EnvKafkaBrokers, EnvKafkaBookingTopic,
		EnvCORSOrigins, EnvUpstreamTimeout,
	} {
		t.Setenv(key, "")
	}
	t.Setenv(EnvLogLevel, "error")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load("test")

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultAmadeusBaseURL, cfg.AmadeusBaseURL)
	assert.Equal(t, DefaultDealsOrigin, cfg.DefaultDealsOrigin)
	assert.Equal(t, DefaultDealsLeadDays, cfg.DealsLeadDays)
	assert.Equal(t, DefaultJWTTTL, cfg.JWTTTL)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.False(t, cfg.KafkaEnabled())
	assert.NotNil(t, cfg.Log)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "8080")
	t.Setenv(EnvAmadeusBaseURL, "http://localhost:9999/")
	t.Setenv(EnvRequestTimeout, "3s")
	t.Setenv(EnvRateLimitRequests, "7")
	t.Setenv(EnvDefaultDealsOrigin, "bcn")
	t.Setenv(EnvKafkaBrokers, " broker-1:9092, ,broker-2:9092 ")
	t.Setenv(EnvCORSOrigins, "http://localhost:3000")

	cfg := Load("test")

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:9999", cfg.AmadeusBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 7, cfg.RateLimitRequests)
	assert.Equal(t, "BCN", cfg.DefaultDealsOrigin)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.True(t, cfg.KafkaEnabled())
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRequestTimeout, "soon")
	t.Setenv(EnvRateLimitRequests, "many")

	cfg := Load("test")

	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultRateLimitRequests, cfg.RateLimitRequests)
}

func TestValidate_AccumulatesErrors(t *testing.T) {
	clearEnv(t)

	cfg := Load("test")
	cfg.Port = "99999"
	cfg.AmadeusBaseURL = "ftp://example.com"
	cfg.AmadeusClientSecret = ""
	cfg.RequestTimeout = 0
	cfg.DefaultDealsOrigin = "MADRID"
	cfg.KafkaBrokers = []string{"broker:9092"}
	cfg.KafkaBookingTopic = ""

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "1. Port must be between 1 and 65535, got: 99999")
	assert.Contains(t, msg, "AmadeusBaseURL must start with")
	assert.Contains(t, msg, "AmadeusClientSecret cannot be empty")
	assert.Contains(t, msg, "RequestTimeout must be positive")
	assert.Contains(t, msg, "DefaultDealsOrigin must be a 3-letter IATA code")
	assert.Contains(t, msg, "KafkaBookingTopic cannot be empty when KafkaBrokers is set")
}

func TestValidate_RequestTimeoutCoversUpstreamCalls(t *testing.T) {
	clearEnv(t)

	cfg := Load("test")
	assert.Greater(t, cfg.RequestTimeout, 2*cfg.UpstreamTimeout)

	cfg.UpstreamTimeout = 20 * time.Second
	cfg.RequestTimeout = 30 * time.Second
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RequestTimeout must exceed twice UpstreamTimeout (40s), got: 30s")

	cfg.RequestTimeout = 41 * time.Second
	assert.NoError(t, cfg.Validate())
}

func TestRedactSecret(t *testing.T) {
	assert.Equal(t, "***", redactSecret("abc"))
	assert.Equal(t, "4u***mr", redactSecret("4uaFa4uOivjoGVmr"))
}
