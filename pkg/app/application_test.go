package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelease/pkg/config"
	"travelease/pkg/logger"
	"travelease/pkg/middleware"
)

const demoHotelBooking = `{
	"offerId": "DEMO_OFFER_1",
	"guests": [{"tid": 1, "firstName": "Ana", "lastName": "Garcia", "phone": "612345678", "email": "ana@example.com"}],
	"payment": {"method": "creditCard", "paymentCard": {"paymentCardInfo": {"vendorCode": "VI", "cardNumber": "4111111111111111", "expiryDate": "2028-01"}}}
}`

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Port:                "0",
		AmadeusBaseURL:      baseURL,
		AmadeusClientID:     "id",
		AmadeusClientSecret: "secret",
		UpstreamTimeout:     5 * time.Second,
		RateLimitRequests:   100,
		RateLimitWindow:     time.Minute,
		RequestTimeout:      5 * time.Second,
		IdempotencyTTL:      time.Hour,
		MaxRequestSize:      1 << 20,
		ReadTimeout:         5 * time.Second,
		WriteTimeout:        5 * time.Second,
		IdleTimeout:         5 * time.Second,
		ShutdownTimeout:     time.Second,
		DemoBookingTTL:      time.Hour,
		JWTSecret:           "secret",
		JWTTTL:              time.Hour,
		DefaultDealsOrigin:  "MAD",
		DealsLeadDays:       30,
		Log:                 logger.Discard(),
	}
}

// tokenUpstream answers the credential exchange with status and 404s everything else.
func tokenUpstream(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/v1/security/oauth2/token" {
			w.WriteHeader(status)
			_, _ = io.WriteString(w, `{"access_token":"tok"}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"errors":[{"status":404}]}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T, cfg *config.Config) *Application {
	t.Helper()
	a, err := NewApplication(cfg)
	require.NoError(t, err)
	t.Cleanup(a.stopWorkers)
	return a
}

func serve(a *Application, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealthAndReadiness(t *testing.T) {
	healthy := newTestApp(t, testConfig(tokenUpstream(t, http.StatusOK).URL))

	rec := serve(healthy, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	rec = serve(healthy, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	unhealthy := newTestApp(t, testConfig(tokenUpstream(t, http.StatusUnauthorized).URL))
	rec = serve(unhealthy, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDealsFallBackThroughFullStack(t *testing.T) {
	a := newTestApp(t, testConfig(tokenUpstream(t, http.StatusUnauthorized).URL))

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/api/flights/deals", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	body := decode(t, rec)
	assert.Equal(t, "warning", body["status"])
	assert.NotEmpty(t, body["data"])
}

func TestBookingIdempotencyReplay(t *testing.T) {
	a := newTestApp(t, testConfig(tokenUpstream(t, http.StatusOK).URL))

	book := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/hotels/booking", strings.NewReader(demoHotelBooking))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.IdempotencyKeyHeader, "booking-1")
		return serve(a, req)
	}

	first := book()
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	second := book()
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, "true", second.Header().Get(middleware.IdempotentReplayHeader))
	assert.Equal(t, decode(t, first)["data"], decode(t, second)["data"])
}

func TestMiddlewareRejections(t *testing.T) {
	cfg := testConfig(tokenUpstream(t, http.StatusOK).URL)
	cfg.RateLimitRequests = 2
	a := newTestApp(t, cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/flights/search", strings.NewReader("origin=MAD"))
	req.Header.Set("Content-Type", "text/plain")
	rec := serve(a, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec = serve(a, httptest.NewRequest(http.MethodGet, "/api/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"error": "Not found"}, decode(t, rec))

	rec = serve(a, httptest.NewRequest(http.MethodPut, "/api/flights/search", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = serve(a, httptest.NewRequest(http.MethodGet, "/api/auth/token", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	a := newTestApp(t, testConfig(tokenUpstream(t, http.StatusOK).URL))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
