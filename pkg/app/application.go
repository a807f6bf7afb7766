package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"

	authhandler "travelease/internal/auth/handler"
	authservice "travelease/internal/auth/service"
	"travelease/internal/booking"
	"travelease/internal/catalog"
	"travelease/internal/dispatch"
	"travelease/internal/events"
	"travelease/internal/fallback"
	flighthandler "travelease/internal/flights/handler"
	flightservice "travelease/internal/flights/service"
	flightvalidator "travelease/internal/flights/validator"
	"travelease/internal/health"
	hotelhandler "travelease/internal/hotels/handler"
	hotelservice "travelease/internal/hotels/service"
	hotelvalidator "travelease/internal/hotels/validator"
	"travelease/pkg/amadeus"
	"travelease/pkg/config"
	"travelease/pkg/contracts"
	httputil "travelease/pkg/http"
	"travelease/pkg/middleware"
)

// Booking POSTs honour Idempotency-Key.
var idempotentPaths = []string{
	"/api/flights/booking",
	"/api/hotels/booking",
}

type Application struct {
	cfg              *config.Config
	server           *http.Server
	handler          http.Handler
	tokens           amadeus.TokenSource
	registry         *booking.Registry
	publisher        events.Publisher
	idempotencyStore *middleware.InMemoryIdempotencyStore
	rateLimiter      *middleware.ClientRateLimiter
}

func NewApplication(cfg *config.Config) (*Application, error) {
	a := &Application{cfg: cfg}

	handlers, err := a.buildHandlers()
	if err != nil {
		return nil, err
	}

	a.setHandler(handlers)
	a.setAppServer()
	return a, nil
}

func (a *Application) buildHandlers() ([]contracts.Handler, error) {
	cfg := a.cfg

	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	publisher, err := events.NewPublisher(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking event publisher: %w", err)
	}
	a.publisher = publisher

	a.tokens = amadeus.NewTokenProvider(
		cfg.AmadeusBaseURL,
		amadeus.Credentials{ClientID: cfg.AmadeusClientID, ClientSecret: cfg.AmadeusClientSecret},
		&http.Client{Timeout: cfg.UpstreamTimeout},
	)
	client := amadeus.NewClient(cfg.AmadeusBaseURL, cfg.UpstreamTimeout)
	dispatcher := dispatch.New(a.tokens, cfg.Log)
	generator := fallback.New(cat, nil, nil)
	a.registry = booking.NewRegistry(cfg.DemoBookingTTL, registryCleanupInterval(cfg))

	flights := flightservice.NewFlightService(
		client,
		dispatcher,
		generator,
		a.registry,
		cat,
		flightvalidator.NewFlightValidator(cfg.Log),
		publisher,
		cfg,
	)
	hotels := hotelservice.NewHotelService(
		client,
		dispatcher,
		generator,
		hotelvalidator.NewHotelValidator(cfg.Log),
		publisher,
		cfg,
	)
	auth := authservice.NewAuthService(a.tokens, cfg)

	cfg.Log.Info("Services initialized", "kafka_enabled", cfg.KafkaEnabled())

	return []contracts.Handler{
		authhandler.NewAuthHandler(auth, cfg.Log),
		flighthandler.NewFlightHandler(flights, cfg.Log),
		hotelhandler.NewHotelHandler(hotels, cfg.Log),
	}, nil
}

func registryCleanupInterval(cfg *config.Config) time.Duration {
	return max(cfg.DemoBookingTTL/4, time.Minute)
}

func (a *Application) setHandler(handlers []contracts.Handler) {
	cfg := a.cfg

	healthRouter := httprouter.New()
	health.NewHandler(a.tokens, cfg.Log).RegisterRoutes(healthRouter)

	var healthHTTPHandler http.Handler = healthRouter
	healthHTTPHandler = middleware.RequestLogging(cfg.Log)(healthHTTPHandler)
	healthHTTPHandler = middleware.Recovery(cfg.Log)(healthHTTPHandler)
	cfg.Log.Info("Health endpoints configured with minimal middleware (Recovery + Logging only)")

	appRouter := httprouter.New()
	appRouter.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = httputil.WriteJSON(w, http.StatusNotFound, httputil.ErrorResponse{Error: "Not found"})
	})
	appRouter.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = httputil.WriteJSON(w, http.StatusMethodNotAllowed, httputil.ErrorResponse{Error: "Method not allowed"})
	})
	for _, h := range handlers {
		h.RegisterRoutes(appRouter)
	}

	a.idempotencyStore = middleware.NewInMemoryIdempotencyStore(cfg.IdempotencyTTL)
	a.rateLimiter = middleware.NewClientRateLimiter(
		cfg.RateLimitRequests,
		cfg.RateLimitWindow,
		middleware.ClientIP,
		cfg.Log,
	)

	// Recovery → Logging → CORS → MaxSize → ContentType → RateLimit → Timeout → Idempotency → Router
	var appHTTPHandler http.Handler = appRouter
	appHTTPHandler = middleware.Idempotency(a.idempotencyStore, idempotentPaths...)(appHTTPHandler)
	appHTTPHandler = middleware.RequestTimeout(cfg.RequestTimeout)(appHTTPHandler)
	appHTTPHandler = middleware.RateLimit(a.rateLimiter)(appHTTPHandler)
	appHTTPHandler = middleware.ContentTypeValidation(cfg.Log)(appHTTPHandler)
	appHTTPHandler = middleware.MaxRequestSize(int64(cfg.MaxRequestSize))(appHTTPHandler)
	appHTTPHandler = middleware.CORS(cfg.CORSOrigins)(appHTTPHandler)
	appHTTPHandler = middleware.RequestLogging(cfg.Log)(appHTTPHandler)
	appHTTPHandler = middleware.Recovery(cfg.Log)(appHTTPHandler)
	cfg.Log.Info("API endpoints configured with full middleware stack")

	mux := http.NewServeMux()
	mux.Handle("/health", healthHTTPHandler)
	mux.Handle("/ready", healthHTTPHandler)
	mux.Handle("/", appHTTPHandler)
	a.handler = mux
}

func (a *Application) setAppServer() {
	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      a.handler,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Handler() http.Handler {
	return a.handler
}

// Run serves until SIGINT/SIGTERM or ctx is cancelled, then shuts down.
func (a *Application) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrors:
		a.stopWorkers()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server failed: %w", err)

	case <-ctx.Done():
		a.cfg.Log.Info("Shutdown signal received")
		return a.Shutdown()
	}
}

func (a *Application) Shutdown() error {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	var shutdownErr error
	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if closeErr := a.server.Close(); closeErr != nil {
			shutdownErr = fmt.Errorf("could not stop server gracefully: %w", closeErr)
		}
	}

	a.stopWorkers()

	a.cfg.Log.Info("Server stopped gracefully")
	return shutdownErr
}

func (a *Application) stopWorkers() {
	a.cfg.Log.Info("Stopping background workers...")
	a.idempotencyStore.Stop()
	a.rateLimiter.Stop()
	a.registry.Stop()
	if err := a.publisher.Close(); err != nil {
		a.cfg.Log.Error("Failed to close booking event publisher", "error", err)
	}
	a.cfg.Log.Info("Background workers stopped")
}
