package health

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"travelease/pkg/amadeus"
	httputil "travelease/pkg/http"
	"travelease/pkg/logger"
)

const readyTimeout = 5 * time.Second

type Response struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream,omitempty"`
}

type Handler struct {
	tokens amadeus.TokenSource
	log    *logger.Logger
}

func NewHandler(tokens amadeus.TokenSource, log *logger.Logger) *Handler {
	return &Handler{
		tokens: tokens,
		log:    log,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, Response{
		Status: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

// Ready performs a credential exchange against the provider.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if _, err := h.tokens.AcquireToken(ctx); err != nil {
		h.log.Error("Upstream readiness check failed",
			"error", err,
			"path", r.URL.Path,
		)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, Response{
			Status:   "unavailable",
			Upstream: "error",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, Response{
		Status:   "ready",
		Upstream: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
