package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	flighterrors "travelease/internal/flights/errors"
	"travelease/internal/flights/service"
	httputil "travelease/pkg/http"
	"travelease/pkg/logger"
	"travelease/pkg/model"
)

type FlightHandler struct {
	service service.FlightService
	log     *logger.Logger
}

func NewFlightHandler(service service.FlightService, log *logger.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log,
	}
}

func (h *FlightHandler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.FlightSearchRequest
	if !h.decode(w, r, &req, "Search") {
		return
	}

	env, err := h.service.Search(r.Context(), &req)
	h.writeResult(w, env, err, "Search")
}

func (h *FlightHandler) Price(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.FlightOfferRequest
	if !h.decode(w, r, &req, "Price") {
		return
	}

	env, err := h.service.Price(r.Context(), &req)
	h.writeResult(w, env, err, "Price")
}

func (h *FlightHandler) Book(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.FlightBookingRequest
	if !h.decode(w, r, &req, "Book") {
		return
	}

	env, err := h.service.Book(r.Context(), &req)
	h.writeResult(w, env, err, "Book")
}

func (h *FlightHandler) GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := strings.TrimSpace(ps.ByName("id"))
	if id == "" {
		if err := httputil.WriteBadRequest(w, flighterrors.ErrMissingBookingID.Error()); err != nil {
			h.log.Error("failed to write bad request response", "handler", "GetBooking", "operation", "WriteBadRequest", "error", err)
		}
		return
	}

	env, err := h.service.GetBooking(r.Context(), h.service.ResolveBooking(id))
	h.writeResult(w, env, err, "GetBooking")
}

func (h *FlightHandler) CancelBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := strings.TrimSpace(ps.ByName("id"))
	if id == "" {
		if err := httputil.WriteBadRequest(w, flighterrors.ErrMissingBookingID.Error()); err != nil {
			h.log.Error("failed to write bad request response", "handler", "CancelBooking", "operation", "WriteBadRequest", "error", err)
		}
		return
	}

	env, err := h.service.CancelBooking(r.Context(), h.service.ResolveBooking(id))
	h.writeResult(w, env, err, "CancelBooking")
}

func (h *FlightHandler) SeatMap(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.FlightOfferRequest
	if !h.decode(w, r, &req, "SeatMap") {
		return
	}

	env, err := h.service.SeatMap(r.Context(), &req)
	h.writeResult(w, env, err, "SeatMap")
}

func (h *FlightHandler) Deals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	env, err := h.service.Deals(r.Context(), r.URL.Query().Get("origin"))
	h.writeResult(w, env, err, "Deals")
}

func (h *FlightHandler) decode(w http.ResponseWriter, r *http.Request, target any, handler string) bool {
	if err := httputil.DecodeBody(r, target); err != nil {
		if writeErr := httputil.WriteBadRequest(w, flighterrors.MsgInvalidRequest); writeErr != nil {
			h.log.Error("failed to write bad request response", "handler", handler, "operation", "WriteBadRequest", "error", writeErr)
		}
		return false
	}
	return true
}

func (h *FlightHandler) writeResult(w http.ResponseWriter, env model.Envelope, err error, handler string) {
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if writeErr := httputil.WriteSuccess(w, env); writeErr != nil {
		h.log.Error("failed to write success response", "handler", handler, "operation", "WriteSuccess", "error", writeErr)
	}
}

func (h *FlightHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/flights/search", h.Search)
	router.POST("/api/flights/price", h.Price)
	router.POST("/api/flights/booking", h.Book)
	router.GET("/api/flights/booking/:id", h.GetBooking)
	router.DELETE("/api/flights/booking/:id", h.CancelBooking)
	router.POST("/api/flights/seats", h.SeatMap)
	router.GET("/api/flights/deals", h.Deals)
}
