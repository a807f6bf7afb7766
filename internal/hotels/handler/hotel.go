package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"travelease/internal/booking"
	hotelerrors "travelease/internal/hotels/errors"
	"travelease/internal/hotels/service"
	httputil "travelease/pkg/http"
	"travelease/pkg/logger"
	"travelease/pkg/model"
)

type HotelHandler struct {
	service service.HotelService
	log     *logger.Logger
}

func NewHotelHandler(service service.HotelService, log *logger.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log,
	}
}

func (h *HotelHandler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.HotelSearchRequest
	if err := httputil.DecodeBody(r, &req); err != nil {
		if writeErr := httputil.WriteBadRequest(w, hotelerrors.MsgInvalidRequest); writeErr != nil {
			h.log.Error("failed to write bad request response", "handler", "Search", "operation", "WriteBadRequest", "error", writeErr)
		}
		return
	}

	env, err := h.service.Search(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Search", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, env); err != nil {
		h.log.Error("failed to write success response", "handler", "Search", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HotelHandler) Offers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.HotelOffersRequest
	if err := httputil.DecodeBody(r, &req); err != nil {
		if writeErr := httputil.WriteBadRequest(w, hotelerrors.MsgInvalidRequest); writeErr != nil {
			h.log.Error("failed to write bad request response", "handler", "Offers", "operation", "WriteBadRequest", "error", writeErr)
		}
		return
	}

	env, err := h.service.Offers(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Offers", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, env); err != nil {
		h.log.Error("failed to write success response", "handler", "Offers", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HotelHandler) OfferDetails(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := strings.TrimSpace(ps.ByName("id"))
	if id == "" {
		if err := httputil.WriteBadRequest(w, hotelerrors.ErrMissingOfferID.Error()); err != nil {
			h.log.Error("failed to write bad request response", "handler", "OfferDetails", "operation", "WriteBadRequest", "error", err)
		}
		return
	}

	env, err := h.service.OfferDetails(r.Context(), booking.ParseOfferRef(id))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "OfferDetails", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, env); err != nil {
		h.log.Error("failed to write success response", "handler", "OfferDetails", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HotelHandler) Book(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.HotelBookingRequest
	if err := httputil.DecodeBody(r, &req); err != nil {
		if writeErr := httputil.WriteBadRequest(w, hotelerrors.MsgInvalidRequest); writeErr != nil {
			h.log.Error("failed to write bad request response", "handler", "Book", "operation", "WriteBadRequest", "error", writeErr)
		}
		return
	}

	env, err := h.service.Book(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Book", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, env); err != nil {
		h.log.Error("failed to write success response", "handler", "Book", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HotelHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/hotels/search", h.Search)
	router.POST("/api/hotels/offers", h.Offers)
	router.GET("/api/hotels/offers/:id", h.OfferDetails)
	router.POST("/api/hotels/booking", h.Book)
}
