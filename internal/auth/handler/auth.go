package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	autherrors "travelease/internal/auth/errors"
	"travelease/internal/auth/service"
	httputil "travelease/pkg/http"
	"travelease/pkg/logger"
	"travelease/pkg/model"
)

type AuthHandler struct {
	service service.AuthService
	log     *logger.Logger
}

func NewAuthHandler(service service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.SignupRequest
	if err := httputil.DecodeBody(r, &req); err != nil {
		if writeErr := httputil.WriteBadRequest(w, autherrors.MsgInvalidRequest); writeErr != nil {
			h.log.Error("failed to write bad request response", "handler", "Signup", "operation", "WriteBadRequest", "error", writeErr)
		}
		return
	}

	resp, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Signup", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "Signup", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.LoginRequest
	if err := httputil.DecodeBody(r, &req); err != nil {
		if writeErr := httputil.WriteBadRequest(w, autherrors.MsgInvalidRequest); writeErr != nil {
			h.log.Error("failed to write bad request response", "handler", "Login", "operation", "WriteBadRequest", "error", writeErr)
		}
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Login", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "Login", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	resp, err := h.service.ProviderToken(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Token", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "Token", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/auth/signup", h.Signup)
	router.POST("/api/auth/login", h.Login)
	router.GET("/api/auth/token", h.Token)
}
