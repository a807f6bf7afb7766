package middleware

import (
	"net/http"

	httputil "travelease/pkg/http"
)

func RequestIDFrom(r *http.Request) string {
	if id, ok := r.Context().Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

func writeError(w http.ResponseWriter, status int, message string) {
	_ = httputil.WriteJSON(w, status, httputil.ErrorResponse{Error: message})
}
