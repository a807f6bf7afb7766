package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"travelease/pkg/logger"
)

func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer recoverPanic(log, w, r)
			next.ServeHTTP(w, r)
		})
	}
}

// recoverPanic answers a panicking handler with 500. http.ErrAbortHandler is
// re-raised so net/http still drops the connection.
func recoverPanic(log *logger.Logger, w http.ResponseWriter, r *http.Request) {
	p := recover()
	if p == nil {
		return
	}
	if p == http.ErrAbortHandler {
		panic(p)
	}

	log.Error("Panic recovered",
		"request_id", RequestIDFrom(r),
		"panic", fmt.Sprint(p),
		"method", r.Method,
		"path", r.URL.Path,
		"stack", string(debug.Stack()),
	)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
