package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// deadlineWriter guards the response against writes from a handler that is
// still running after the deadline answer went out.
type deadlineWriter struct {
	http.ResponseWriter
	mu      sync.Mutex
	expired bool
	started bool
}

func (dw *deadlineWriter) WriteHeader(code int) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.expired || dw.started {
		return
	}
	dw.started = true
	dw.ResponseWriter.WriteHeader(code)
}

func (dw *deadlineWriter) Write(b []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.expired {
		return 0, http.ErrHandlerTimeout
	}
	dw.started = true
	return dw.ResponseWriter.Write(b)
}

// expire marks the writer dead and sends 504 unless the handler already
// started its own response.
func (dw *deadlineWriter) expire() {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	dw.expired = true
	if !dw.started {
		dw.started = true
		writeError(dw.ResponseWriter, http.StatusGatewayTimeout, "Request timeout")
	}
}

// RequestTimeout bounds the request context so provider calls observe the
// deadline. Panics in the handler are re-raised on the serving goroutine.
func RequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			dw := &deadlineWriter{ResponseWriter: w}
			done := make(chan any, 1)

			go func() {
				defer func() { done <- recover() }()
				next.ServeHTTP(dw, r.WithContext(ctx))
			}()

			select {
			case p := <-done:
				if p != nil {
					panic(p)
				}
			case <-ctx.Done():
				dw.expire()
			}
		})
	}
}
