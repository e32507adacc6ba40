package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// Recovery converts panics in downstream handlers into 500 responses. Cron
// callers only retry on non-2xx, so a panic must never leave the connection
// hanging without a status.
func Recovery(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				logger.Error("Panic recovered",
					zap.Any("panic", rec),
					zap.String("request_id", GetRequestID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("stack", string(debug.Stack())),
				)

				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, map[string]interface{}{
					"error":     ErrorCodeInternal,
					"message":   ErrorMessageInternal,
					"timestamp": time.Now().UTC().Format(time.RFC3339),
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
