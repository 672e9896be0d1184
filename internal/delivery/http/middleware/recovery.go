package middleware

import (
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Pesokrava/grocery_catalog/internal/delivery/http/response"
	"github.com/Pesokrava/grocery_catalog/internal/pkg/logger"
)

// Recovery turns a handler panic into a 500 and logs the stack with the
// request id so the failing request can be traced.
func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// let the server abort the connection
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.WithFields(map[string]interface{}{
					"panic":      rec,
					"method":     r.Method,
					"path":       r.URL.Path,
					"request_id": chimiddleware.GetReqID(r.Context()),
					"stack":      string(debug.Stack()),
				}).Warn("Panic recovered")

				response.Error(w, http.StatusInternalServerError, "Internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
