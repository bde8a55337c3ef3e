package middleware

import (
	"net/http"
	"runtime/debug"

	"petify-api/internal/platform/httpx"
	"petify-api/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recover atrapa panics por request: loguea con stack y responde 500 JSON.
// Un panic nunca tumba el proceso ni deja el request colgado.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				if log != nil {
					log.Error("panic recovered", map[string]any{
						"panic":      rec,
						"method":     r.Method,
						"path":       r.URL.Path,
						"request_id": chimw.GetReqID(r.Context()),
						"stack":      string(debug.Stack()),
					})
				}
				httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{Message: "internal error"})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
