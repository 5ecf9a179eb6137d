package middleware

import (
	"net/http"
	"time"

	"codeFactory/internal/core"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger пишет одну запись на запрос в основной журнал (zerolog)
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			core.LogInfo("http request", map[string]interface{}{
				"request_id":  middleware.GetReqID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"remote":      r.RemoteAddr,
			})
		}()
		next.ServeHTTP(ww, r)
	})
}
