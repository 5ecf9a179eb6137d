package handler

import (
	"context"
	"net/http"
)

// Health — liveness: процесс жив и отвечает
func Health(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "OK")
}

// Ready — readiness: после отмены ctx (начало shutdown) отвечает 503,
// чтобы балансировщик перестал слать трафик.
func Ready(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctx.Err() != nil {
			writeText(w, http.StatusServiceUnavailable, "shutting down")
			return
		}
		writeText(w, http.StatusOK, "OK")
	}
}

func writeText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
