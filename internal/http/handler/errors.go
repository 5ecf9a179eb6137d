package handler

import (
	"net/http"

	"codeFactory/internal/core"
)

// MethodNotAllowed — 405 в формате problem+json. Все маршруты только GET.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	core.Fail(w, r, core.MethodNotAllowed(r.Method))
}
