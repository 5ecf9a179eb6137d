package handler

import (
	"net/http"
	"strconv"

	"codeFactory/internal/core"
)

// Info отдаёт заранее закодированный документ о конвейере (GET /api/info).
// body не меняется после старта, поэтому ответы побайтно одинаковы.
func Info(body []byte) http.HandlerFunc {
	length := strconv.Itoa(len(body))
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Content-Length", length)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			core.LogError("Ошибка записи /api/info", map[string]interface{}{
				"error": err,
				"path":  r.URL.Path,
			})
		}
	}
}
