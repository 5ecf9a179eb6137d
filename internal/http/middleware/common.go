// common.go
package middleware

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// UseCommon подключает общие middleware. Порядок важен:
// RequestID раньше логгера, метрики снаружи Recoverer, чтобы паника считалась как 500.
func UseCommon(r chi.Router, timeout time.Duration, secure Security, metrics *Metrics) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	if metrics != nil {
		r.Use(metrics.Handler)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(middleware.Compress(5))
	r.Use(secure.Handler)
}
