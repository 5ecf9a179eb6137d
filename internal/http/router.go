package httpx

import (
	"context"
	"fmt"
	"net/http"

	"codeFactory/internal/core"
	"codeFactory/internal/data"
	"codeFactory/internal/http/handler"
	"codeFactory/internal/http/middleware"
	"codeFactory/internal/view"
	"codeFactory/web"

	"github.com/go-chi/chi/v5"
)

// NewRouter собирает chi-маршрутизатор: middleware, страницы, API, статика.
// ready отменяется при начале shutdown; nil — всегда готов.
// Неизвестные пути получают стандартный 404 chi (http.NotFound).
func NewRouter(cfg core.Config, ready context.Context) (http.Handler, error) {
	if ready == nil {
		ready = context.Background()
	}

	tpl, err := view.New(web.Templates(), cfg.AppName)
	if err != nil {
		return nil, fmt.Errorf("шаблоны: %w", err)
	}

	doc := data.Pipeline()
	info, err := doc.Encode()
	if err != nil {
		return nil, err
	}

	metrics := middleware.NewMetrics()

	r := chi.NewRouter()
	middleware.UseCommon(r, cfg.RequestTimeout, middleware.NewSecurity(cfg.IsProd()), metrics)

	// страницы
	r.Get("/", handler.Home(tpl, cfg.HomeMode, doc))

	// API
	r.Get("/api/info", handler.Info(info))

	// health / ready / метрики
	r.Get("/health", handler.Health)
	r.Get("/readyz", handler.Ready(ready))
	r.Method(http.MethodGet, "/metrics", metrics.Exposition())

	// статика
	r.Method(http.MethodGet, "/static/*", handler.Static(web.Static(), "/static/", cfg.IsProd()))

	r.MethodNotAllowed(handler.MethodNotAllowed)

	return r, nil
}
