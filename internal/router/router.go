package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/trsv-dev/simple-spa-dev-server/internal/config"
	"github.com/trsv-dev/simple-spa-dev-server/internal/middleware"
	"github.com/trsv-dev/simple-spa-dev-server/internal/static"
)

// Router Роутер.
func Router(cfg *config.Config, files *static.Handler) chi.Router {
	router := chi.NewRouter()

	// middleware логгера всех запросов
	router.Use(middleware.LogMiddleware)

	// режим замедления: фиксированная задержка каждого GET-запроса
	if cfg.SlowMode {
		router.Use(middleware.SlowdownMiddleware(cfg.SlowDelay))
	}

	// вся раздача статики с SPA-fallback на одном catch-all маршруте
	router.Handle("/*", files)

	return router
}
