package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Only the paths below exist; every other request,
// and every request with an unsupported method, gets the 404 JSON body.
//
//	GET /             application shell
//	GET /static/*     static assets
//	GET /api/config   client configuration
//	GET /api/health   liveness report
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.withRecovery)
	router.Use(h.withCORS())
	router.Use(middleware.GetHead)
	router.Use(withCompression)

	router.Get("/", h.handle(h.getIndex))
	router.Get("/static/*", h.handle(h.getStatic))

	router.Get("/api/config", h.handle(h.getAppConfig))
	router.Get("/api/health", h.handle(h.getHealth))

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
