package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(api chi.Router) {
		api.Use(withGZip)
		api.Use(h.withTimeout)

		api.Get("/version", h.getServerVersion)
		api.Post("/seed", h.seed)

		api.Route("/auth", func(r chi.Router) {
			r.Use(h.withAuthRateLimit)
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.With(h.auth).Get("/me", h.me)
		})

		api.Route("/projects", func(r chi.Router) {
			r.Get("/", h.listProjects)
			r.Get("/{id}", h.getProject)

			// mutations need a caller
			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.createProject)
				r.Patch("/{id}", h.updateProject)
				r.Delete("/{id}", h.deleteProject)
			})
		})

		api.Route("/pledges", func(r chi.Router) {
			r.Get("/", h.listPledges)
			r.With(h.optionalAuth).Post("/", h.createPledge)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
