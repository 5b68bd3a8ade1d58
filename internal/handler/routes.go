package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the IPC router. A malformed request produces a protocol-error
// response; a panicking handler is recovered — the daemon never crashes on
// client input.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		r.Get("/status", h.status)
		r.Post("/stop", h.stop)

		// Single-secret operations carry the key in a query parameter:
		// a path segment cannot hold arbitrary key names, since "/",
		// "?" and "%" would be reinterpreted by URL parsing.
		r.Route("/secrets", func(r chi.Router) {
			r.Get("/", h.snapshot)
			r.Post("/", h.add)
			r.Delete("/", h.remove)
			r.Get("/keys", h.keys)
			r.Get("/value", h.getSecret)
		})
	})

	return router
}
