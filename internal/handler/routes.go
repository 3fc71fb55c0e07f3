package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the API router.
func (h *Handler) Routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)

	router.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.requireCredentialStore)
			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
		})

		r.Post("/logout", h.logout)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Get("/me", h.me)
			r.Post("/favourites", h.toggleFavourite)
			r.Get("/favourites", h.listFavourites)
		})
	})

	router.Route("/api/competitions", func(r chi.Router) {
		r.Get("/", h.listCompetitions)
		r.Post("/", h.createCompetition)
		r.Get("/stats", h.competitionStats)

		if h.mountCompetitionCRUD {
			r.Get("/{id}", h.getCompetition)
			r.Put("/{id}", h.updateCompetition)
			r.Delete("/{id}", h.deleteCompetition)
		}
	})

	return router
}
