package handlers

import (
	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Get("/health", h.HealthHandler)

	r.Route("/v1", func(r chi.Router) {

		// public routes
		r.Post("/auth/login", h.Login)

		// Secure routes
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)

			r.Get("/me", h.Me)

			r.Get("/session/start", h.StartSession)
			r.Post("/session/answer", h.SubmitAnswer)
			r.Get("/session/progress", h.SessionProgress)
			r.Post("/session/complete", h.CompleteSession)

			r.Get("/words", h.ListWords)
			r.Post("/words", h.AddWord)
			r.Get("/due-count", h.DueCount)
			r.Get("/stats", h.GetStats)

			r.Get("/typing/next", h.TypingNext)
			r.Post("/typing/answer", h.TypingAnswer)

			r.Group(func(r chi.Router) {
				r.Use(h.requireAdmin)
				r.Get("/admin/stats", h.AdminStats)
				r.Get("/admin/export/csv", h.ExportCSV)
			})
		})
	})
}
