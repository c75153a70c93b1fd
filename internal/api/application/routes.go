package application

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers application routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/questions", h.GetQuestions)

	r.Route("/applications", func(r chi.Router) {
		r.Post("/", h.StartApplication)
		r.Get("/{id}", h.GetApplication)
		r.Put("/{id}/fields/{field}", h.UpdateField)
		r.Put("/{id}/choices/{field}", h.SelectOption)
		r.Post("/{id}/love-languages/toggle", h.ToggleLoveLanguage)
		r.Post("/{id}/submit", h.Submit)
	})
}
