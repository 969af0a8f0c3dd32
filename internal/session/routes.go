package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quiz-wizard/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateSession)

	r.Route("/{id}", func(r chi.Router) {
		r.Use(auth.SessionMiddleware)

		r.Get("/", h.GetSession)
		r.Delete("/", h.DeleteSession)
		r.Put("/config", h.UpdateConfig)
		r.Post("/quiz", h.GenerateQuiz)
		r.Post("/answers", h.SelectOption)
		r.Post("/next", h.Next)
		r.Post("/prev", h.Prev)
		r.Post("/explanations", h.Explain)
		r.Get("/result", h.Result)
		r.Post("/reset", h.Reset)
	})
	return r
}
