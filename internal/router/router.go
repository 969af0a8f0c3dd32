package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/quiz-wizard/docs"
	"github.com/saulo-duarte/quiz-wizard/internal/aiquiz"
	"github.com/saulo-duarte/quiz-wizard/internal/config"
	"github.com/saulo-duarte/quiz-wizard/internal/middlewares"
	"github.com/saulo-duarte/quiz-wizard/internal/observability"
	"github.com/saulo-duarte/quiz-wizard/internal/session"
)

type RouterConfig struct {
	AIQuizHandler  *aiquiz.Handler
	SessionHandler *session.Handler
	CorsOrigins    []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.CorsOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(observability.Middleware("quiz-wizard"))

		r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))
		r.Mount("/sessions", session.Routes(cfg.SessionHandler))
	})
	return r
}
