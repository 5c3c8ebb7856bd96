package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	if len(h.allowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
			ExposedHeaders: []string{"Authorization", traceIDHeader},
			MaxAge:         300,
		}))
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api/quiz", func(r chi.Router) {
		r.Get("/all", h.listQuizzes)
		r.Get("/{quizId}", h.getQuiz)
		r.Post("/play/{quizId}", h.playQuiz)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/create", h.createQuiz)
			r.Put("/{quizId}", h.updateQuiz)
			r.Delete("/{quizId}", h.deleteQuiz)
		})
	})

	router.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Get("/api/version/", h.getServerVersion)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
