package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zpredict/prediction-service/internal/handler"
)

func Setup(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/predictions", h.GeneratePredictions)
		r.Post("/predictions/save", h.SavePredictions)
		r.Get("/predictions/history/{sessionID}", h.PredictionHistory)
		r.Get("/streams/{stream}/courses", h.ListCourses)
		r.Post("/careers/recommendations", h.RecommendCareers)
	})
	r.Get("/health", h.Health)

	return r
}
