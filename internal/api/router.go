package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/cloudnine/sleep-debt-api/docs"
	"github.com/cloudnine/sleep-debt-api/internal/api/handler"
	"github.com/cloudnine/sleep-debt-api/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler        *handler.UserHandler
	sleepRecordHandler *handler.SleepRecordHandler
	debtHandler        *handler.DebtHandler
	insightsHandler    *handler.InsightsHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	sleepRecordHandler *handler.SleepRecordHandler,
	debtHandler *handler.DebtHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		userHandler:        userHandler,
		sleepRecordHandler: sleepRecordHandler,
		debtHandler:        debtHandler,
		insightsHandler:    insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			// Sleep records (nested under users)
			r.Route("/{userId}/sleep-records", func(r chi.Router) {
				r.Post("/", rt.sleepRecordHandler.Create)
				r.Get("/", rt.sleepRecordHandler.List)
				r.Post("/import", rt.sleepRecordHandler.Import)
				r.Patch("/{recordId}", rt.sleepRecordHandler.Update)
			})

			// Automated sleep debt (nested under users)
			r.Route("/{userId}/sleep-debt", func(r chi.Router) {
				r.Get("/", rt.debtHandler.GetDebt)
				r.Get("/schedule", rt.debtHandler.GetSchedule)
				r.Get("/insights", rt.insightsHandler.GetInsights)
			})
		})

		// Feedback is linked by trace ID, not user
		r.Post("/insights/feedback", rt.insightsHandler.PostFeedback)
	})

	return r
}
