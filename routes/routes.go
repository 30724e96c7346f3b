package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/velez94/scoringames-sub000/handlers"
)

// SetupRoutes wires the HTTP surface onto the router. Roster data is
// owned by the back office; this service only exposes the scheduling
// lifecycle.
func SetupRoutes(
	router *chi.Mux,
	scheduleHandler *handlers.ScheduleHandler,
	roundHandler *handlers.RoundHandler,
	standingsHandler *handlers.StandingsHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	router.Route("/events/{eventID}/schedules", func(r chi.Router) {
		r.Post("/", scheduleHandler.GenerateHandler)
		r.Get("/", scheduleHandler.ListHandler)

		r.Route("/{scheduleID}", func(r chi.Router) {
			r.Get("/", scheduleHandler.GetByIDHandler)
			r.Put("/", scheduleHandler.RegenerateHandler)
			r.Delete("/", scheduleHandler.DeleteHandler)

			r.Post("/publish", scheduleHandler.PublishHandler)
			r.Delete("/publish", scheduleHandler.UnpublishHandler)

			r.Route("/categories/{categoryID}", func(r chi.Router) {
				r.Post("/rounds/{filter}", roundHandler.SubmitHandler)
				r.Get("/standings", standingsHandler.GetHandler)
			})
		})
	})

	router.Get("/ws/events/{eventID}", webSocketHandler.ServeWs)
}
