package routes

import (
	"github.com/go-chi/chi/v5"

	"aeroclub/flightdesk/internal/api"
	"aeroclub/flightdesk/internal/metrics"
	"aeroclub/flightdesk/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, handlers *api.Handlers) {

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))
		v1.Use(middleware.AuthMiddleware(jwtSecret())) // global: all routes must be authenticated

		// Catalog snapshots for the booking form
		v1.Route("/catalog", func(catalog chi.Router) {
			catalog.Get("/pilots", handlers.PilotsHandler())
			catalog.Get("/categories", handlers.CategoriesHandler())
			catalog.Get("/aircraft", handlers.AircraftHandler())
			catalog.Get("/purposes", handlers.PurposesHandler())
		})

		// Administrator maintenance
		v1.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.IsAdministratorMiddleware())
			admin.Post("/catalog/refresh", handlers.RefreshCatalogHandler())
		})

		// Booking board
		v1.Route("/schedule", func(schedule chi.Router) {
			schedule.Post("/validate", handlers.ValidateBookingHandler())
			schedule.Get("/entries", handlers.ListScheduleHandler())
			schedule.Post("/entries", handlers.SubmitBookingHandler())
			schedule.Put("/entries/{entry_id}", handlers.UpdateBookingHandler())
			schedule.Delete("/entries/{entry_id}", handlers.DeleteBookingHandler())
		})
	})
}
