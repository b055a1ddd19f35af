package routers

import (
	"clinicport-service/internal/app/delivery/http/controllers"
	"clinicport-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProviderRoutes(router chi.Router, middlewares *middlewares.Middlewares, providerController *controllers.ProviderController) {
	router.Get("/", providerController.ListProviders)
	router.Get("/{provider_id}", providerController.GetProvider)
	router.Get("/{provider_id}/slots", providerController.ListSlots)
	router.Get("/{provider_id}/calendar", providerController.GetCalendar)

	// Schedule management is reserved for the front office admin tooling.
	router.With(middlewares.RequireAPIKey).Put("/{provider_id}/schedule", providerController.PutWeeklySchedule)
	router.With(middlewares.RequireAPIKey).Put("/{provider_id}/overrides", providerController.PutDateOverride)
	router.With(middlewares.RequireAPIKey).Delete("/{provider_id}/overrides/{date}", providerController.DeleteDateOverride)
}
