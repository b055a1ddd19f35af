package routers

import (
	"clinicport-service/internal/app/delivery/http/controllers"
	"clinicport-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachFeedbackRoutes(router chi.Router, middlewares *middlewares.Middlewares, feedbackController *controllers.FeedbackController) {
	router.With(middlewares.Authenticate).Post("/", feedbackController.CreateFeedback)
	router.With(middlewares.Authenticate).Get("/", feedbackController.ListFeedback)
}
