package routers

import (
	"clinicport-service/internal/app/delivery/http/controllers"
	"clinicport-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.With(middlewares.Authenticate).Get("/profile", patientController.GetProfile)
	router.With(middlewares.Authenticate).Put("/profile", patientController.UpdateProfile)
	router.With(middlewares.Authenticate).Post("/profile/picture", patientController.UploadProfilePicture)
}
