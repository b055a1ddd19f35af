package routers

import (
	"clinicport-service/internal/app/delivery/http/controllers"
	"clinicport-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.With(middlewares.Authenticate).Post("/", bookingController.CreateBooking)
	router.With(middlewares.Authenticate).Get("/", bookingController.ListBookings)
	router.With(middlewares.Authenticate).Delete("/{booking_id}", bookingController.CancelBooking)
}
