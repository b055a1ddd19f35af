package contracts

import (
	"context"

	"clinicport-service/internal/app/models"
	"clinicport-service/internal/pkg/dto/requests"
	"clinicport-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.Booking, error)
	ListBookings(ctx context.Context, request *requests.ListBookings) ([]responses.Booking, error)
	CancelBooking(ctx context.Context, request *requests.CancelBooking) (*responses.Booking, error)
}

type BookingRepository interface {
	// InsertBooking relies on the active provider/date/slot uniqueness index
	// and returns a conflict error when the slot was concurrently taken.
	InsertBooking(ctx context.Context, booking *models.Booking) (string, error)
	FindBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindBookingsByPatientID(ctx context.Context, patientID string) ([]models.Booking, error)
	FindActiveBookingsByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Booking, error)
	FindActiveBookingsByProviderAndMonth(ctx context.Context, providerID, month string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, booking *models.Booking) error
}
