package contracts

import (
	"context"
	"time"

	"clinicport-service/internal/app/models"
	"clinicport-service/internal/app/services/core/availability"
	"clinicport-service/internal/pkg/dto/requests"
	"clinicport-service/internal/pkg/dto/responses"
)

type ProviderUsecase interface {
	ListProviders(ctx context.Context, page, pageSize int) ([]responses.Provider, int64, error)
	GetProvider(ctx context.Context, providerID string) (*responses.Provider, error)
	PutWeeklySchedule(ctx context.Context, request *requests.PutWeeklySchedule) error
	PutDateOverride(ctx context.Context, request *requests.PutDateOverride) error
	DeleteDateOverride(ctx context.Context, request *requests.DeleteDateOverride) error
	ListSlots(ctx context.Context, request *requests.ListSlots) (*responses.SlotList, error)
	GetCalendar(ctx context.Context, request *requests.GetCalendar) (*responses.Calendar, error)
}

type ProviderRepository interface {
	FindAll(ctx context.Context, page, pageSize int) ([]models.Provider, int64, error)
	FindProviderByID(ctx context.Context, providerID string) (*models.Provider, error)
	UpdateWeeklySchedule(ctx context.Context, providerID string, schedule availability.WeeklySchedule) error
	SetDateOverride(ctx context.Context, providerID, date string, override availability.DateOverride) error
	UnsetDateOverride(ctx context.Context, providerID, date string) error
}

// CalendarCache stores pre-computed per-month day states so the calendar
// endpoint can answer without recomputing the window on every request.
type CalendarCache interface {
	GetCalendar(ctx context.Context, providerID, month string) (*responses.Calendar, error)
	SetCalendar(ctx context.Context, providerID, month string, calendar *responses.Calendar, exp time.Duration) error
	InvalidateCalendar(ctx context.Context, providerID, month string) error
}
