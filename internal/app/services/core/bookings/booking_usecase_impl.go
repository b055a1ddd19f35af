package bookings

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinicport-service/internal/app/config"
	"clinicport-service/internal/app/contracts"
	"clinicport-service/internal/app/models"
	"clinicport-service/internal/app/services/core/availability"
	"clinicport-service/internal/pkg/constvars"
	"clinicport-service/internal/pkg/dto/requests"
	"clinicport-service/internal/pkg/dto/responses"
	"clinicport-service/internal/pkg/exceptions"
	"clinicport-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

type bookingUsecase struct {
	SessionService     contracts.SessionService
	BookingRepository  contracts.BookingRepository
	ProviderRepository contracts.ProviderRepository
	RedisRepository    contracts.RedisRepository
	CalendarCache      contracts.CalendarCache
	MailerService      contracts.MailerService
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewBookingUsecase(
	sessionService contracts.SessionService,
	bookingRepository contracts.BookingRepository,
	providerRepository contracts.ProviderRepository,
	redisRepository contracts.RedisRepository,
	calendarCache contracts.CalendarCache,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		instance := &bookingUsecase{
			SessionService:     sessionService,
			BookingRepository:  bookingRepository,
			ProviderRepository: providerRepository,
			RedisRepository:    redisRepository,
			CalendarCache:      calendarCache,
			MailerService:      mailerService,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
		bookingUsecaseInstance = instance
	})
	return bookingUsecaseInstance
}

// slotWidthForKind resolves the effective slot width: consultations are
// always 20 minutes, lab exams default to 30 and may request 60.
func slotWidthForKind(kind string, requestedWidth int) int {
	if kind == constvars.BookingKindConsultation {
		return constvars.SlotWidthConsultation
	}
	if requestedWidth == constvars.SlotWidthLabExtended {
		return constvars.SlotWidthLabExtended
	}
	return constvars.SlotWidthLabDefault
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.Booking, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	request.PatientID = session.PatientID

	provider, err := uc.ProviderRepository.FindProviderByID(ctx, request.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrProviderNotFound(nil)
	}

	date, err := time.Parse(constvars.DateLayoutISO, request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	width := slotWidthForKind(request.Kind, request.SlotWidth)

	activeBookings, err := uc.BookingRepository.FindActiveBookingsByProviderAndDate(ctx, provider.ID, request.Date)
	if err != nil {
		return nil, err
	}
	booked := make(map[string]struct{}, len(activeBookings))
	for _, existing := range activeBookings {
		booked[existing.SlotTime] = struct{}{}
	}

	// pre-flight only; the insert below is what actually wins or loses the
	// race through the unique index
	if !availability.IsSlotOffered(date, provider.WeeklySchedule, provider.DateOverrides, width, request.SlotTime) {
		return nil, exceptions.ErrBookingSlotNotOffered(fmt.Errorf("slot %s not offered on %s", request.SlotTime, request.Date))
	}
	if _, taken := booked[request.SlotTime]; taken {
		return nil, exceptions.ErrBookingSlotTaken(nil)
	}

	booking := &models.Booking{
		Kind:             request.Kind,
		PatientID:        session.PatientID,
		ProviderID:       provider.ID,
		Date:             request.Date,
		SlotTime:         request.SlotTime,
		SlotWidthMinutes: width,
		Status:           constvars.BookingStatusConfirmed,
		Active:           true,
		LabTestCode:      request.LabTestCode,
	}
	booking.SetCreatedAtUpdatedAt()

	bookingID, err := uc.BookingRepository.InsertBooking(ctx, booking)
	if err != nil {
		return nil, err
	}
	booking.ID = bookingID

	uc.afterBookingChanged(ctx, provider.ID, request.Date, request.SlotTime, true)

	payload := utils.BuildBookingConfirmedEmailPayload(
		uc.InternalConfig.Mailer.EmailSender, session.Email, session.FullName,
		booking.Kind, provider.Name, booking.Date, booking.SlotTime,
	)
	if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
		uc.Log.Warn("bookingUsecase.CreateBooking failed to enqueue confirmation email",
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
	}

	uc.Log.Info("bookingUsecase.CreateBooking succeeded",
		zap.String(constvars.LoggingBookingIDKey, bookingID),
		zap.String(constvars.LoggingProviderIDKey, provider.ID),
		zap.String(constvars.LoggingDateKey, booking.Date),
		zap.String(constvars.LoggingSlotTimeKey, booking.SlotTime),
	)

	response := booking.ConvertIntoResponse()
	response.ProviderName = provider.Name
	response.EstimatedServiceTime = uc.estimatedServiceTime(booking, activeBookings)
	return &response, nil
}

func (uc *bookingUsecase) ListBookings(ctx context.Context, request *requests.ListBookings) ([]responses.Booking, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.BookingRepository.FindBookingsByPatientID(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}

	providerNames := make(map[string]string)
	result := make([]responses.Booking, 0, len(bookings))
	for _, booking := range bookings {
		response := booking.ConvertIntoResponse()
		name, ok := providerNames[booking.ProviderID]
		if !ok {
			provider, err := uc.ProviderRepository.FindProviderByID(ctx, booking.ProviderID)
			if err == nil && provider != nil {
				name = provider.Name
			}
			providerNames[booking.ProviderID] = name
		}
		response.ProviderName = name
		result = append(result, response)
	}
	return result, nil
}

func (uc *bookingUsecase) CancelBooking(ctx context.Context, request *requests.CancelBooking) (*responses.Booking, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	booking, err := uc.BookingRepository.FindBookingByID(ctx, request.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(nil)
	}
	if booking.PatientID != session.PatientID {
		return nil, exceptions.ErrBookingNotOwned(nil)
	}
	if booking.Status == constvars.BookingStatusCancelled {
		response := booking.ConvertIntoResponse()
		return &response, nil
	}

	booking.Status = constvars.BookingStatusCancelled
	booking.Active = false
	booking.SetUpdatedAt()
	if err := uc.BookingRepository.CancelBooking(ctx, booking); err != nil {
		return nil, err
	}

	uc.afterBookingChanged(ctx, booking.ProviderID, booking.Date, booking.SlotTime, false)

	providerName := ""
	provider, err := uc.ProviderRepository.FindProviderByID(ctx, booking.ProviderID)
	if err == nil && provider != nil {
		providerName = provider.Name
	}

	payload := utils.BuildBookingCancelledEmailPayload(
		uc.InternalConfig.Mailer.EmailSender, session.Email, session.FullName,
		booking.Kind, providerName, booking.Date, booking.SlotTime,
	)
	if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
		uc.Log.Warn("bookingUsecase.CancelBooking failed to enqueue cancellation email",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
	}

	uc.Log.Info("bookingUsecase.CancelBooking succeeded",
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
	)

	response := booking.ConvertIntoResponse()
	response.ProviderName = providerName
	return &response, nil
}

// afterBookingChanged keeps the redis booked-slot set and the cached month
// calendar in line with the booking store.
func (uc *bookingUsecase) afterBookingChanged(ctx context.Context, providerID, date, slotTime string, booked bool) {
	key := fmt.Sprintf(constvars.RedisKeyBookedSlotsFormat, providerID, date)
	var err error
	if booked {
		err = uc.RedisRepository.AddToSet(ctx, key, slotTime)
	} else {
		err = uc.RedisRepository.RemoveFromSet(ctx, key, slotTime)
	}
	if err != nil {
		uc.Log.Warn("bookingUsecase failed to update booked slot set",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}

	if parsed, parseErr := time.Parse(constvars.DateLayoutISO, date); parseErr == nil {
		month := parsed.Format(constvars.MonthLayoutISO)
		if err := uc.CalendarCache.InvalidateCalendar(ctx, providerID, month); err != nil {
			uc.Log.Warn("bookingUsecase failed to invalidate calendar cache",
				zap.String(constvars.LoggingProviderIDKey, providerID),
				zap.Error(err),
			)
		}
	}
}

// estimatedServiceTime applies the front-desk heuristic: service starts at
// the clinic's base hour and each earlier active booking on the same day
// pushes the estimate back by a fixed step.
func (uc *bookingUsecase) estimatedServiceTime(booking *models.Booking, activeBookings []models.Booking) string {
	slot, ok := availability.ParseSlotDisplay(booking.SlotTime)
	if !ok {
		return ""
	}

	var bookedMinutes []int
	for _, existing := range activeBookings {
		if existing.ID == booking.ID {
			continue
		}
		if c, ok := availability.ParseSlotDisplay(existing.SlotTime); ok {
			bookedMinutes = append(bookedMinutes, c.MinuteOfDay())
		}
	}

	return availability.EstimatedServiceTime(slot.MinuteOfDay(), bookedMinutes).Display()
}
