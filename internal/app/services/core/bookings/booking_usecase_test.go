package bookings

import (
	"context"
	"testing"
	"time"

	"clinicport-service/internal/app/config"
	"clinicport-service/internal/app/contracts"
	"clinicport-service/internal/app/models"
	"clinicport-service/internal/app/services/core/availability"
	"clinicport-service/internal/pkg/constvars"
	"clinicport-service/internal/pkg/dto/requests"
	"clinicport-service/internal/pkg/dto/responses"
	"clinicport-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	args := m.Called(ctx, session)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) InsertBooking(ctx context.Context, booking *models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

func (m *MockBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindBookingsByPatientID(ctx context.Context, patientID string) ([]models.Booking, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindActiveBookingsByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	args := m.Called(ctx, providerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindActiveBookingsByProviderAndMonth(ctx context.Context, providerID, month string) ([]models.Booking, error) {
	args := m.Called(ctx, providerID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) CancelBooking(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Provider, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Provider), args.Get(1).(int64), args.Error(2)
}

func (m *MockProviderRepository) FindProviderByID(ctx context.Context, providerID string) (*models.Provider, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Provider), args.Error(1)
}

func (m *MockProviderRepository) UpdateWeeklySchedule(ctx context.Context, providerID string, schedule availability.WeeklySchedule) error {
	args := m.Called(ctx, providerID, schedule)
	return args.Error(0)
}

func (m *MockProviderRepository) SetDateOverride(ctx context.Context, providerID, date string, override availability.DateOverride) error {
	args := m.Called(ctx, providerID, date, override)
	return args.Error(0)
}

func (m *MockProviderRepository) UnsetDateOverride(ctx context.Context, providerID, date string) error {
	args := m.Called(ctx, providerID, date)
	return args.Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) AddToSet(ctx context.Context, key string, values ...interface{}) error {
	args := m.Called(ctx, key, values)
	return args.Error(0)
}

func (m *MockRedisRepository) RemoveFromSet(ctx context.Context, key string, values ...interface{}) error {
	args := m.Called(ctx, key, values)
	return args.Error(0)
}

func (m *MockRedisRepository) GetSetMembers(ctx context.Context, key string) ([]string, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

type MockCalendarCache struct {
	mock.Mock
}

func (m *MockCalendarCache) GetCalendar(ctx context.Context, providerID, month string) (*responses.Calendar, error) {
	args := m.Called(ctx, providerID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Calendar), args.Error(1)
}

func (m *MockCalendarCache) SetCalendar(ctx context.Context, providerID, month string, calendar *responses.Calendar, exp time.Duration) error {
	args := m.Called(ctx, providerID, month, calendar, exp)
	return args.Error(0)
}

func (m *MockCalendarCache) InvalidateCalendar(ctx context.Context, providerID, month string) error {
	args := m.Called(ctx, providerID, month)
	return args.Error(0)
}

type MockMailerService struct {
	mock.Mock
}

func (m *MockMailerService) SendEmail(ctx context.Context, payload *requests.EmailPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type bookingTestDeps struct {
	session  *MockSessionService
	bookings *MockBookingRepository
	provider *MockProviderRepository
	redis    *MockRedisRepository
	calendar *MockCalendarCache
	mailer   *MockMailerService
	usecase  contracts.BookingUsecase
}

func newBookingTestDeps() *bookingTestDeps {
	deps := &bookingTestDeps{
		session:  new(MockSessionService),
		bookings: new(MockBookingRepository),
		provider: new(MockProviderRepository),
		redis:    new(MockRedisRepository),
		calendar: new(MockCalendarCache),
		mailer:   new(MockMailerService),
	}
	deps.usecase = &bookingUsecase{
		SessionService:     deps.session,
		BookingRepository:  deps.bookings,
		ProviderRepository: deps.provider,
		RedisRepository:    deps.redis,
		CalendarCache:      deps.calendar,
		MailerService:      deps.mailer,
		InternalConfig: &config.InternalConfig{
			Mailer: config.AppMailer{EmailSender: "no-reply@clinicport.local"},
		},
		Log: zap.NewNop(),
	}
	return deps
}

func testProvider() *models.Provider {
	return &models.Provider{
		ID:   "provider-1",
		Name: "dr. Ayu Lestari",
		WeeklySchedule: availability.WeeklySchedule{
			Monday: availability.DayPlan{
				Enabled: true,
				Ranges: []availability.TimeRange{
					{Start: availability.Clock{H: 8, M: 0}, End: availability.Clock{H: 9, M: 0}},
				},
			},
		},
	}
}

func testSession() *models.Session {
	return &models.Session{
		SessionID: "session-1",
		PatientID: "patient-1",
		Email:     "patient@example.com",
		FullName:  "Budi Santoso",
	}
}

// 2026-03-02 is a Monday.
const testBookingDate = "2026-03-02"

func assertCustomErrorStatus(t *testing.T, err error, wantStatus int) {
	t.Helper()
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok, "expected a CustomError, got %T", err)
	assert.Equal(t, wantStatus, customErr.StatusCode)
}

func TestBookingUsecase_CreateBooking(t *testing.T) {
	t.Run("books a free consultation slot", func(t *testing.T) {
		deps := newBookingTestDeps()

		deps.session.On("ParseSessionData", mock.Anything, "token").Return(testSession(), nil)
		deps.provider.On("FindProviderByID", mock.Anything, "provider-1").Return(testProvider(), nil)
		deps.bookings.On("FindActiveBookingsByProviderAndDate", mock.Anything, "provider-1", testBookingDate).
			Return([]models.Booking{{ID: "existing-1", SlotTime: "08:00 AM", Active: true}}, nil)
		deps.bookings.On("InsertBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return("booking-1", nil)
		deps.redis.On("AddToSet", mock.Anything, "bookedslots:provider-1:2026-03-02", mock.Anything).Return(nil)
		deps.calendar.On("InvalidateCalendar", mock.Anything, "provider-1", "2026-03").Return(nil)
		deps.mailer.On("SendEmail", mock.Anything, mock.AnythingOfType("*requests.EmailPayload")).Return(nil)

		response, err := deps.usecase.CreateBooking(context.Background(), &requests.CreateBooking{
			SessionData: "token",
			Kind:        constvars.BookingKindConsultation,
			ProviderID:  "provider-1",
			Date:        testBookingDate,
			SlotTime:    "08:20 AM",
		})

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", response.ID)
		assert.Equal(t, constvars.BookingStatusConfirmed, response.Status)
		assert.Equal(t, constvars.SlotWidthConsultation, response.SlotWidthMinutes)
		assert.Equal(t, "dr. Ayu Lestari", response.ProviderName)
		// one earlier active booking pushes the estimate one step past the base hour
		assert.Equal(t, "08:30 AM", response.EstimatedServiceTime)
		deps.bookings.AssertExpectations(t)
		deps.redis.AssertExpectations(t)
		deps.calendar.AssertExpectations(t)
	})

	t.Run("lab exam defaults to the 30 minute width", func(t *testing.T) {
		deps := newBookingTestDeps()

		deps.session.On("ParseSessionData", mock.Anything, "token").Return(testSession(), nil)
		deps.provider.On("FindProviderByID", mock.Anything, "provider-1").Return(testProvider(), nil)
		deps.bookings.On("FindActiveBookingsByProviderAndDate", mock.Anything, "provider-1", testBookingDate).
			Return([]models.Booking{}, nil)
		deps.bookings.On("InsertBooking", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
			return b.SlotWidthMinutes == constvars.SlotWidthLabDefault && b.Kind == constvars.BookingKindLabExam
		})).Return("booking-2", nil)
		deps.redis.On("AddToSet", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		deps.calendar.On("InvalidateCalendar", mock.Anything, "provider-1", "2026-03").Return(nil)
		deps.mailer.On("SendEmail", mock.Anything, mock.Anything).Return(nil)

		response, err := deps.usecase.CreateBooking(context.Background(), &requests.CreateBooking{
			SessionData: "token",
			Kind:        constvars.BookingKindLabExam,
			ProviderID:  "provider-1",
			Date:        testBookingDate,
			SlotTime:    "08:30 AM",
			LabTestCode: "CBC",
		})

		assert.NoError(t, err)
		assert.Equal(t, constvars.SlotWidthLabDefault, response.SlotWidthMinutes)
		assert.Equal(t, "CBC", response.LabTestCode)
	})

	t.Run("rejects a slot the provider never offers", func(t *testing.T) {
		deps := newBookingTestDeps()

		deps.session.On("ParseSessionData", mock.Anything, "token").Return(testSession(), nil)
		deps.provider.On("FindProviderByID", mock.Anything, "provider-1").Return(testProvider(), nil)
		deps.bookings.On("FindActiveBookingsByProviderAndDate", mock.Anything, "provider-1", testBookingDate).
			Return([]models.Booking{}, nil)

		_, err := deps.usecase.CreateBooking(context.Background(), &requests.CreateBooking{
			SessionData: "token",
			Kind:        constvars.BookingKindConsultation,
			ProviderID:  "provider-1",
			Date:        testBookingDate,
			SlotTime:    "10:00 AM",
		})

		assertCustomErrorStatus(t, err, constvars.StatusUnprocessableEntity)
		deps.bookings.AssertNotCalled(t, "InsertBooking", mock.Anything, mock.Anything)
	})

	t.Run("rejects an already taken slot before inserting", func(t *testing.T) {
		deps := newBookingTestDeps()

		deps.session.On("ParseSessionData", mock.Anything, "token").Return(testSession(), nil)
		deps.provider.On("FindProviderByID", mock.Anything, "provider-1").Return(testProvider(), nil)
		deps.bookings.On("FindActiveBookingsByProviderAndDate", mock.Anything, "provider-1", testBookingDate).
			Return([]models.Booking{{ID: "existing-1", SlotTime: "08:20 AM", Active: true}}, nil)

		_, err := deps.usecase.CreateBooking(context.Background(), &requests.CreateBooking{
			SessionData: "token",
			Kind:        constvars.BookingKindConsultation,
			ProviderID:  "provider-1",
			Date:        testBookingDate,
			SlotTime:    "08:20 AM",
		})

		assertCustomErrorStatus(t, err, constvars.StatusConflict)
		deps.bookings.AssertNotCalled(t, "InsertBooking", mock.Anything, mock.Anything)
	})

	t.Run("propagates the conflict when the insert loses the race", func(t *testing.T) {
		deps := newBookingTestDeps()

		deps.session.On("ParseSessionData", mock.Anything, "token").Return(testSession(), nil)
		deps.provider.On("FindProviderByID", mock.Anything, "provider-1").Return(testProvider(), nil)
		deps.bookings.On("FindActiveBookingsByProviderAndDate", mock.Anything, "provider-1", testBookingDate).
			Return([]models.Booking{}, nil)
		deps.bookings.On("InsertBooking", mock.Anything, mock.Anything).
			Return("", exceptions.ErrBookingSlotTaken(nil))

		_, err := deps.usecase.CreateBooking(context.Background(), &requests.CreateBooking{
			SessionData: "token",
			Kind:        constvars.BookingKindConsultation,
			ProviderID:  "provider-1",
			Date:        testBookingDate,
			SlotTime:    "08:20 AM",
		})

		assertCustomErrorStatus(t, err, constvars.StatusConflict)
	})

	t.Run("unknown provider", func(t *testing.T) {
		deps := newBookingTestDeps()

		deps.session.On("ParseSessionData", mock.Anything, "token").Return(testSession(), nil)
		deps.provider.On("FindProviderByID", mock.Anything, "missing").Return(nil, nil)

		_, err := deps.usecase.CreateBooking(context.Background(), &requests.CreateBooking{
			SessionData: "token",
			Kind:        constvars.BookingKindConsultation,
			ProviderID:  "missing",
			Date:        testBookingDate,
			SlotTime:    "08:20 AM",
		})

		assertCustomErrorStatus(t, err, constvars.StatusNotFound)
	})
}

func TestBookingUsecase_CancelBooking(t *testing.T) {
	existingBooking := func() *models.Booking {
		return &models.Booking{
			ID:               "booking-1",
			Kind:             constvars.BookingKindConsultation,
			PatientID:        "patient-1",
			ProviderID:       "provider-1",
			Date:             testBookingDate,
			SlotTime:         "08:20 AM",
			SlotWidthMinutes: constvars.SlotWidthConsultation,
			Status:           constvars.BookingStatusConfirmed,
			Active:           true,
		}
	}

	t.Run("cancels an owned booking and frees the slot", func(t *testing.T) {
		deps := newBookingTestDeps()

		deps.session.On("ParseSessionData", mock.Anything, "token").Return(testSession(), nil)
		deps.bookings.On("FindBookingByID", mock.Anything, "booking-1").Return(existingBooking(), nil)
		deps.bookings.On("CancelBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)
		deps.redis.On("RemoveFromSet", mock.Anything, "bookedslots:provider-1:2026-03-02", mock.Anything).Return(nil)
		deps.calendar.On("InvalidateCalendar", mock.Anything, "provider-1", "2026-03").Return(nil)
		deps.provider.On("FindProviderByID", mock.Anything, "provider-1").Return(testProvider(), nil)
		deps.mailer.On("SendEmail", mock.Anything, mock.Anything).Return(nil)

		response, err := deps.usecase.CancelBooking(context.Background(), &requests.CancelBooking{
			SessionData: "token",
			BookingID:   "booking-1",
		})

		assert.NoError(t, err)
		assert.Equal(t, constvars.BookingStatusCancelled, response.Status)
		deps.redis.AssertExpectations(t)
		deps.calendar.AssertExpectations(t)
	})

	t.Run("refuses to cancel another patient's booking", func(t *testing.T) {
		deps := newBookingTestDeps()

		otherSession := testSession()
		otherSession.PatientID = "patient-2"
		deps.session.On("ParseSessionData", mock.Anything, "token").Return(otherSession, nil)
		deps.bookings.On("FindBookingByID", mock.Anything, "booking-1").Return(existingBooking(), nil)

		_, err := deps.usecase.CancelBooking(context.Background(), &requests.CancelBooking{
			SessionData: "token",
			BookingID:   "booking-1",
		})

		assertCustomErrorStatus(t, err, constvars.StatusForbidden)
		deps.bookings.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything)
	})

	t.Run("missing booking", func(t *testing.T) {
		deps := newBookingTestDeps()

		deps.session.On("ParseSessionData", mock.Anything, "token").Return(testSession(), nil)
		deps.bookings.On("FindBookingByID", mock.Anything, "missing").Return(nil, nil)

		_, err := deps.usecase.CancelBooking(context.Background(), &requests.CancelBooking{
			SessionData: "token",
			BookingID:   "missing",
		})

		assertCustomErrorStatus(t, err, constvars.StatusNotFound)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		deps := newBookingTestDeps()

		cancelled := existingBooking()
		cancelled.Status = constvars.BookingStatusCancelled
		cancelled.Active = false
		deps.session.On("ParseSessionData", mock.Anything, "token").Return(testSession(), nil)
		deps.bookings.On("FindBookingByID", mock.Anything, "booking-1").Return(cancelled, nil)

		response, err := deps.usecase.CancelBooking(context.Background(), &requests.CancelBooking{
			SessionData: "token",
			BookingID:   "booking-1",
		})

		assert.NoError(t, err)
		assert.Equal(t, constvars.BookingStatusCancelled, response.Status)
		deps.bookings.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything)
	})
}
