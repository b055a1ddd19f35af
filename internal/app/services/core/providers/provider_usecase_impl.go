package providers

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

	"go.uber.org/zap"
)

// calendarCacheTTL bounds staleness of warmed calendars between worker runs.
const calendarCacheTTL = 15 * time.Minute

var weekdayByName = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var (
	providerUsecaseInstance contracts.ProviderUsecase
	onceProviderUsecase     sync.Once
)

type providerUsecase struct {
	ProviderRepository contracts.ProviderRepository
	BookingRepository  contracts.BookingRepository
	RedisRepository    contracts.RedisRepository
	CalendarCache      contracts.CalendarCache
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewProviderUsecase(
	providerRepository contracts.ProviderRepository,
	bookingRepository contracts.BookingRepository,
	redisRepository contracts.RedisRepository,
	calendarCache contracts.CalendarCache,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ProviderUsecase {
	onceProviderUsecase.Do(func() {
		instance := &providerUsecase{
			ProviderRepository: providerRepository,
			BookingRepository:  bookingRepository,
			RedisRepository:    redisRepository,
			CalendarCache:      calendarCache,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
		providerUsecaseInstance = instance
	})
	return providerUsecaseInstance
}

func (uc *providerUsecase) ListProviders(ctx context.Context, page, pageSize int) ([]responses.Provider, int64, error) {
	providers, total, err := uc.ProviderRepository.FindAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Provider, 0, len(providers))
	for _, provider := range providers {
		result = append(result, provider.ConvertIntoResponse())
	}
	return result, total, nil
}

func (uc *providerUsecase) GetProvider(ctx context.Context, providerID string) (*responses.Provider, error) {
	provider, err := uc.findProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	response := provider.ConvertIntoResponse()
	return &response, nil
}

func (uc *providerUsecase) PutWeeklySchedule(ctx context.Context, request *requests.PutWeeklySchedule) error {
	provider, err := uc.findProvider(ctx, request.ProviderID)
	if err != nil {
		return err
	}

	schedule := provider.WeeklySchedule
	for name, plan := range request.Days {
		weekday, ok := weekdayByName[name]
		if !ok {
			return exceptions.ErrScheduleInvalidWeekday(fmt.Errorf("unknown weekday %q", name))
		}
		ranges, err := mapTimeRanges(plan.TimeRanges)
		if err != nil {
			return err
		}
		schedule.SetWeekday(weekday, availability.DayPlan{Enabled: plan.Enabled, Ranges: ranges})
	}

	if err := uc.ProviderRepository.UpdateWeeklySchedule(ctx, provider.ID, schedule); err != nil {
		return err
	}

	uc.invalidateWindowCalendars(ctx, provider.ID)
	uc.Log.Info("providerUsecase.PutWeeklySchedule succeeded",
		zap.String(constvars.LoggingProviderIDKey, provider.ID),
	)
	return nil
}

func (uc *providerUsecase) PutDateOverride(ctx context.Context, request *requests.PutDateOverride) error {
	provider, err := uc.findProvider(ctx, request.ProviderID)
	if err != nil {
		return err
	}

	date, err := time.Parse(constvars.DateLayoutISO, request.Date)
	if err != nil {
		return exceptions.ErrCannotParseDate(err)
	}

	ranges, err := mapTimeRanges(request.TimeRanges)
	if err != nil {
		return err
	}

	override := availability.DateOverride{Ranges: ranges}
	if err := uc.ProviderRepository.SetDateOverride(ctx, provider.ID, request.Date, override); err != nil {
		return err
	}

	uc.CalendarCache.InvalidateCalendar(ctx, provider.ID, date.Format(constvars.MonthLayoutISO))
	uc.Log.Info("providerUsecase.PutDateOverride succeeded",
		zap.String(constvars.LoggingProviderIDKey, provider.ID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)
	return nil
}

func (uc *providerUsecase) DeleteDateOverride(ctx context.Context, request *requests.DeleteDateOverride) error {
	provider, err := uc.findProvider(ctx, request.ProviderID)
	if err != nil {
		return err
	}

	date, err := time.Parse(constvars.DateLayoutISO, request.Date)
	if err != nil {
		return exceptions.ErrCannotParseDate(err)
	}

	if err := uc.ProviderRepository.UnsetDateOverride(ctx, provider.ID, request.Date); err != nil {
		return err
	}

	uc.CalendarCache.InvalidateCalendar(ctx, provider.ID, date.Format(constvars.MonthLayoutISO))
	return nil
}

func (uc *providerUsecase) ListSlots(ctx context.Context, request *requests.ListSlots) (*responses.SlotList, error) {
	provider, err := uc.findProvider(ctx, request.ProviderID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(constvars.DateLayoutISO, request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	booked, err := uc.bookedSetForDate(ctx, provider.ID, request.Date)
	if err != nil {
		return nil, err
	}

	slots := availability.SlotsForDate(date, provider.WeeklySchedule, provider.DateOverrides, request.WidthMinutes)
	slotResponses := make([]responses.Slot, 0, len(slots))
	for _, slot := range slots {
		_, taken := booked[slot.Display]
		slotResponses = append(slotResponses, responses.Slot{Time: slot.Display, Booked: taken})
	}

	return &responses.SlotList{
		ProviderID:   provider.ID,
		Date:         request.Date,
		WidthMinutes: request.WidthMinutes,
		Slots:        slotResponses,
	}, nil
}

func (uc *providerUsecase) GetCalendar(ctx context.Context, request *requests.GetCalendar) (*responses.Calendar, error) {
	provider, err := uc.findProvider(ctx, request.ProviderID)
	if err != nil {
		return nil, err
	}

	monthStart, err := time.Parse(constvars.MonthLayoutISO, request.Month)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	// only the default consultation width is cache-backed; other widths are
	// computed per request
	useCache := request.WidthMinutes == constvars.SlotWidthConsultation
	if useCache {
		cached, err := uc.CalendarCache.GetCalendar(ctx, provider.ID, request.Month)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	calendar, err := uc.buildCalendar(ctx, provider, monthStart, request.WidthMinutes)
	if err != nil {
		return nil, err
	}

	if useCache {
		if err := uc.CalendarCache.SetCalendar(ctx, provider.ID, request.Month, calendar, calendarCacheTTL); err != nil {
			uc.Log.Warn("providerUsecase.GetCalendar failed to cache calendar",
				zap.String(constvars.LoggingProviderIDKey, provider.ID),
				zap.Error(err),
			)
		}
	}
	return calendar, nil
}

func (uc *providerUsecase) buildCalendar(ctx context.Context, provider *models.Provider, monthStart time.Time, widthMinutes int) (*responses.Calendar, error) {
	month := monthStart.Format(constvars.MonthLayoutISO)
	bookings, err := uc.BookingRepository.FindActiveBookingsByProviderAndMonth(ctx, provider.ID, month)
	if err != nil {
		return nil, err
	}

	bookedByDate := make(map[string]map[string]struct{})
	for _, booking := range bookings {
		if bookedByDate[booking.Date] == nil {
			bookedByDate[booking.Date] = make(map[string]struct{})
		}
		bookedByDate[booking.Date][booking.SlotTime] = struct{}{}
	}

	var days []responses.CalendarDay
	for date := monthStart; date.Month() == monthStart.Month(); date = date.AddDate(0, 0, 1) {
		dateKey := date.Format(constvars.DateLayoutISO)
		state := availability.StateForDate(date, provider.WeeklySchedule, provider.DateOverrides, widthMinutes, bookedByDate[dateKey])
		days = append(days, responses.CalendarDay{Date: dateKey, State: string(state)})
	}

	return &responses.Calendar{
		ProviderID: provider.ID,
		Month:      month,
		Days:       days,
	}, nil
}

func (uc *providerUsecase) findProvider(ctx context.Context, providerID string) (*models.Provider, error) {
	provider, err := uc.ProviderRepository.FindProviderByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrProviderNotFound(nil)
	}
	return provider, nil
}

// bookedSetForDate prefers the redis set maintained by the booking flow and
// falls back to the booking store when the set is cold.
func (uc *providerUsecase) bookedSetForDate(ctx context.Context, providerID, date string) (map[string]struct{}, error) {
	key := fmt.Sprintf(constvars.RedisKeyBookedSlotsFormat, providerID, date)
	members, err := uc.RedisRepository.GetSetMembers(ctx, key)
	if err == nil && len(members) > 0 {
		booked := make(map[string]struct{}, len(members))
		for _, member := range members {
			booked[member] = struct{}{}
		}
		return booked, nil
	}

	bookings, err := uc.BookingRepository.FindActiveBookingsByProviderAndDate(ctx, providerID, date)
	if err != nil {
		return nil, err
	}
	booked := make(map[string]struct{}, len(bookings))
	for _, booking := range bookings {
		booked[booking.SlotTime] = struct{}{}
	}
	return booked, nil
}

func (uc *providerUsecase) invalidateWindowCalendars(ctx context.Context, providerID string) {
	now := time.Now()
	windowEnd := now.AddDate(0, 0, uc.InternalConfig.App.CalendarWindowDays)
	for month := firstOfMonth(now); !month.After(windowEnd); month = month.AddDate(0, 1, 0) {
		uc.CalendarCache.InvalidateCalendar(ctx, providerID, month.Format(constvars.MonthLayoutISO))
	}
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func mapTimeRanges(inputs []requests.TimeRangeInput) ([]availability.TimeRange, error) {
	ranges := make([]availability.TimeRange, 0, len(inputs))
	for _, input := range inputs {
		start, ok := availability.ParseClock(input.Start)
		if !ok {
			return nil, exceptions.ErrScheduleInvalidRange(fmt.Errorf("cannot parse start %q", input.Start))
		}
		end, ok := availability.ParseClock(input.End)
		if !ok {
			return nil, exceptions.ErrScheduleInvalidRange(fmt.Errorf("cannot parse end %q", input.End))
		}
		timeRange := availability.TimeRange{Start: start, End: end}
		if !timeRange.Valid() {
			return nil, exceptions.ErrScheduleInvalidRange(fmt.Errorf("start %q is not before end %q", input.Start, input.End))
		}
		ranges = append(ranges, timeRange)
	}
	return ranges, nil
}
