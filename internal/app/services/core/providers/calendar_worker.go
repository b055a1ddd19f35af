package providers

import (
	"context"
	"time"

	"clinicport-service/internal/app/config"
	"clinicport-service/internal/app/contracts"
	"clinicport-service/internal/pkg/constvars"
	"clinicport-service/internal/pkg/dto/requests"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// workerPageSize bounds how many providers are loaded per warm pass page.
const workerPageSize = 50

// CalendarWorker periodically warms the calendar cache for every provider so
// the booking UI reads month views from redis instead of recomputing them.
type CalendarWorker struct {
	log             *zap.Logger
	cfg             *config.InternalConfig
	locker          contracts.LockerService
	providerRepo    contracts.ProviderRepository
	providerUsecase contracts.ProviderUsecase
	cron            *cron.Cron
	runCtx          context.Context
	cancel          context.CancelFunc
}

func NewCalendarWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	providerRepo contracts.ProviderRepository,
	providerUsecase contracts.ProviderUsecase,
) *CalendarWorker {
	return &CalendarWorker{
		log:             log,
		cfg:             cfg,
		locker:          lockerSvc,
		providerRepo:    providerRepo,
		providerUsecase: providerUsecase,
	}
}

// Start begins the periodic loop using the configured cron spec.
func (w *CalendarWorker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.CalendarWorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("calendar.worker: failed to schedule with provided cron spec; falling back to @hourly", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@hourly", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight runs and waits for the cron to drain.
func (w *CalendarWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *CalendarWorker) runOnce(ctx context.Context) {
	ttl := 2 * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyCalendarLock, ttl)
	if err != nil {
		w.log.Warn("calendar.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		return
	}
	defer w.locker.Unlock(ctx, constvars.RedisKeyCalendarLock, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(ctx, constvars.RedisKeyCalendarLock, token, ttl); err != nil {
					w.log.Warn("calendar.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	months := w.monthsInWindow(time.Now())
	page := 1
	for {
		providers, total, err := w.providerRepo.FindAll(ctx, page, workerPageSize)
		if err != nil {
			w.log.Warn("calendar.worker: provider listing failed", zap.Error(err))
			return
		}
		for _, provider := range providers {
			for _, month := range months {
				_, err := w.providerUsecase.GetCalendar(ctx, &requests.GetCalendar{
					ProviderID:   provider.ID,
					Month:        month,
					WidthMinutes: constvars.SlotWidthConsultation,
				})
				if err != nil {
					w.log.Warn("calendar.worker: failed to warm calendar",
						zap.String(constvars.LoggingProviderIDKey, provider.ID),
						zap.Error(err),
					)
				}
			}
			if ctx.Err() != nil {
				return
			}
		}
		if int64(page*workerPageSize) >= total {
			return
		}
		page++
	}
}

func (w *CalendarWorker) monthsInWindow(now time.Time) []string {
	windowEnd := now.AddDate(0, 0, w.cfg.App.CalendarWindowDays)
	var months []string
	for month := firstOfMonth(now); !month.After(windowEnd); month = month.AddDate(0, 1, 0) {
		months = append(months, month.Format(constvars.MonthLayoutISO))
	}
	return months
}
