package providers

import (
	"context"
	"fmt"
	"time"

	"clinicport-service/internal/app/contracts"
	"clinicport-service/internal/pkg/constvars"
	"clinicport-service/internal/pkg/dto/responses"
	"clinicport-service/internal/pkg/utils"
)

type calendarRedisCache struct {
	RedisRepository contracts.RedisRepository
}

func NewCalendarRedisCache(redisRepository contracts.RedisRepository) contracts.CalendarCache {
	return &calendarRedisCache{RedisRepository: redisRepository}
}

func (c *calendarRedisCache) GetCalendar(ctx context.Context, providerID, month string) (*responses.Calendar, error) {
	key := fmt.Sprintf(constvars.RedisKeyCalendarFormat, providerID, month)
	raw, err := c.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	calendar := new(responses.Calendar)
	if err := utils.UnmarshalJSONString(raw, calendar); err != nil {
		return nil, nil
	}
	return calendar, nil
}

func (c *calendarRedisCache) SetCalendar(ctx context.Context, providerID, month string, calendar *responses.Calendar, exp time.Duration) error {
	key := fmt.Sprintf(constvars.RedisKeyCalendarFormat, providerID, month)
	return c.RedisRepository.Set(ctx, key, calendar, exp)
}

func (c *calendarRedisCache) InvalidateCalendar(ctx context.Context, providerID, month string) error {
	key := fmt.Sprintf(constvars.RedisKeyCalendarFormat, providerID, month)
	return c.RedisRepository.Delete(ctx, key)
}
