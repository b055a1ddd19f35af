package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"clinicport-service/internal/app/config"
	"clinicport-service/internal/app/contracts"
	"clinicport-service/internal/app/models"
	"clinicport-service/internal/pkg/constvars"
	"clinicport-service/internal/pkg/exceptions"
	"clinicport-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SessionService {
	onceSessionService.Do(func() {
		sessionServiceInstance = &sessionService{
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return sessionServiceInstance
}

// CreateSession stores the session in redis keyed by a fresh session id and
// returns a signed JWT carrying that id.
func (s *sessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	session.SessionID = uuid.NewString()
	session.ExpiresAt = time.Now().Add(time.Duration(s.InternalConfig.JWT.ExpTimeInHour) * time.Hour)

	key := fmt.Sprintf(constvars.RedisKeySessionFormat, session.SessionID)
	err := s.RedisRepository.Set(ctx, key, session, time.Until(session.ExpiresAt))
	if err != nil {
		return "", err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, s.InternalConfig.JWT.Secret, s.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return token, nil
}

// ParseSessionData validates the bearer token and loads the session it names.
func (s *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	sessionID, err := utils.ParseJWT(sessionData, s.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	raw, err := s.GetSessionData(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(errors.New(constvars.ErrDevAuthInvalidSession))
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(raw), session); err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}
	return session, nil
}

func (s *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	return s.RedisRepository.Get(ctx, key)
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	return s.RedisRepository.Delete(ctx, key)
}
