package contracts

import (
	"context"

	"clinicport-service/internal/app/models"
)

type SessionService interface {
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	GetSessionData(ctx context.Context, sessionID string) (sessionData string, err error)
	CreateSession(ctx context.Context, session *models.Session) (token string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
}
