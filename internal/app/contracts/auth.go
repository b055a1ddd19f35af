package contracts

import (
	"context"

	"clinicport-service/internal/pkg/dto/requests"
	"clinicport-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Register, error)
	LoginPatient(ctx context.Context, request *requests.LoginPatient) (*responses.Login, error)
	LogoutPatient(ctx context.Context, sessionData string) error
	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error
}
