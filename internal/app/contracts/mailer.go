package contracts

import (
	"context"

	"clinicport-service/internal/pkg/dto/requests"
)

type MailerService interface {
	SendEmail(ctx context.Context, payload *requests.EmailPayload) error
}
