package contracts

import (
	"context"

	"clinicport-service/internal/app/models"
	"clinicport-service/internal/pkg/dto/requests"
	"clinicport-service/internal/pkg/dto/responses"
)

type FeedbackUsecase interface {
	CreateFeedback(ctx context.Context, request *requests.CreateFeedback) (*responses.Feedback, error)
	ListFeedback(ctx context.Context, request *requests.ListFeedback) ([]responses.Feedback, error)
}

type FeedbackRepository interface {
	InsertFeedback(ctx context.Context, feedback *models.Feedback) (string, error)
	FindFeedbackByPatientID(ctx context.Context, patientID string) ([]models.Feedback, error)
}
