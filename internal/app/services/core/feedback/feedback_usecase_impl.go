package feedback

import (
	"context"
	"sync"

	"clinicport-service/internal/app/contracts"
	"clinicport-service/internal/app/models"
	"clinicport-service/internal/pkg/constvars"
	"clinicport-service/internal/pkg/dto/requests"
	"clinicport-service/internal/pkg/dto/responses"
	"clinicport-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	feedbackUsecaseInstance contracts.FeedbackUsecase
	onceFeedbackUsecase     sync.Once
)

type feedbackUsecase struct {
	SessionService     contracts.SessionService
	FeedbackRepository contracts.FeedbackRepository
	Log                *zap.Logger
}

func NewFeedbackUsecase(
	sessionService contracts.SessionService,
	feedbackRepository contracts.FeedbackRepository,
	logger *zap.Logger,
) contracts.FeedbackUsecase {
	onceFeedbackUsecase.Do(func() {
		instance := &feedbackUsecase{
			SessionService:     sessionService,
			FeedbackRepository: feedbackRepository,
			Log:                logger,
		}
		feedbackUsecaseInstance = instance
	})
	return feedbackUsecaseInstance
}

func (uc *feedbackUsecase) CreateFeedback(ctx context.Context, request *requests.CreateFeedback) (*responses.Feedback, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	feedback := &models.Feedback{
		PatientID: session.PatientID,
		Subject:   utils.SanitizeName(request.Subject),
		Message:   request.Message,
		Rating:    request.Rating,
	}
	feedback.SetCreatedAtUpdatedAt()

	feedbackID, err := uc.FeedbackRepository.InsertFeedback(ctx, feedback)
	if err != nil {
		return nil, err
	}
	feedback.ID = feedbackID

	uc.Log.Info("feedbackUsecase.CreateFeedback succeeded",
		zap.String(constvars.LoggingPatientIDKey, session.PatientID),
	)

	response := feedback.ConvertIntoResponse()
	return &response, nil
}

func (uc *feedbackUsecase) ListFeedback(ctx context.Context, request *requests.ListFeedback) ([]responses.Feedback, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	feedbacks, err := uc.FeedbackRepository.FindFeedbackByPatientID(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Feedback, 0, len(feedbacks))
	for _, feedback := range feedbacks {
		result = append(result, feedback.ConvertIntoResponse())
	}
	return result, nil
}
