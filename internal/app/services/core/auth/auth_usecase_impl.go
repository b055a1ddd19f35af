package auth

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
	"clinicport-service/internal/pkg/dto/requests"
	"clinicport-service/internal/pkg/dto/responses"
	"clinicport-service/internal/pkg/exceptions"
	"clinicport-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	SessionService    contracts.SessionService
	PatientRepository contracts.PatientRepository
	RedisRepository   contracts.RedisRepository
	MailerService     contracts.MailerService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewAuthUsecase(
	sessionService contracts.SessionService,
	patientRepository contracts.PatientRepository,
	redisRepository contracts.RedisRepository,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		instance := &authUsecase{
			SessionService:    sessionService,
			PatientRepository: patientRepository,
			RedisRepository:   redisRepository,
			MailerService:     mailerService,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
		authUsecaseInstance = instance
	})
	return authUsecaseInstance
}

func (uc *authUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Register, error) {
	if request.Password != request.RetypePassword {
		return nil, exceptions.ErrPasswordDoNotMatch(nil)
	}

	email := utils.SanitizeEmail(request.Email)
	existing, err := uc.PatientRepository.FindPatientByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	patient := &models.Patient{
		FullName: utils.SanitizeName(request.FullName),
		Email:    email,
		Password: string(hashedPassword),
	}
	patient.SetCreatedAtUpdatedAt()

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}

	payload := utils.BuildWelcomeEmailPayload(uc.InternalConfig.Mailer.EmailSender, email, patient.FullName)
	if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
		uc.Log.Warn("authUsecase.RegisterPatient failed to enqueue welcome email",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	}

	uc.Log.Info("authUsecase.RegisterPatient succeeded",
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return &responses.Register{PatientID: patientID}, nil
}

func (uc *authUsecase) LoginPatient(ctx context.Context, request *requests.LoginPatient) (*responses.Login, error) {
	email := utils.SanitizeEmail(request.Email)
	patient, err := uc.PatientRepository.FindPatientByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(request.Password)); err != nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(err)
	}

	token, err := uc.SessionService.CreateSession(ctx, &models.Session{
		PatientID: patient.ID,
		Email:     patient.Email,
		FullName:  patient.FullName,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.LoginPatient succeeded",
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return &responses.Login{Token: token}, nil
}

func (uc *authUsecase) LogoutPatient(ctx context.Context, sessionData string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

// ForgotPassword always succeeds from the caller's point of view so the
// endpoint cannot be used to probe which emails are registered.
func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	email := utils.SanitizeEmail(request.Email)
	patient, err := uc.PatientRepository.FindPatientByEmail(ctx, email)
	if err != nil {
		return err
	}
	if patient == nil {
		return nil
	}

	resetToken := uuid.NewString()
	expiry := time.Duration(uc.InternalConfig.App.ForgotPasswordTokenExpiredTimeInMinutes) * time.Minute
	key := fmt.Sprintf(constvars.RedisKeyResetPasswordFormat, resetToken)
	if err := uc.RedisRepository.Set(ctx, key, patient.ID, expiry); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s?token=%s", uc.InternalConfig.App.ResetPasswordUrl, resetToken)
	expiryTime := time.Now().Add(expiry).Format(time.RFC1123)
	payload := utils.BuildForgotPasswordEmailPayload(uc.InternalConfig.Mailer.EmailSender, email, resetLink, patient.FullName, expiryTime)
	if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
		return err
	}

	uc.Log.Info("authUsecase.ForgotPassword reset link enqueued",
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return nil
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	if request.NewPassword != request.NewPasswordConfirmation {
		return exceptions.ErrPasswordDoNotMatch(nil)
	}

	key := fmt.Sprintf(constvars.RedisKeyResetPasswordFormat, request.Token)
	raw, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		return err
	}
	if raw == "" {
		return exceptions.ErrTokenResetPasswordExpired(errors.New(constvars.ErrDevAuthTokenExpired))
	}

	var patientID string
	if err := utils.UnmarshalJSONString(raw, &patientID); err != nil {
		return exceptions.ErrTokenResetPasswordExpired(err)
	}

	patient, err := uc.PatientRepository.FindPatientByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrTokenResetPasswordExpired(errors.New(constvars.ErrDevAuthTokenExpired))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	patient.Password = string(hashedPassword)
	patient.SetUpdatedAt()
	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return err
	}

	// token is single use
	if err := uc.RedisRepository.Delete(ctx, key); err != nil {
		uc.Log.Warn("authUsecase.ResetPassword failed to delete used token",
			zap.Error(err),
		)
	}

	uc.Log.Info("authUsecase.ResetPassword succeeded",
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return nil
}
