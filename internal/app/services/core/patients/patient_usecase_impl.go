package patients

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"clinicport-service/internal/app/config"
	"clinicport-service/internal/app/contracts"
	"clinicport-service/internal/pkg/constvars"
	"clinicport-service/internal/pkg/dto/requests"
	"clinicport-service/internal/pkg/dto/responses"
	"clinicport-service/internal/pkg/exceptions"
	"clinicport-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

type patientUsecase struct {
	SessionService    contracts.SessionService
	PatientRepository contracts.PatientRepository
	Storage           contracts.Storage
	InternalConfig    *config.InternalConfig
	DriverConfig      *config.DriverConfig
	Log               *zap.Logger
}

func NewPatientUsecase(
	sessionService contracts.SessionService,
	patientRepository contracts.PatientRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		instance := &patientUsecase{
			SessionService:    sessionService,
			PatientRepository: patientRepository,
			Storage:           storage,
			InternalConfig:    internalConfig,
			DriverConfig:      driverConfig,
			Log:               logger,
		}
		patientUsecaseInstance = instance
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) GetProfile(ctx context.Context, sessionData string) (*responses.PatientProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindPatientByID(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(errors.New(constvars.ErrDevAuthInvalidSession))
	}

	response := patient.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.PatientProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindPatientByID(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(errors.New(constvars.ErrDevAuthInvalidSession))
	}

	if request.FullName != "" {
		patient.FullName = utils.SanitizeName(request.FullName)
	}
	if request.Phone != "" {
		patient.Phone = strings.TrimSpace(request.Phone)
	}
	patient.SetUpdatedAt()

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)

	response := patient.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) UploadProfilePicture(ctx context.Context, sessionData string, fileHeader *multipart.FileHeader) (*responses.PatientProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	maxBytes := uc.InternalConfig.Minio.ProfilePictureMaxUploadSizeInMB * 1024 * 1024
	if fileHeader.Size > maxBytes {
		return nil, exceptions.ErrImageTooLarge(fmt.Errorf("file size %d exceeds %d bytes", fileHeader.Size, maxBytes))
	}

	extension := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if extension != ".jpg" && extension != ".jpeg" && extension != ".png" {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("unsupported profile picture extension %s", extension))
	}

	patient, err := uc.PatientRepository.FindPatientByID(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(errors.New(constvars.ErrDevAuthInvalidSession))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()

	fileHeader.Filename = utils.GenerateFileName("profile", patient.ID, extension)
	bucketName := uc.DriverConfig.Minio.BucketName
	objectName, err := uc.Storage.UploadFile(ctx, file, fileHeader, bucketName)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInHours) * time.Hour
	objectURL, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	patient.ProfilePictureURL = objectURL
	patient.SetUpdatedAt()
	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}

	response := patient.ConvertIntoResponse()
	return &response, nil
}
