package contracts

import (
	"context"
	"mime/multipart"

	"clinicport-service/internal/app/models"
	"clinicport-service/internal/pkg/dto/requests"
	"clinicport-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	GetProfile(ctx context.Context, sessionData string) (*responses.PatientProfile, error)
	UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.PatientProfile, error)
	UploadProfilePicture(ctx context.Context, sessionData string, fileHeader *multipart.FileHeader) (*responses.PatientProfile, error)
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindPatientByEmail(ctx context.Context, email string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
}
