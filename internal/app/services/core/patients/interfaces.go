package patients

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/dto/responses"
	"context"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (patientID string, err error)
	FindByID(ctx context.Context, patientID, clinicID string) (*models.Patient, error)
	FindAllByClinic(ctx context.Context, clinicID, search string, pagination *requests.Pagination) ([]models.Patient, error)
	CountByClinic(ctx context.Context, clinicID, search string) (int, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	DeletePatient(ctx context.Context, patientID, clinicID string) error
}

type PatientUsecase interface {
	CreatePatient(ctx context.Context, callerSession *models.Session, clinicID string, request *requests.CreatePatient) (*responses.Patient, error)
	FindByID(ctx context.Context, callerSession *models.Session, clinicID, patientID string) (*responses.Patient, error)
	FindAllByClinic(ctx context.Context, callerSession *models.Session, clinicID, search string, pagination *requests.Pagination) ([]responses.Patient, int, error)
	UpdatePatient(ctx context.Context, callerSession *models.Session, clinicID, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	DeletePatient(ctx context.Context, callerSession *models.Session, clinicID, patientID string) error
}
