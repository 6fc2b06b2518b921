package reports

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/dto/responses"
	"context"
)

type ReportRepository interface {
	CreateReport(ctx context.Context, report *models.Report) (reportID string, err error)
	FindByID(ctx context.Context, reportID, clinicID string) (*models.Report, error)
	FindAllByPatient(ctx context.Context, clinicID, patientID string) ([]models.Report, error)
}

type ReportUsecase interface {
	CreateReport(ctx context.Context, callerSession *models.Session, clinicID string, request *requests.CreateReport) (*responses.Report, error)
	FindByID(ctx context.Context, callerSession *models.Session, clinicID, reportID string) (*responses.Report, error)
	FindAllByPatient(ctx context.Context, callerSession *models.Session, clinicID, patientID string) ([]responses.Report, error)
}
