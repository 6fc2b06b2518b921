package billing

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/dto/responses"
	"context"
)

type TussCodeRepository interface {
	CreateTussCode(ctx context.Context, tussCode *models.TussCode) (tussCodeID string, err error)
	FindActiveByClinic(ctx context.Context, clinicID string) ([]models.TussCode, error)
	DeactivateTussCode(ctx context.Context, tussCodeID, clinicID string) error
}

type BillingUsecase interface {
	CreateTussCode(ctx context.Context, callerSession *models.Session, clinicID string, request *requests.CreateTussCode) (*responses.TussCode, error)
	FindActiveByClinic(ctx context.Context, callerSession *models.Session, clinicID string) ([]responses.TussCode, error)
	DeactivateTussCode(ctx context.Context, callerSession *models.Session, clinicID, tussCodeID string) error
}
