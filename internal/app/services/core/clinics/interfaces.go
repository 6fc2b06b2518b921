package clinics

import (
	"cardioflow-service/internal/app/models"
	"context"
)

type ClinicRepository interface {
	CreateClinic(ctx context.Context, clinic *models.Clinic) (clinicID string, err error)
	DeleteClinic(ctx context.Context, clinicID string) error
	FindByID(ctx context.Context, clinicID string) (*models.Clinic, error)
	FindAllByProfileID(ctx context.Context, profileID string) ([]models.Clinic, error)
	FindAll(ctx context.Context) ([]models.Clinic, error)
}

// MembershipFinder resolves the caller's membership in a clinic. The staff
// repository satisfies it.
type MembershipFinder interface {
	FindMembership(ctx context.Context, profileID, clinicID string) (*models.ClinicStaff, error)
}

type ClinicUsecase interface {
	FindAllForCaller(ctx context.Context, callerSession *models.Session) ([]models.Clinic, error)
	FindByID(ctx context.Context, callerSession *models.Session, clinicID string) (*models.Clinic, error)
}
