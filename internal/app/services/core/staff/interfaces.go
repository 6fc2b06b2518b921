package staff

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/dto/responses"
	"context"
)

type ClinicStaffRepository interface {
	CreateMembership(ctx context.Context, membership *models.ClinicStaff) (membershipID string, err error)
	FindMembership(ctx context.Context, profileID, clinicID string) (*models.ClinicStaff, error)
	ReactivateMembership(ctx context.Context, membershipID, role, title, bio string, isAdmin bool) error
	DeactivateMembership(ctx context.Context, profileID, clinicID string) error
	FindActiveStaffByClinic(ctx context.Context, clinicID string) ([]responses.StaffMember, error)
}

type StaffUsecase interface {
	AssociateStaff(ctx context.Context, callerSession *models.Session, request *requests.AssociateStaff) (*responses.AssociateStaff, error)
	FindActiveStaffByClinic(ctx context.Context, callerSession *models.Session, clinicID string) ([]responses.StaffMember, error)
	DeactivateStaff(ctx context.Context, callerSession *models.Session, clinicID, profileID string) error
}
