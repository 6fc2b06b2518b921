package clinics

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/constvars"
	"cardioflow-service/internal/pkg/exceptions"
	"context"
)

type clinicUsecase struct {
	ClinicRepository ClinicRepository
	MembershipFinder MembershipFinder
}

func NewClinicUsecase(clinicRepository ClinicRepository, membershipFinder MembershipFinder) ClinicUsecase {
	return &clinicUsecase{
		ClinicRepository: clinicRepository,
		MembershipFinder: membershipFinder,
	}
}

// FindAllForCaller returns every clinic for a super admin, otherwise the
// clinics the caller holds an active membership in.
func (uc *clinicUsecase) FindAllForCaller(ctx context.Context, callerSession *models.Session) ([]models.Clinic, error) {
	if callerSession.Role == constvars.RoleSuperAdmin {
		return uc.ClinicRepository.FindAll(ctx)
	}
	return uc.ClinicRepository.FindAllByProfileID(ctx, callerSession.ProfileID)
}

func (uc *clinicUsecase) FindByID(ctx context.Context, callerSession *models.Session, clinicID string) (*models.Clinic, error) {
	if err := uc.authorizeClinicMember(ctx, callerSession, clinicID); err != nil {
		return nil, err
	}

	clinic, err := uc.ClinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrClinicNotFound(nil)
	}
	return clinic, nil
}

func (uc *clinicUsecase) authorizeClinicMember(ctx context.Context, callerSession *models.Session, clinicID string) error {
	if callerSession == nil {
		return exceptions.ErrNotAuthorized(nil)
	}
	if callerSession.Role == constvars.RoleSuperAdmin {
		return nil
	}

	membership, err := uc.MembershipFinder.FindMembership(ctx, callerSession.ProfileID, clinicID)
	if err != nil {
		return err
	}
	if membership == nil || !membership.Active {
		return exceptions.ErrNotAuthorized(nil)
	}
	return nil
}
