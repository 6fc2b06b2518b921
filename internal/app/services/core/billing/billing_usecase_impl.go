package billing

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/app/services/core/staff"
	"cardioflow-service/internal/pkg/constvars"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/dto/responses"
	"cardioflow-service/internal/pkg/exceptions"
	"context"

	"go.uber.org/zap"
)

type billingUsecase struct {
	Log                   *zap.Logger
	TussCodeRepository    TussCodeRepository
	ClinicStaffRepository staff.ClinicStaffRepository
}

func NewBillingUsecase(
	logger *zap.Logger,
	tussCodeRepository TussCodeRepository,
	clinicStaffRepository staff.ClinicStaffRepository,
) BillingUsecase {
	return &billingUsecase{
		Log:                   logger,
		TussCodeRepository:    tussCodeRepository,
		ClinicStaffRepository: clinicStaffRepository,
	}
}

func (uc *billingUsecase) CreateTussCode(ctx context.Context, callerSession *models.Session, clinicID string, request *requests.CreateTussCode) (*responses.TussCode, error) {
	if err := uc.authorizeClinicAdmin(ctx, callerSession, clinicID); err != nil {
		return nil, err
	}

	tussCode := &models.TussCode{
		ClinicID:          clinicID,
		Code:              request.Code,
		Description:       request.Description,
		InsuranceProvider: request.InsuranceProvider,
		Price:             request.Price,
		Active:            true,
	}

	tussCodeID, err := uc.TussCodeRepository.CreateTussCode(ctx, tussCode)
	if err != nil {
		return nil, err
	}
	tussCode.ID = tussCodeID

	return buildTussCodeResponse(tussCode), nil
}

func (uc *billingUsecase) FindActiveByClinic(ctx context.Context, callerSession *models.Session, clinicID string) ([]responses.TussCode, error) {
	if err := uc.authorizeClinicMember(ctx, callerSession, clinicID); err != nil {
		return nil, err
	}

	tussCodes, err := uc.TussCodeRepository.FindActiveByClinic(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.TussCode, len(tussCodes))
	for i := range tussCodes {
		result[i] = *buildTussCodeResponse(&tussCodes[i])
	}

	return result, nil
}

func (uc *billingUsecase) DeactivateTussCode(ctx context.Context, callerSession *models.Session, clinicID, tussCodeID string) error {
	if err := uc.authorizeClinicAdmin(ctx, callerSession, clinicID); err != nil {
		return err
	}
	return uc.TussCodeRepository.DeactivateTussCode(ctx, tussCodeID, clinicID)
}

func (uc *billingUsecase) authorizeClinicAdmin(ctx context.Context, callerSession *models.Session, clinicID string) error {
	if callerSession == nil {
		return exceptions.ErrNotAuthorized(nil)
	}
	if callerSession.Role == constvars.RoleSuperAdmin {
		return nil
	}

	membership, err := uc.ClinicStaffRepository.FindMembership(ctx, callerSession.ProfileID, clinicID)
	if err != nil {
		return err
	}
	if membership == nil || !membership.Active || !membership.IsAdmin {
		return exceptions.ErrNotClinicAdmin(nil)
	}
	return nil
}

func (uc *billingUsecase) authorizeClinicMember(ctx context.Context, callerSession *models.Session, clinicID string) error {
	if callerSession == nil {
		return exceptions.ErrNotAuthorized(nil)
	}
	if callerSession.Role == constvars.RoleSuperAdmin {
		return nil
	}

	membership, err := uc.ClinicStaffRepository.FindMembership(ctx, callerSession.ProfileID, clinicID)
	if err != nil {
		return err
	}
	if membership == nil || !membership.Active {
		return exceptions.ErrNotAuthorized(nil)
	}
	return nil
}

func buildTussCodeResponse(tussCode *models.TussCode) *responses.TussCode {
	return &responses.TussCode{
		ID:                tussCode.ID,
		ClinicID:          tussCode.ClinicID,
		Code:              tussCode.Code,
		Description:       tussCode.Description,
		InsuranceProvider: tussCode.InsuranceProvider,
		Price:             tussCode.Price,
		Active:            tussCode.Active,
	}
}
