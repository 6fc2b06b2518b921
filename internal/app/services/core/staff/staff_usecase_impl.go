package staff

import (
	"cardioflow-service/internal/app/config"
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/app/services/core/clinics"
	"cardioflow-service/internal/app/services/core/profiles"
	"cardioflow-service/internal/app/services/shared/audit"
	"cardioflow-service/internal/app/services/shared/identity"
	"cardioflow-service/internal/pkg/constvars"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/dto/responses"
	"cardioflow-service/internal/pkg/exceptions"
	"cardioflow-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type staffUsecase struct {
	Log                    *zap.Logger
	ProfileRepository      profiles.ProfileRepository
	ClinicRepository       clinics.ClinicRepository
	ClinicStaffRepository  ClinicStaffRepository
	IdentityProviderClient identity.IdentityProviderClient
	Enroller               *identity.Enroller
	AuditPublisher         audit.AuditPublisher
	InternalConfig         *config.InternalConfig
}

func NewStaffUsecase(
	logger *zap.Logger,
	profileRepository profiles.ProfileRepository,
	clinicRepository clinics.ClinicRepository,
	clinicStaffRepository ClinicStaffRepository,
	identityProviderClient identity.IdentityProviderClient,
	enroller *identity.Enroller,
	auditPublisher audit.AuditPublisher,
	internalConfig *config.InternalConfig,
) StaffUsecase {
	return &staffUsecase{
		Log:                    logger,
		ProfileRepository:      profileRepository,
		ClinicRepository:       clinicRepository,
		ClinicStaffRepository:  clinicStaffRepository,
		IdentityProviderClient: identityProviderClient,
		Enroller:               enroller,
		AuditPublisher:         auditPublisher,
		InternalConfig:         internalConfig,
	}
}

func (uc *staffUsecase) AssociateStaff(ctx context.Context, callerSession *models.Session, request *requests.AssociateStaff) (*responses.AssociateStaff, error) {
	if err := uc.authorizeClinicAdmin(ctx, callerSession, request.ClinicID); err != nil {
		return nil, err
	}

	clinic, err := uc.ClinicRepository.FindByID(ctx, request.ClinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrClinicNotFound(nil)
	}

	existingProfile, err := uc.ProfileRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}

	// Known profile: the identity already exists, only the membership needs work
	if existingProfile != nil {
		return uc.associateExistingProfile(ctx, existingProfile, request)
	}

	// The trigger may lag; an identity without a profile still counts as taken
	existingIdentity, err := uc.IdentityProviderClient.FindUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingIdentity != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	return uc.associateNewIdentity(ctx, callerSession, request)
}

func (uc *staffUsecase) associateExistingProfile(ctx context.Context, profile *models.Profile, request *requests.AssociateStaff) (*responses.AssociateStaff, error) {
	membership, err := uc.ClinicStaffRepository.FindMembership(ctx, profile.ID, request.ClinicID)
	if err != nil {
		return nil, err
	}

	if membership != nil && membership.Active {
		return nil, exceptions.ErrAlreadyStaffMember(nil)
	}

	if membership != nil {
		// Former member: reactivate the row instead of inserting a second one
		err := uc.ClinicStaffRepository.ReactivateMembership(ctx, membership.ID, request.Role, request.Title, request.Bio, request.IsAdmin)
		if err != nil {
			return nil, err
		}
		return &responses.AssociateStaff{
			UserID:      profile.ID,
			ClinicID:    request.ClinicID,
			Reactivated: true,
		}, nil
	}

	_, err = uc.ClinicStaffRepository.CreateMembership(ctx, &models.ClinicStaff{
		ProfileID: profile.ID,
		ClinicID:  request.ClinicID,
		Role:      request.Role,
		Title:     request.Title,
		Bio:       request.Bio,
		IsAdmin:   request.IsAdmin,
		Active:    true,
	})
	if err != nil {
		return nil, err
	}

	return &responses.AssociateStaff{
		UserID:   profile.ID,
		ClinicID: request.ClinicID,
	}, nil
}

func (uc *staffUsecase) associateNewIdentity(ctx context.Context, callerSession *models.Session, request *requests.AssociateStaff) (*responses.AssociateStaff, error) {
	defaultPassword := uc.InternalConfig.Provisioning.DefaultPassword
	if defaultPassword == "" {
		generated, err := utils.GeneratePassword(uc.InternalConfig.Provisioning.GeneratedPasswordLength)
		if err != nil {
			return nil, exceptions.ErrGenerateDefaultPassword(err)
		}
		defaultPassword = generated
	}

	profile, err := uc.Enroller.CreateIdentityAndAwaitProfile(ctx, request.Email, defaultPassword, map[string]interface{}{
		"first_name": request.FirstName,
		"last_name":  request.LastName,
		"phone":      request.Phone,
		"crm":        request.CRM,
		"role":       request.Role,
	})
	if err != nil {
		return nil, err
	}

	_, err = uc.ClinicStaffRepository.CreateMembership(ctx, &models.ClinicStaff{
		ProfileID: profile.ID,
		ClinicID:  request.ClinicID,
		Role:      request.Role,
		Title:     request.Title,
		Bio:       request.Bio,
		IsAdmin:   request.IsAdmin,
		Active:    true,
	})
	if err != nil {
		// The identity was created by this call, so it is removed again to
		// keep the no-orphan invariant; the membership error stays the one
		// reported.
		uc.deleteIdentityBestEffort(profile.ID)
		return nil, err
	}

	uc.publishAuditEvent(callerSession, request, "success", "")

	return &responses.AssociateStaff{
		UserID:          profile.ID,
		ClinicID:        request.ClinicID,
		DefaultPassword: defaultPassword,
	}, nil
}

func (uc *staffUsecase) FindActiveStaffByClinic(ctx context.Context, callerSession *models.Session, clinicID string) ([]responses.StaffMember, error) {
	if err := uc.authorizeClinicMember(ctx, callerSession, clinicID); err != nil {
		return nil, err
	}
	return uc.ClinicStaffRepository.FindActiveStaffByClinic(ctx, clinicID)
}

func (uc *staffUsecase) DeactivateStaff(ctx context.Context, callerSession *models.Session, clinicID, profileID string) error {
	if err := uc.authorizeClinicAdmin(ctx, callerSession, clinicID); err != nil {
		return err
	}
	return uc.ClinicStaffRepository.DeactivateMembership(ctx, profileID, clinicID)
}

func (uc *staffUsecase) authorizeClinicAdmin(ctx context.Context, callerSession *models.Session, clinicID string) error {
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

func (uc *staffUsecase) authorizeClinicMember(ctx context.Context, callerSession *models.Session, clinicID string) error {
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

func (uc *staffUsecase) deleteIdentityBestEffort(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := uc.IdentityProviderClient.DeleteUser(ctx, userID); err != nil {
		uc.Log.Error("failed to delete identity after membership failure",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}

func (uc *staffUsecase) publishAuditEvent(callerSession *models.Session, request *requests.AssociateStaff, outcome, detail string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event := &models.AuditEvent{
		Event:        "staff_associated",
		ActorID:      callerSession.ProfileID,
		SubjectEmail: request.Email,
		ClinicID:     request.ClinicID,
		Outcome:      outcome,
		Detail:       detail,
		OccurredAt:   time.Now(),
	}

	if err := uc.AuditPublisher.Publish(ctx, event); err != nil {
		uc.Log.Error("failed to publish staff audit event", zap.Error(err))
	}
}
