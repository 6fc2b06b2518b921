package provisioning

import (
	"cardioflow-service/internal/app/config"
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/app/services/core/clinics"
	"cardioflow-service/internal/app/services/core/profiles"
	"cardioflow-service/internal/app/services/core/staff"
	"cardioflow-service/internal/app/services/shared/audit"
	"cardioflow-service/internal/app/services/shared/identity"
	"cardioflow-service/internal/pkg/constvars"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/dto/responses"
	"cardioflow-service/internal/pkg/exceptions"
	"cardioflow-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type provisioningUsecase struct {
	Log                    *zap.Logger
	ProfileRepository      profiles.ProfileRepository
	ClinicRepository       clinics.ClinicRepository
	ClinicStaffRepository  staff.ClinicStaffRepository
	IdentityProviderClient identity.IdentityProviderClient
	Enroller               *identity.Enroller
	AuditPublisher         audit.AuditPublisher
	InternalConfig         *config.InternalConfig
}

func NewProvisioningUsecase(
	logger *zap.Logger,
	profileRepository profiles.ProfileRepository,
	clinicRepository clinics.ClinicRepository,
	clinicStaffRepository staff.ClinicStaffRepository,
	identityProviderClient identity.IdentityProviderClient,
	enroller *identity.Enroller,
	auditPublisher audit.AuditPublisher,
	internalConfig *config.InternalConfig,
) ProvisioningUsecase {
	return &provisioningUsecase{
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

func (uc *provisioningUsecase) ProvisionClinicWithAdmin(ctx context.Context, callerSession *models.Session, request *requests.ProvisionClinicWithAdmin) (response *responses.ProvisionClinicWithAdmin, err error) {
	// Authorization gate before any side effect
	if callerSession == nil || callerSession.Role != constvars.RoleSuperAdmin {
		return nil, exceptions.ErrNotAuthorized(nil)
	}

	// Check if email already has a profile
	existingProfile, err := uc.ProfileRepository.FindByEmail(ctx, request.AdminData.Email)
	if err != nil {
		return nil, err
	}
	if existingProfile != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	// The profile trigger may lag behind the identity provider, so the
	// provider's user list is checked as a second source of truth.
	existingIdentity, err := uc.IdentityProviderClient.FindUserByEmail(ctx, request.AdminData.Email)
	if err != nil {
		return nil, err
	}
	if existingIdentity != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	defaultPassword, err := uc.resolveDefaultPassword()
	if err != nil {
		return nil, err
	}

	sg := newSaga(uc.Log)
	defer func() {
		if r := recover(); r != nil {
			sg.unwind()
			response = nil
			err = exceptions.ErrProvisioning(fmt.Errorf("panic: %v", r))
		}
	}()

	// Create identity and wait for the trigger to materialize its profile.
	// The enroller already deletes the identity when the wait fails.
	adminProfile, err := uc.Enroller.CreateIdentityAndAwaitProfile(ctx, request.AdminData.Email, defaultPassword, map[string]interface{}{
		"first_name": request.AdminData.FirstName,
		"last_name":  request.AdminData.LastName,
		"phone":      request.AdminData.Phone,
		"crm":        request.AdminData.CRM,
		"role":       constvars.RoleClinicAdmin,
	})
	if err != nil {
		uc.publishAuditEvent(callerSession, request, "", "failure", err.Error())
		return nil, err
	}
	sg.push("delete identity", func(ctx context.Context) error {
		return uc.IdentityProviderClient.DeleteUser(ctx, adminProfile.ID)
	})

	// The registering super admin owns the clinic record, not the new admin.
	clinicID, err := uc.ClinicRepository.CreateClinic(ctx, &models.Clinic{
		Name:        request.ClinicData.Name,
		TradingName: request.ClinicData.TradingName,
		CNPJ:        request.ClinicData.CNPJ,
		City:        request.ClinicData.City,
		Address:     request.ClinicData.Address,
		Phone:       request.ClinicData.Phone,
		Email:       request.ClinicData.Email,
		CreatedBy:   callerSession.ProfileID,
	})
	if err != nil {
		sg.unwind()
		uc.publishAuditEvent(callerSession, request, "", "failure", err.Error())
		return nil, err
	}
	sg.push("delete clinic", func(ctx context.Context) error {
		return uc.ClinicRepository.DeleteClinic(ctx, clinicID)
	})

	// Membership insertion is the commit point of the whole workflow
	_, err = uc.ClinicStaffRepository.CreateMembership(ctx, &models.ClinicStaff{
		ProfileID: adminProfile.ID,
		ClinicID:  clinicID,
		Role:      constvars.RoleClinicAdmin,
		IsAdmin:   true,
		Active:    true,
	})
	if err != nil {
		sg.unwind()
		uc.publishAuditEvent(callerSession, request, clinicID, "failure", err.Error())
		return nil, err
	}

	uc.publishAuditEventWithPassword(callerSession, request, clinicID, defaultPassword)

	return &responses.ProvisionClinicWithAdmin{
		UserID:          adminProfile.ID,
		ClinicID:        clinicID,
		Email:           request.AdminData.Email,
		DefaultPassword: defaultPassword,
	}, nil
}

func (uc *provisioningUsecase) resolveDefaultPassword() (string, error) {
	if configured := uc.InternalConfig.Provisioning.DefaultPassword; configured != "" {
		return configured, nil
	}

	generated, err := utils.GeneratePassword(uc.InternalConfig.Provisioning.GeneratedPasswordLength)
	if err != nil {
		return "", exceptions.ErrGenerateDefaultPassword(err)
	}
	return generated, nil
}

// publishAuditEvent records the outcome of a provisioning attempt. Audit
// delivery is best-effort; a broker failure never fails the workflow.
func (uc *provisioningUsecase) publishAuditEvent(callerSession *models.Session, request *requests.ProvisionClinicWithAdmin, clinicID, outcome, detail string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event := &models.AuditEvent{
		Event:        "clinic_provisioned",
		ActorID:      callerSession.ProfileID,
		SubjectEmail: request.AdminData.Email,
		ClinicID:     clinicID,
		Outcome:      outcome,
		Detail:       detail,
		OccurredAt:   time.Now(),
	}

	if err := uc.AuditPublisher.Publish(ctx, event); err != nil {
		uc.Log.Error("failed to publish provisioning audit event", zap.Error(err))
	}
}

func (uc *provisioningUsecase) publishAuditEventWithPassword(callerSession *models.Session, request *requests.ProvisionClinicWithAdmin, clinicID, defaultPassword string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// The audit trail keeps only a hash of the issued password
	passwordHash, err := utils.HashPassword(defaultPassword)
	if err != nil {
		uc.Log.Error("failed to hash default password for audit event", zap.Error(err))
		passwordHash = ""
	}

	event := &models.AuditEvent{
		Event:        "clinic_provisioned",
		ActorID:      callerSession.ProfileID,
		SubjectEmail: request.AdminData.Email,
		ClinicID:     clinicID,
		PasswordHash: passwordHash,
		Outcome:      "success",
		OccurredAt:   time.Now(),
	}

	if err := uc.AuditPublisher.Publish(ctx, event); err != nil {
		uc.Log.Error("failed to publish provisioning audit event", zap.Error(err))
	}
}
