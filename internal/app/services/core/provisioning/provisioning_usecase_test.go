package provisioning

import (
	"cardioflow-service/internal/app/config"
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/app/services/shared/identity"
	"cardioflow-service/internal/pkg/constvars"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/dto/responses"
	"cardioflow-service/internal/pkg/exceptions"
	"cardioflow-service/internal/pkg/utils"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByID(ctx context.Context, profileID string) (*models.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

type MockClinicRepository struct {
	mock.Mock
}

func (m *MockClinicRepository) CreateClinic(ctx context.Context, clinic *models.Clinic) (string, error) {
	args := m.Called(ctx, clinic)
	return args.String(0), args.Error(1)
}

func (m *MockClinicRepository) DeleteClinic(ctx context.Context, clinicID string) error {
	args := m.Called(ctx, clinicID)
	return args.Error(0)
}

func (m *MockClinicRepository) FindByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	args := m.Called(ctx, clinicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Clinic), args.Error(1)
}

func (m *MockClinicRepository) FindAllByProfileID(ctx context.Context, profileID string) ([]models.Clinic, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Clinic), args.Error(1)
}

func (m *MockClinicRepository) FindAll(ctx context.Context) ([]models.Clinic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Clinic), args.Error(1)
}

type MockClinicStaffRepository struct {
	mock.Mock
}

func (m *MockClinicStaffRepository) CreateMembership(ctx context.Context, membership *models.ClinicStaff) (string, error) {
	args := m.Called(ctx, membership)
	return args.String(0), args.Error(1)
}

func (m *MockClinicStaffRepository) FindMembership(ctx context.Context, profileID, clinicID string) (*models.ClinicStaff, error) {
	args := m.Called(ctx, profileID, clinicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClinicStaff), args.Error(1)
}

func (m *MockClinicStaffRepository) ReactivateMembership(ctx context.Context, membershipID, role, title, bio string, isAdmin bool) error {
	args := m.Called(ctx, membershipID, role, title, bio, isAdmin)
	return args.Error(0)
}

func (m *MockClinicStaffRepository) DeactivateMembership(ctx context.Context, profileID, clinicID string) error {
	args := m.Called(ctx, profileID, clinicID)
	return args.Error(0)
}

func (m *MockClinicStaffRepository) FindActiveStaffByClinic(ctx context.Context, clinicID string) ([]responses.StaffMember, error) {
	args := m.Called(ctx, clinicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.StaffMember), args.Error(1)
}

type MockIdentityProviderClient struct {
	mock.Mock
}

func (m *MockIdentityProviderClient) CreateUser(ctx context.Context, request *requests.CreateIdentityUser) (*models.IdentityUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IdentityUser), args.Error(1)
}

func (m *MockIdentityProviderClient) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockIdentityProviderClient) FindUserByEmail(ctx context.Context, email string) (*models.IdentityUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IdentityUser), args.Error(1)
}

func (m *MockIdentityProviderClient) VerifyAccessToken(ctx context.Context, accessToken string) (*models.IdentityUser, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IdentityUser), args.Error(1)
}

type MockAuditPublisher struct {
	mock.Mock
}

func (m *MockAuditPublisher) Publish(ctx context.Context, event *models.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type provisioningFixture struct {
	profileRepo    *MockProfileRepository
	clinicRepo     *MockClinicRepository
	staffRepo      *MockClinicStaffRepository
	identityClient *MockIdentityProviderClient
	auditPublisher *MockAuditPublisher
	usecase        ProvisioningUsecase
}

func newProvisioningFixture(waitAttempts int) *provisioningFixture {
	logger := zap.NewNop()
	profileRepo := new(MockProfileRepository)
	clinicRepo := new(MockClinicRepository)
	staffRepo := new(MockClinicStaffRepository)
	identityClient := new(MockIdentityProviderClient)
	auditPublisher := new(MockAuditPublisher)

	internalConfig := &config.InternalConfig{}
	internalConfig.Provisioning.DefaultPassword = "Temp-Pass-1"
	internalConfig.Provisioning.ProfileWaitAttempts = waitAttempts
	internalConfig.Provisioning.ProfileWaitIntervalMs = 1

	enroller := identity.NewEnroller(logger, identityClient, profileRepo, internalConfig)

	usecase := NewProvisioningUsecase(
		logger,
		profileRepo,
		clinicRepo,
		staffRepo,
		identityClient,
		enroller,
		auditPublisher,
		internalConfig,
	)

	return &provisioningFixture{
		profileRepo:    profileRepo,
		clinicRepo:     clinicRepo,
		staffRepo:      staffRepo,
		identityClient: identityClient,
		auditPublisher: auditPublisher,
		usecase:        usecase,
	}
}

func superAdminSession() *models.Session {
	return &models.Session{
		SessionID: "session-1",
		ProfileID: "super-admin-profile",
		Email:     "root@cardioflow.app",
		Role:      constvars.RoleSuperAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func provisionRequest() *requests.ProvisionClinicWithAdmin {
	return &requests.ProvisionClinicWithAdmin{
		AdminData: requests.ProvisionAdminData{
			FirstName: "Ana",
			LastName:  "Souza",
			Email:     "ana.souza@example.com",
			CRM:       "CRM-SP-12345",
		},
		ClinicData: requests.ProvisionClinicData{
			Name:    "Clinica Cardio Vida",
			City:    "Sao Paulo",
			Address: "Av. Paulista 1000",
		},
	}
}

func TestProvisionClinicWithAdmin_Success(t *testing.T) {
	fixture := newProvisioningFixture(3)
	request := provisionRequest()

	adminProfile := &models.Profile{
		ID:    "user-1",
		Email: request.AdminData.Email,
		Role:  constvars.RoleClinicAdmin,
	}

	fixture.profileRepo.On("FindByEmail", mock.Anything, request.AdminData.Email).Return(nil, nil)
	fixture.identityClient.On("FindUserByEmail", mock.Anything, request.AdminData.Email).Return(nil, nil)
	fixture.identityClient.On("CreateUser", mock.Anything, mock.AnythingOfType("*requests.CreateIdentityUser")).
		Return(&models.IdentityUser{ID: "user-1", Email: request.AdminData.Email}, nil)
	fixture.profileRepo.On("FindByID", mock.Anything, "user-1").Return(adminProfile, nil)
	fixture.clinicRepo.On("CreateClinic", mock.Anything, mock.AnythingOfType("*models.Clinic")).Return("clinic-1", nil)
	fixture.staffRepo.On("CreateMembership", mock.Anything, mock.AnythingOfType("*models.ClinicStaff")).Return("membership-1", nil)
	fixture.auditPublisher.On("Publish", mock.Anything, mock.AnythingOfType("*models.AuditEvent")).Return(nil)

	result, err := fixture.usecase.ProvisionClinicWithAdmin(context.Background(), superAdminSession(), request)

	assert.NoError(t, err)
	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, "clinic-1", result.ClinicID)
	assert.Equal(t, request.AdminData.Email, result.Email)
	assert.Equal(t, "Temp-Pass-1", result.DefaultPassword)

	// The clinic row is owned by the caller, the membership by the new admin
	clinicArg := fixture.clinicRepo.Calls[0].Arguments.Get(1).(*models.Clinic)
	assert.Equal(t, "super-admin-profile", clinicArg.CreatedBy)
	membershipArg := fixture.staffRepo.Calls[0].Arguments.Get(1).(*models.ClinicStaff)
	assert.Equal(t, "user-1", membershipArg.ProfileID)
	assert.Equal(t, constvars.RoleClinicAdmin, membershipArg.Role)
	assert.True(t, membershipArg.IsAdmin)
	assert.True(t, membershipArg.Active)

	fixture.identityClient.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	fixture.clinicRepo.AssertNotCalled(t, "DeleteClinic", mock.Anything, mock.Anything)
}

func TestProvisionClinicWithAdmin_CallerNotSuperAdmin(t *testing.T) {
	fixture := newProvisioningFixture(3)

	session := superAdminSession()
	session.Role = constvars.RoleClinicAdmin

	result, err := fixture.usecase.ProvisionClinicWithAdmin(context.Background(), session, provisionRequest())

	assert.Nil(t, result)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)

	// Denied before any side effect
	fixture.profileRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	fixture.identityClient.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	fixture.clinicRepo.AssertNotCalled(t, "CreateClinic", mock.Anything, mock.Anything)
}

func TestProvisionClinicWithAdmin_EmailAlreadyHasProfile(t *testing.T) {
	fixture := newProvisioningFixture(3)
	request := provisionRequest()

	fixture.profileRepo.On("FindByEmail", mock.Anything, request.AdminData.Email).
		Return(&models.Profile{ID: "existing", Email: request.AdminData.Email}, nil)

	result, err := fixture.usecase.ProvisionClinicWithAdmin(context.Background(), superAdminSession(), request)

	assert.Nil(t, result)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.ErrClientEmailAlreadyExists, customErr.ClientMessage)

	fixture.identityClient.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestProvisionClinicWithAdmin_EmailKnownToIdentityProvider(t *testing.T) {
	fixture := newProvisioningFixture(3)
	request := provisionRequest()

	fixture.profileRepo.On("FindByEmail", mock.Anything, request.AdminData.Email).Return(nil, nil)
	fixture.identityClient.On("FindUserByEmail", mock.Anything, request.AdminData.Email).
		Return(&models.IdentityUser{ID: "lagging", Email: request.AdminData.Email}, nil)

	result, err := fixture.usecase.ProvisionClinicWithAdmin(context.Background(), superAdminSession(), request)

	assert.Nil(t, result)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.ErrClientEmailAlreadyExists, customErr.ClientMessage)

	fixture.identityClient.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestProvisionClinicWithAdmin_ProfileWaitExhausted(t *testing.T) {
	fixture := newProvisioningFixture(2)
	request := provisionRequest()

	fixture.profileRepo.On("FindByEmail", mock.Anything, request.AdminData.Email).Return(nil, nil)
	fixture.identityClient.On("FindUserByEmail", mock.Anything, request.AdminData.Email).Return(nil, nil)
	fixture.identityClient.On("CreateUser", mock.Anything, mock.AnythingOfType("*requests.CreateIdentityUser")).
		Return(&models.IdentityUser{ID: "user-1", Email: request.AdminData.Email}, nil)
	fixture.profileRepo.On("FindByID", mock.Anything, "user-1").Return(nil, nil)
	fixture.identityClient.On("DeleteUser", mock.Anything, "user-1").Return(nil)
	fixture.auditPublisher.On("Publish", mock.Anything, mock.AnythingOfType("*models.AuditEvent")).Return(nil)

	result, err := fixture.usecase.ProvisionClinicWithAdmin(context.Background(), superAdminSession(), request)

	assert.Nil(t, result)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.ErrDevProfileWaitExhausted, customErr.DevMessage)

	// Exactly the attempt budget, then the identity is removed again
	fixture.profileRepo.AssertNumberOfCalls(t, "FindByID", 2)
	fixture.identityClient.AssertCalled(t, "DeleteUser", mock.Anything, "user-1")
	fixture.clinicRepo.AssertNotCalled(t, "CreateClinic", mock.Anything, mock.Anything)
}

func TestProvisionClinicWithAdmin_ClinicInsertFails(t *testing.T) {
	fixture := newProvisioningFixture(2)
	request := provisionRequest()
	insertErr := errors.New("unique constraint violated")

	fixture.profileRepo.On("FindByEmail", mock.Anything, request.AdminData.Email).Return(nil, nil)
	fixture.identityClient.On("FindUserByEmail", mock.Anything, request.AdminData.Email).Return(nil, nil)
	fixture.identityClient.On("CreateUser", mock.Anything, mock.AnythingOfType("*requests.CreateIdentityUser")).
		Return(&models.IdentityUser{ID: "user-1", Email: request.AdminData.Email}, nil)
	fixture.profileRepo.On("FindByID", mock.Anything, "user-1").
		Return(&models.Profile{ID: "user-1", Email: request.AdminData.Email}, nil)
	fixture.clinicRepo.On("CreateClinic", mock.Anything, mock.AnythingOfType("*models.Clinic")).Return("", insertErr)
	fixture.identityClient.On("DeleteUser", mock.Anything, "user-1").Return(nil)
	fixture.auditPublisher.On("Publish", mock.Anything, mock.AnythingOfType("*models.AuditEvent")).Return(nil)

	result, err := fixture.usecase.ProvisionClinicWithAdmin(context.Background(), superAdminSession(), request)

	assert.Nil(t, result)
	assert.Equal(t, insertErr, err)

	fixture.identityClient.AssertCalled(t, "DeleteUser", mock.Anything, "user-1")
	fixture.staffRepo.AssertNotCalled(t, "CreateMembership", mock.Anything, mock.Anything)
}

func TestProvisionClinicWithAdmin_MembershipInsertFailsUnwindsEverything(t *testing.T) {
	fixture := newProvisioningFixture(2)
	request := provisionRequest()
	membershipErr := errors.New("membership insert failed")

	fixture.profileRepo.On("FindByEmail", mock.Anything, request.AdminData.Email).Return(nil, nil)
	fixture.identityClient.On("FindUserByEmail", mock.Anything, request.AdminData.Email).Return(nil, nil)
	fixture.identityClient.On("CreateUser", mock.Anything, mock.AnythingOfType("*requests.CreateIdentityUser")).
		Return(&models.IdentityUser{ID: "user-1", Email: request.AdminData.Email}, nil)
	fixture.profileRepo.On("FindByID", mock.Anything, "user-1").
		Return(&models.Profile{ID: "user-1", Email: request.AdminData.Email}, nil)
	fixture.clinicRepo.On("CreateClinic", mock.Anything, mock.AnythingOfType("*models.Clinic")).Return("clinic-1", nil)
	fixture.staffRepo.On("CreateMembership", mock.Anything, mock.AnythingOfType("*models.ClinicStaff")).Return("", membershipErr)
	fixture.clinicRepo.On("DeleteClinic", mock.Anything, "clinic-1").Return(nil)
	fixture.identityClient.On("DeleteUser", mock.Anything, "user-1").Return(nil)
	fixture.auditPublisher.On("Publish", mock.Anything, mock.AnythingOfType("*models.AuditEvent")).Return(nil)

	result, err := fixture.usecase.ProvisionClinicWithAdmin(context.Background(), superAdminSession(), request)

	assert.Nil(t, result)
	assert.Equal(t, membershipErr, err)

	// Both completed steps are compensated, and the step error survives even
	// though compensations ran.
	fixture.clinicRepo.AssertCalled(t, "DeleteClinic", mock.Anything, "clinic-1")
	fixture.identityClient.AssertCalled(t, "DeleteUser", mock.Anything, "user-1")
}

func TestProvisionClinicWithAdmin_CompensationFailureDoesNotMaskStepError(t *testing.T) {
	fixture := newProvisioningFixture(2)
	request := provisionRequest()
	membershipErr := errors.New("membership insert failed")

	fixture.profileRepo.On("FindByEmail", mock.Anything, request.AdminData.Email).Return(nil, nil)
	fixture.identityClient.On("FindUserByEmail", mock.Anything, request.AdminData.Email).Return(nil, nil)
	fixture.identityClient.On("CreateUser", mock.Anything, mock.AnythingOfType("*requests.CreateIdentityUser")).
		Return(&models.IdentityUser{ID: "user-1", Email: request.AdminData.Email}, nil)
	fixture.profileRepo.On("FindByID", mock.Anything, "user-1").
		Return(&models.Profile{ID: "user-1", Email: request.AdminData.Email}, nil)
	fixture.clinicRepo.On("CreateClinic", mock.Anything, mock.AnythingOfType("*models.Clinic")).Return("clinic-1", nil)
	fixture.staffRepo.On("CreateMembership", mock.Anything, mock.AnythingOfType("*models.ClinicStaff")).Return("", membershipErr)
	fixture.clinicRepo.On("DeleteClinic", mock.Anything, "clinic-1").Return(errors.New("delete failed"))
	fixture.identityClient.On("DeleteUser", mock.Anything, "user-1").Return(errors.New("provider down"))
	fixture.auditPublisher.On("Publish", mock.Anything, mock.AnythingOfType("*models.AuditEvent")).Return(nil)

	result, err := fixture.usecase.ProvisionClinicWithAdmin(context.Background(), superAdminSession(), request)

	assert.Nil(t, result)
	assert.Equal(t, membershipErr, err)
}

func TestProvisionClinicWithAdmin_AuditEventCarriesHashedPassword(t *testing.T) {
	fixture := newProvisioningFixture(3)
	request := provisionRequest()

	fixture.profileRepo.On("FindByEmail", mock.Anything, request.AdminData.Email).Return(nil, nil)
	fixture.identityClient.On("FindUserByEmail", mock.Anything, request.AdminData.Email).Return(nil, nil)
	fixture.identityClient.On("CreateUser", mock.Anything, mock.AnythingOfType("*requests.CreateIdentityUser")).
		Return(&models.IdentityUser{ID: "user-1", Email: request.AdminData.Email}, nil)
	fixture.profileRepo.On("FindByID", mock.Anything, "user-1").
		Return(&models.Profile{ID: "user-1", Email: request.AdminData.Email}, nil)
	fixture.clinicRepo.On("CreateClinic", mock.Anything, mock.AnythingOfType("*models.Clinic")).Return("clinic-1", nil)
	fixture.staffRepo.On("CreateMembership", mock.Anything, mock.AnythingOfType("*models.ClinicStaff")).Return("membership-1", nil)
	fixture.auditPublisher.On("Publish", mock.Anything, mock.AnythingOfType("*models.AuditEvent")).Return(nil)

	_, err := fixture.usecase.ProvisionClinicWithAdmin(context.Background(), superAdminSession(), request)
	assert.NoError(t, err)

	// The trail never carries the issued password itself, only a bcrypt
	// hash the password still verifies against
	event := fixture.auditPublisher.Calls[0].Arguments.Get(1).(*models.AuditEvent)
	assert.NotEqual(t, "Temp-Pass-1", event.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("Temp-Pass-1", event.PasswordHash))
}

func TestProvisionClinicWithAdmin_RetryAfterRolledBackWaitSucceeds(t *testing.T) {
	fixture := newProvisioningFixture(2)
	request := provisionRequest()

	// The first attempt's identity never gets a profile row; its rollback
	// leaves both stores empty, so the duplicate checks stay clean for the
	// retry.
	fixture.profileRepo.On("FindByEmail", mock.Anything, request.AdminData.Email).Return(nil, nil)
	fixture.identityClient.On("FindUserByEmail", mock.Anything, request.AdminData.Email).Return(nil, nil)
	fixture.identityClient.On("CreateUser", mock.Anything, mock.AnythingOfType("*requests.CreateIdentityUser")).
		Return(&models.IdentityUser{ID: "user-1", Email: request.AdminData.Email}, nil).Once()
	fixture.identityClient.On("CreateUser", mock.Anything, mock.AnythingOfType("*requests.CreateIdentityUser")).
		Return(&models.IdentityUser{ID: "user-2", Email: request.AdminData.Email}, nil).Once()
	fixture.profileRepo.On("FindByID", mock.Anything, "user-1").Return(nil, nil)
	fixture.identityClient.On("DeleteUser", mock.Anything, "user-1").Return(nil)
	fixture.profileRepo.On("FindByID", mock.Anything, "user-2").
		Return(&models.Profile{ID: "user-2", Email: request.AdminData.Email}, nil)
	fixture.clinicRepo.On("CreateClinic", mock.Anything, mock.AnythingOfType("*models.Clinic")).Return("clinic-1", nil)
	fixture.staffRepo.On("CreateMembership", mock.Anything, mock.AnythingOfType("*models.ClinicStaff")).Return("membership-1", nil)
	fixture.auditPublisher.On("Publish", mock.Anything, mock.AnythingOfType("*models.AuditEvent")).Return(nil)

	result, err := fixture.usecase.ProvisionClinicWithAdmin(context.Background(), superAdminSession(), request)

	assert.Nil(t, result)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.ErrDevProfileWaitExhausted, customErr.DevMessage)
	fixture.identityClient.AssertCalled(t, "DeleteUser", mock.Anything, "user-1")

	result, err = fixture.usecase.ProvisionClinicWithAdmin(context.Background(), superAdminSession(), request)

	assert.NoError(t, err)
	assert.Equal(t, "user-2", result.UserID)
	assert.Equal(t, "clinic-1", result.ClinicID)
	fixture.clinicRepo.AssertNotCalled(t, "DeleteClinic", mock.Anything, mock.Anything)
	fixture.identityClient.AssertNumberOfCalls(t, "DeleteUser", 1)
}
