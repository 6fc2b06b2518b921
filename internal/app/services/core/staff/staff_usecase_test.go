package staff

import (
	"cardioflow-service/internal/app/config"
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/app/services/shared/identity"
	"cardioflow-service/internal/pkg/constvars"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/dto/responses"
	"cardioflow-service/internal/pkg/exceptions"
	"context"
	"testing"

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

type staffFixture struct {
	profileRepo    *MockProfileRepository
	clinicRepo     *MockClinicRepository
	staffRepo      *MockClinicStaffRepository
	identityClient *MockIdentityProviderClient
	auditPublisher *MockAuditPublisher
	usecase        StaffUsecase
}

func newStaffFixture() *staffFixture {
	logger := zap.NewNop()
	profileRepo := new(MockProfileRepository)
	clinicRepo := new(MockClinicRepository)
	staffRepo := new(MockClinicStaffRepository)
	identityClient := new(MockIdentityProviderClient)
	auditPublisher := new(MockAuditPublisher)

	internalConfig := &config.InternalConfig{}
	internalConfig.Provisioning.DefaultPassword = "Temp-Pass-1"
	internalConfig.Provisioning.ProfileWaitAttempts = 2
	internalConfig.Provisioning.ProfileWaitIntervalMs = 1

	enroller := identity.NewEnroller(logger, identityClient, profileRepo, internalConfig)

	usecase := NewStaffUsecase(
		logger,
		profileRepo,
		clinicRepo,
		staffRepo,
		identityClient,
		enroller,
		auditPublisher,
		internalConfig,
	)

	return &staffFixture{
		profileRepo:    profileRepo,
		clinicRepo:     clinicRepo,
		staffRepo:      staffRepo,
		identityClient: identityClient,
		auditPublisher: auditPublisher,
		usecase:        usecase,
	}
}

func adminSession() *models.Session {
	return &models.Session{
		SessionID: "session-1",
		ProfileID: "admin-profile",
		Email:     "admin@example.com",
		Role:      constvars.RoleClinicAdmin,
	}
}

func associateRequest(clinicID string) *requests.AssociateStaff {
	return &requests.AssociateStaff{
		Email:     "doctor@example.com",
		FirstName: "Bruno",
		LastName:  "Lima",
		CRM:       "CRM-RJ-9876",
		Role:      constvars.RoleDoctor,
		ClinicID:  clinicID,
	}
}

func TestAssociateStaff_NewIdentity(t *testing.T) {
	fixture := newStaffFixture()
	request := associateRequest("clinic-1")
	session := adminSession()

	fixture.staffRepo.On("FindMembership", mock.Anything, "admin-profile", "clinic-1").
		Return(&models.ClinicStaff{ID: "m-admin", Active: true, IsAdmin: true}, nil).Once()
	fixture.clinicRepo.On("FindByID", mock.Anything, "clinic-1").
		Return(&models.Clinic{ID: "clinic-1", Name: "Clinica Cardio Vida"}, nil)
	fixture.profileRepo.On("FindByEmail", mock.Anything, request.Email).Return(nil, nil)
	fixture.identityClient.On("FindUserByEmail", mock.Anything, request.Email).Return(nil, nil)
	fixture.identityClient.On("CreateUser", mock.Anything, mock.AnythingOfType("*requests.CreateIdentityUser")).
		Return(&models.IdentityUser{ID: "user-2", Email: request.Email}, nil)
	fixture.profileRepo.On("FindByID", mock.Anything, "user-2").
		Return(&models.Profile{ID: "user-2", Email: request.Email}, nil)
	fixture.staffRepo.On("CreateMembership", mock.Anything, mock.AnythingOfType("*models.ClinicStaff")).
		Return("membership-2", nil)
	fixture.auditPublisher.On("Publish", mock.Anything, mock.AnythingOfType("*models.AuditEvent")).Return(nil)

	result, err := fixture.usecase.AssociateStaff(context.Background(), session, request)

	assert.NoError(t, err)
	assert.Equal(t, "user-2", result.UserID)
	assert.Equal(t, "clinic-1", result.ClinicID)
	assert.False(t, result.Reactivated)
	assert.Equal(t, "Temp-Pass-1", result.DefaultPassword)

	fixture.identityClient.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}

func TestAssociateStaff_ReactivatesInactiveMembership(t *testing.T) {
	fixture := newStaffFixture()
	request := associateRequest("clinic-1")
	request.Role = constvars.RoleReceptionist
	session := adminSession()

	fixture.staffRepo.On("FindMembership", mock.Anything, "admin-profile", "clinic-1").
		Return(&models.ClinicStaff{ID: "m-admin", Active: true, IsAdmin: true}, nil).Once()
	fixture.clinicRepo.On("FindByID", mock.Anything, "clinic-1").
		Return(&models.Clinic{ID: "clinic-1"}, nil)
	fixture.profileRepo.On("FindByEmail", mock.Anything, request.Email).
		Return(&models.Profile{ID: "user-3", Email: request.Email}, nil)
	fixture.staffRepo.On("FindMembership", mock.Anything, "user-3", "clinic-1").
		Return(&models.ClinicStaff{ID: "membership-3", Active: false}, nil).Once()
	fixture.staffRepo.On("ReactivateMembership", mock.Anything, "membership-3", constvars.RoleReceptionist, "", "", false).
		Return(nil)

	result, err := fixture.usecase.AssociateStaff(context.Background(), session, request)

	assert.NoError(t, err)
	assert.True(t, result.Reactivated)
	assert.Equal(t, "user-3", result.UserID)
	assert.Empty(t, result.DefaultPassword)

	// Reactivation touches no identity state
	fixture.identityClient.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	fixture.staffRepo.AssertNotCalled(t, "CreateMembership", mock.Anything, mock.Anything)
}

func TestAssociateStaff_ActiveMembershipConflict(t *testing.T) {
	fixture := newStaffFixture()
	request := associateRequest("clinic-1")
	session := adminSession()

	fixture.staffRepo.On("FindMembership", mock.Anything, "admin-profile", "clinic-1").
		Return(&models.ClinicStaff{ID: "m-admin", Active: true, IsAdmin: true}, nil).Once()
	fixture.clinicRepo.On("FindByID", mock.Anything, "clinic-1").
		Return(&models.Clinic{ID: "clinic-1"}, nil)
	fixture.profileRepo.On("FindByEmail", mock.Anything, request.Email).
		Return(&models.Profile{ID: "user-3", Email: request.Email}, nil)
	fixture.staffRepo.On("FindMembership", mock.Anything, "user-3", "clinic-1").
		Return(&models.ClinicStaff{ID: "membership-3", Active: true}, nil).Once()

	result, err := fixture.usecase.AssociateStaff(context.Background(), session, request)

	assert.Nil(t, result)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.ErrClientAlreadyStaffMember, customErr.ClientMessage)
}

func TestAssociateStaff_CallerNotClinicAdmin(t *testing.T) {
	fixture := newStaffFixture()
	request := associateRequest("clinic-1")
	session := adminSession()
	session.Role = constvars.RoleDoctor

	fixture.staffRepo.On("FindMembership", mock.Anything, "admin-profile", "clinic-1").
		Return(&models.ClinicStaff{ID: "m-doc", Active: true, IsAdmin: false}, nil).Once()

	result, err := fixture.usecase.AssociateStaff(context.Background(), session, request)

	assert.Nil(t, result)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)

	fixture.clinicRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	fixture.identityClient.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestAssociateStaff_SuperAdminBypassesMembershipCheck(t *testing.T) {
	fixture := newStaffFixture()
	request := associateRequest("clinic-1")
	session := adminSession()
	session.Role = constvars.RoleSuperAdmin

	fixture.clinicRepo.On("FindByID", mock.Anything, "clinic-1").
		Return(&models.Clinic{ID: "clinic-1"}, nil)
	fixture.profileRepo.On("FindByEmail", mock.Anything, request.Email).
		Return(&models.Profile{ID: "user-3", Email: request.Email}, nil)
	fixture.staffRepo.On("FindMembership", mock.Anything, "user-3", "clinic-1").Return(nil, nil)
	fixture.staffRepo.On("CreateMembership", mock.Anything, mock.AnythingOfType("*models.ClinicStaff")).
		Return("membership-4", nil)

	result, err := fixture.usecase.AssociateStaff(context.Background(), session, request)

	assert.NoError(t, err)
	assert.Equal(t, "user-3", result.UserID)

	// No caller membership lookup for a super admin
	fixture.staffRepo.AssertNotCalled(t, "FindMembership", mock.Anything, "admin-profile", "clinic-1")
}

func TestAssociateStaff_MembershipInsertDeletesFreshIdentity(t *testing.T) {
	fixture := newStaffFixture()
	request := associateRequest("clinic-1")
	session := adminSession()
	session.Role = constvars.RoleSuperAdmin

	fixture.clinicRepo.On("FindByID", mock.Anything, "clinic-1").
		Return(&models.Clinic{ID: "clinic-1"}, nil)
	fixture.profileRepo.On("FindByEmail", mock.Anything, request.Email).Return(nil, nil)
	fixture.identityClient.On("FindUserByEmail", mock.Anything, request.Email).Return(nil, nil)
	fixture.identityClient.On("CreateUser", mock.Anything, mock.AnythingOfType("*requests.CreateIdentityUser")).
		Return(&models.IdentityUser{ID: "user-2", Email: request.Email}, nil)
	fixture.profileRepo.On("FindByID", mock.Anything, "user-2").
		Return(&models.Profile{ID: "user-2", Email: request.Email}, nil)
	fixture.staffRepo.On("CreateMembership", mock.Anything, mock.AnythingOfType("*models.ClinicStaff")).
		Return("", assert.AnError)
	fixture.identityClient.On("DeleteUser", mock.Anything, "user-2").Return(nil)

	result, err := fixture.usecase.AssociateStaff(context.Background(), session, request)

	assert.Nil(t, result)
	assert.Equal(t, assert.AnError, err)
	fixture.identityClient.AssertCalled(t, "DeleteUser", mock.Anything, "user-2")
}

func TestDeactivateStaff(t *testing.T) {
	fixture := newStaffFixture()
	session := adminSession()

	fixture.staffRepo.On("FindMembership", mock.Anything, "admin-profile", "clinic-1").
		Return(&models.ClinicStaff{ID: "m-admin", Active: true, IsAdmin: true}, nil).Once()
	fixture.staffRepo.On("DeactivateMembership", mock.Anything, "user-3", "clinic-1").Return(nil)

	err := fixture.usecase.DeactivateStaff(context.Background(), session, "clinic-1", "user-3")

	assert.NoError(t, err)
	fixture.staffRepo.AssertCalled(t, "DeactivateMembership", mock.Anything, "user-3", "clinic-1")
}
