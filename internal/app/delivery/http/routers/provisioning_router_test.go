package routers

import (
	"bytes"
	"cardioflow-service/internal/app/config"
	"cardioflow-service/internal/app/delivery/http/middlewares"
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/app/services/core/provisioning"
	"cardioflow-service/internal/pkg/constvars"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/dto/responses"
	"cardioflow-service/internal/pkg/exceptions"
	"cardioflow-service/internal/pkg/utils"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockProvisioningUsecase struct {
	mock.Mock
}

func (m *MockProvisioningUsecase) ProvisionClinicWithAdmin(ctx context.Context, callerSession *models.Session, request *requests.ProvisionClinicWithAdmin) (*responses.ProvisionClinicWithAdmin, error) {
	args := m.Called(ctx, callerSession, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ProvisionClinicWithAdmin), args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	args := m.Called(ctx, session, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockRedisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func TestProvisioningRouter(t *testing.T) {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = "test-secret"
	internalConfig.JWT.ExpTimeInHour = 1

	mockRedis := new(MockRedisRepository)
	mockUsecase := new(MockProvisioningUsecase)

	provisioningController := provisioning.NewProvisioningController(logger, mockUsecase)

	middlewareInstance := middlewares.NewMiddlewares(logger, mockRedis, internalConfig)

	router := chi.NewRouter()
	attachProvisioningRoutes(router, middlewareInstance, provisioningController)

	session := &models.Session{
		SessionID: "session-1",
		ProfileID: "super-admin-profile",
		Email:     "root@cardioflow.app",
		Role:      constvars.RoleSuperAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	token, err := utils.GenerateSessionJWT(session.SessionID, internalConfig.JWT.Secret, internalConfig.JWT.ExpTimeInHour)
	assert.NoError(t, err)

	requestBody := requests.ProvisionClinicWithAdmin{
		AdminData: requests.ProvisionAdminData{
			FirstName: "Ana",
			LastName:  "Souza",
			Email:     "ana.souza@example.com",
		},
		ClinicData: requests.ProvisionClinicData{
			Name:    "Clinica Cardio Vida",
			City:    "Sao Paulo",
			Address: "Av. Paulista 1000",
		},
	}

	t.Run("Provision with valid session", func(t *testing.T) {
		mockRedis.On("GetSession", mock.Anything, "session-1").Return(session, nil).Once()
		mockUsecase.On("ProvisionClinicWithAdmin", mock.Anything, session, mock.AnythingOfType("*requests.ProvisionClinicWithAdmin")).
			Return(&responses.ProvisionClinicWithAdmin{
				UserID:          "user-1",
				ClinicID:        "clinic-1",
				Email:           requestBody.AdminData.Email,
				DefaultPassword: "Temp-Pass-1",
			}, nil).Once()

		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest("POST", "/clinics", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response responses.ResponseDTO
		err := json.Unmarshal(rr.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response.Success)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Provision without token", func(t *testing.T) {
		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest("POST", "/clinics", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Provision with unknown session", func(t *testing.T) {
		mockRedis.On("GetSession", mock.Anything, "session-1").Return(nil, nil).Once()

		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest("POST", "/clinics", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Provision forwards usecase denial", func(t *testing.T) {
		mockRedis.On("GetSession", mock.Anything, "session-1").Return(session, nil).Once()
		mockUsecase.On("ProvisionClinicWithAdmin", mock.Anything, session, mock.AnythingOfType("*requests.ProvisionClinicWithAdmin")).
			Return(nil, exceptions.ErrNotAuthorized(nil)).Once()

		jsonBody, _ := json.Marshal(requestBody)
		req := httptest.NewRequest("POST", "/clinics", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Provision with invalid body", func(t *testing.T) {
		mockRedis.On("GetSession", mock.Anything, "session-1").Return(session, nil).Once()

		invalid := requests.ProvisionClinicWithAdmin{
			AdminData: requests.ProvisionAdminData{
				FirstName: "Ana",
				Email:     "not-an-email",
			},
		}
		jsonBody, _ := json.Marshal(invalid)
		req := httptest.NewRequest("POST", "/clinics", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
