package auth

import (
	"cardioflow-service/internal/app/config"
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/app/services/core/profiles"
	"cardioflow-service/internal/app/services/shared/identity"
	"cardioflow-service/internal/app/services/shared/redis"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/dto/responses"
	"cardioflow-service/internal/pkg/exceptions"
	"cardioflow-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	Log                    *zap.Logger
	IdentityProviderClient identity.IdentityProviderClient
	ProfileRepository      profiles.ProfileRepository
	RedisRepository        redis.RedisRepository
	InternalConfig         *config.InternalConfig
}

func NewAuthUsecase(
	logger *zap.Logger,
	identityProviderClient identity.IdentityProviderClient,
	profileRepository profiles.ProfileRepository,
	redisRepository redis.RedisRepository,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		Log:                    logger,
		IdentityProviderClient: identityProviderClient,
		ProfileRepository:      profileRepository,
		RedisRepository:        redisRepository,
		InternalConfig:         internalConfig,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	identityUser, err := uc.IdentityProviderClient.VerifyAccessToken(ctx, request.AccessToken)
	if err != nil {
		return nil, err
	}
	if identityUser == nil {
		return nil, exceptions.ErrInvalidCredential(nil)
	}

	profile, err := uc.ProfileRepository.FindByEmail(ctx, identityUser.Email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrCallerProfileMissing(nil)
	}

	sessionExpiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	session := &models.Session{
		SessionID: uuid.NewString(),
		ProfileID: profile.ID,
		Email:     profile.Email,
		Role:      profile.Role,
		ExpiresAt: time.Now().Add(sessionExpiry),
	}

	if err := uc.RedisRepository.CreateSession(ctx, session, sessionExpiry); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		// The orphaned session row expires on its own, but there is no point
		// keeping it around.
		if delErr := uc.RedisRepository.DeleteSession(ctx, session.SessionID); delErr != nil {
			uc.Log.Error("failed to delete session after token failure", zap.Error(delErr))
		}
		return nil, err
	}

	return &responses.Login{Token: token}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, callerSession *models.Session) error {
	if callerSession == nil {
		return exceptions.ErrInvalidSession(nil)
	}
	return uc.RedisRepository.DeleteSession(ctx, callerSession.SessionID)
}
