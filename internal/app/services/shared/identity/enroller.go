package identity

import (
	"cardioflow-service/internal/app/config"
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/exceptions"
	"cardioflow-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

// ProfileFinder is the slice of the profile store the enroller needs to
// observe the provisioning trigger's effect.
type ProfileFinder interface {
	FindByID(ctx context.Context, profileID string) (*models.Profile, error)
}

// Enroller creates an identity and waits for the out-of-band trigger to
// materialize its profile row. The trigger is not under this service's
// control, so the wait is a bounded fixed-interval poll. When the budget is
// exhausted or the poll errors, the freshly created identity is deleted so
// no orphan identity survives a failed enrollment.
type Enroller struct {
	Log                    *zap.Logger
	IdentityProviderClient IdentityProviderClient
	ProfileFinder          ProfileFinder
	WaitAttempts           int
	WaitInterval           time.Duration
}

func NewEnroller(
	logger *zap.Logger,
	identityProviderClient IdentityProviderClient,
	profileFinder ProfileFinder,
	internalConfig *config.InternalConfig,
) *Enroller {
	return &Enroller{
		Log:                    logger,
		IdentityProviderClient: identityProviderClient,
		ProfileFinder:          profileFinder,
		WaitAttempts:           internalConfig.Provisioning.ProfileWaitAttempts,
		WaitInterval:           time.Duration(internalConfig.Provisioning.ProfileWaitIntervalMs) * time.Millisecond,
	}
}

func (e *Enroller) CreateIdentityAndAwaitProfile(ctx context.Context, email, password string, metadata map[string]interface{}) (*models.Profile, error) {
	identityUser, err := e.IdentityProviderClient.CreateUser(ctx, &requests.CreateIdentityUser{
		Email:        email,
		Password:     password,
		EmailConfirm: true,
		UserMetadata: metadata,
	})
	if err != nil {
		return nil, err
	}

	var profile *models.Profile
	found, pollErr := utils.PollUntil(ctx, e.WaitAttempts, e.WaitInterval, func(ctx context.Context) (bool, error) {
		result, err := e.ProfileFinder.FindByID(ctx, identityUser.ID)
		if err != nil {
			return false, err
		}
		profile = result
		return result != nil, nil
	})

	if pollErr != nil || !found {
		e.deleteIdentity(identityUser.ID)
		if pollErr != nil {
			return nil, pollErr
		}
		return nil, exceptions.ErrProfileWaitExhausted(nil)
	}

	return profile, nil
}

func (e *Enroller) deleteIdentity(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.IdentityProviderClient.DeleteUser(ctx, userID); err != nil {
		e.Log.Error("failed to delete identity after profile wait failure",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}
