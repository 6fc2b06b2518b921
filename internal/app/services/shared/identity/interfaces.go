package identity

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/dto/requests"
	"context"
)

// IdentityProviderClient wraps the hosted auth provider's admin API. User
// records live there authoritatively; this service only creates, lists and
// deletes them during provisioning.
type IdentityProviderClient interface {
	CreateUser(ctx context.Context, request *requests.CreateIdentityUser) (*models.IdentityUser, error)
	DeleteUser(ctx context.Context, userID string) error
	FindUserByEmail(ctx context.Context, email string) (*models.IdentityUser, error)
	VerifyAccessToken(ctx context.Context, accessToken string) (*models.IdentityUser, error)
}
