package profiles

import (
	"cardioflow-service/internal/app/models"
	"context"
)

// ProfileRepository reads the profiles table. Rows are written by the
// identity provider's trigger, so there is no create operation here.
type ProfileRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Profile, error)
	FindByID(ctx context.Context, profileID string) (*models.Profile, error)
}
