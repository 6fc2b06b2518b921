package profiles

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/exceptions"
	"cardioflow-service/internal/pkg/queries"
	"context"
	"database/sql"
)

type profilePostgresRepository struct {
	DB *sql.DB
}

func NewProfilePostgresRepository(db *sql.DB) ProfileRepository {
	return &profilePostgresRepository{
		DB: db,
	}
}

func (repo *profilePostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return repo.findOne(ctx, queries.GetProfileByEmail, email)
}

func (repo *profilePostgresRepository) FindByID(ctx context.Context, profileID string) (*models.Profile, error) {
	return repo.findOne(ctx, queries.GetProfileByID, profileID)
}

func (repo *profilePostgresRepository) findOne(ctx context.Context, query string, arg interface{}) (*models.Profile, error) {
	var profile models.Profile

	err := repo.DB.QueryRowContext(ctx, query, arg).Scan(
		&profile.ID,
		&profile.Email,
		&profile.FirstName,
		&profile.LastName,
		&profile.Phone,
		&profile.CRM,
		&profile.Role,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return &profile, nil
}
