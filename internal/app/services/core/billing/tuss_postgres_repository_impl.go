package billing

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/exceptions"
	"cardioflow-service/internal/pkg/queries"
	"context"
	"database/sql"
)

type tussPostgresRepository struct {
	DB *sql.DB
}

func NewTussPostgresRepository(db *sql.DB) TussCodeRepository {
	return &tussPostgresRepository{
		DB: db,
	}
}

func (repo *tussPostgresRepository) CreateTussCode(ctx context.Context, tussCode *models.TussCode) (string, error) {
	var tussCodeID string

	err := repo.DB.QueryRowContext(ctx, queries.InsertTussCode,
		tussCode.ClinicID,
		tussCode.Code,
		tussCode.Description,
		tussCode.InsuranceProvider,
		tussCode.Price,
	).Scan(&tussCodeID)
	if err != nil {
		return "", exceptions.ErrPostgresDBInsertData(err)
	}

	return tussCodeID, nil
}

func (repo *tussPostgresRepository) FindActiveByClinic(ctx context.Context, clinicID string) ([]models.TussCode, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetActiveTussCodesByClinic, clinicID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	tussCodes := make([]models.TussCode, 0)
	for rows.Next() {
		var tussCode models.TussCode
		err := rows.Scan(
			&tussCode.ID,
			&tussCode.ClinicID,
			&tussCode.Code,
			&tussCode.Description,
			&tussCode.InsuranceProvider,
			&tussCode.Price,
			&tussCode.Active,
			&tussCode.CreatedAt,
			&tussCode.UpdatedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		tussCodes = append(tussCodes, tussCode)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return tussCodes, nil
}

func (repo *tussPostgresRepository) DeactivateTussCode(ctx context.Context, tussCodeID, clinicID string) error {
	result, err := repo.DB.ExecContext(ctx, queries.DeactivateTussCode, tussCodeID, clinicID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		return exceptions.ErrTussCodeNotFound(nil)
	}

	return nil
}
