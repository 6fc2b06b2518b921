package clinics

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/exceptions"
	"cardioflow-service/internal/pkg/queries"
	"context"
	"database/sql"
)

type clinicPostgresRepository struct {
	DB *sql.DB
}

func NewClinicPostgresRepository(db *sql.DB) ClinicRepository {
	return &clinicPostgresRepository{
		DB: db,
	}
}

func (repo *clinicPostgresRepository) CreateClinic(ctx context.Context, clinic *models.Clinic) (string, error) {
	var id string
	err := repo.DB.QueryRowContext(ctx, queries.InsertClinic,
		clinic.Name,
		clinic.TradingName,
		clinic.CNPJ,
		clinic.City,
		clinic.Address,
		clinic.Phone,
		clinic.Email,
		clinic.CreatedBy,
	).Scan(&id)
	if err != nil {
		return "", exceptions.ErrPostgresDBInsertData(err)
	}
	return id, nil
}

func (repo *clinicPostgresRepository) DeleteClinic(ctx context.Context, clinicID string) error {
	_, err := repo.DB.ExecContext(ctx, queries.DeleteClinic, clinicID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}

func (repo *clinicPostgresRepository) FindByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	var clinic models.Clinic

	err := repo.DB.QueryRowContext(ctx, queries.GetClinicByID, clinicID).Scan(
		&clinic.ID,
		&clinic.Name,
		&clinic.TradingName,
		&clinic.CNPJ,
		&clinic.City,
		&clinic.Address,
		&clinic.Phone,
		&clinic.Email,
		&clinic.CreatedBy,
		&clinic.CreatedAt,
		&clinic.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return &clinic, nil
}

func (repo *clinicPostgresRepository) FindAllByProfileID(ctx context.Context, profileID string) ([]models.Clinic, error) {
	return repo.findMany(ctx, queries.GetClinicsByProfile, profileID)
}

func (repo *clinicPostgresRepository) FindAll(ctx context.Context) ([]models.Clinic, error) {
	return repo.findMany(ctx, queries.GetAllClinics)
}

func (repo *clinicPostgresRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]models.Clinic, error) {
	rows, err := repo.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var clinics []models.Clinic
	for rows.Next() {
		var clinic models.Clinic
		err := rows.Scan(
			&clinic.ID,
			&clinic.Name,
			&clinic.TradingName,
			&clinic.CNPJ,
			&clinic.City,
			&clinic.Address,
			&clinic.Phone,
			&clinic.Email,
			&clinic.CreatedBy,
			&clinic.CreatedAt,
			&clinic.UpdatedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		clinics = append(clinics, clinic)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return clinics, nil
}
