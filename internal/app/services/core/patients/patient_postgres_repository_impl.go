package patients

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/dto/requests"
	"cardioflow-service/internal/pkg/exceptions"
	"cardioflow-service/internal/pkg/queries"
	"context"
	"database/sql"
)

type patientPostgresRepository struct {
	DB *sql.DB
}

func NewPatientPostgresRepository(db *sql.DB) PatientRepository {
	return &patientPostgresRepository{
		DB: db,
	}
}

func (repo *patientPostgresRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	var patientID string

	err := repo.DB.QueryRowContext(ctx, queries.InsertPatient,
		patient.ClinicID,
		patient.FirstName,
		patient.LastName,
		patient.BirthDate,
		patient.Sex,
		patient.Phone,
		patient.Email,
		patient.InsuranceProvider,
		patient.InsuranceNumber,
		patient.CreatedBy,
	).Scan(&patientID)
	if err != nil {
		return "", exceptions.ErrPostgresDBInsertData(err)
	}

	return patientID, nil
}

func (repo *patientPostgresRepository) FindByID(ctx context.Context, patientID, clinicID string) (*models.Patient, error) {
	var patient models.Patient

	err := repo.DB.QueryRowContext(ctx, queries.GetPatientByID, patientID, clinicID).Scan(
		&patient.ID,
		&patient.ClinicID,
		&patient.FirstName,
		&patient.LastName,
		&patient.BirthDate,
		&patient.Sex,
		&patient.Phone,
		&patient.Email,
		&patient.InsuranceProvider,
		&patient.InsuranceNumber,
		&patient.CreatedBy,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return &patient, nil
}

func (repo *patientPostgresRepository) FindAllByClinic(ctx context.Context, clinicID, search string, pagination *requests.Pagination) ([]models.Patient, error) {
	offset := (pagination.Page - 1) * pagination.PageSize

	rows, err := repo.DB.QueryContext(ctx, queries.GetPatientsByClinic, clinicID, search, pagination.PageSize, offset)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	patients := make([]models.Patient, 0)
	for rows.Next() {
		var patient models.Patient
		err := rows.Scan(
			&patient.ID,
			&patient.ClinicID,
			&patient.FirstName,
			&patient.LastName,
			&patient.BirthDate,
			&patient.Sex,
			&patient.Phone,
			&patient.Email,
			&patient.InsuranceProvider,
			&patient.InsuranceNumber,
			&patient.CreatedBy,
			&patient.CreatedAt,
			&patient.UpdatedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		patients = append(patients, patient)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return patients, nil
}

func (repo *patientPostgresRepository) CountByClinic(ctx context.Context, clinicID, search string) (int, error) {
	var total int

	err := repo.DB.QueryRowContext(ctx, queries.CountPatientsByClinic, clinicID, search).Scan(&total)
	if err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}

	return total, nil
}

func (repo *patientPostgresRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	result, err := repo.DB.ExecContext(ctx, queries.UpdatePatient,
		patient.ID,
		patient.ClinicID,
		patient.FirstName,
		patient.LastName,
		patient.BirthDate,
		patient.Sex,
		patient.Phone,
		patient.Email,
		patient.InsuranceProvider,
		patient.InsuranceNumber,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		return exceptions.ErrPatientNotFound(nil)
	}

	return nil
}

func (repo *patientPostgresRepository) DeletePatient(ctx context.Context, patientID, clinicID string) error {
	result, err := repo.DB.ExecContext(ctx, queries.DeletePatient, patientID, clinicID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrPatientNotFound(nil)
	}

	return nil
}
