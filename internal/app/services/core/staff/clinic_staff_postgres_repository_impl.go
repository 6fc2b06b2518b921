package staff

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/dto/responses"
	"cardioflow-service/internal/pkg/exceptions"
	"cardioflow-service/internal/pkg/queries"
	"context"
	"database/sql"
)

type clinicStaffPostgresRepository struct {
	DB *sql.DB
}

func NewClinicStaffPostgresRepository(db *sql.DB) ClinicStaffRepository {
	return &clinicStaffPostgresRepository{
		DB: db,
	}
}

func (repo *clinicStaffPostgresRepository) CreateMembership(ctx context.Context, membership *models.ClinicStaff) (string, error) {
	var id string
	err := repo.DB.QueryRowContext(ctx, queries.InsertClinicStaff,
		membership.ProfileID,
		membership.ClinicID,
		membership.Role,
		membership.Title,
		membership.Bio,
		membership.IsAdmin,
	).Scan(&id)
	if err != nil {
		return "", exceptions.ErrPostgresDBInsertData(err)
	}
	return id, nil
}

func (repo *clinicStaffPostgresRepository) FindMembership(ctx context.Context, profileID, clinicID string) (*models.ClinicStaff, error) {
	var membership models.ClinicStaff

	err := repo.DB.QueryRowContext(ctx, queries.GetMembership, profileID, clinicID).Scan(
		&membership.ID,
		&membership.ProfileID,
		&membership.ClinicID,
		&membership.Role,
		&membership.Title,
		&membership.Bio,
		&membership.IsAdmin,
		&membership.Active,
		&membership.CreatedAt,
		&membership.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return &membership, nil
}

func (repo *clinicStaffPostgresRepository) ReactivateMembership(ctx context.Context, membershipID, role, title, bio string, isAdmin bool) error {
	_, err := repo.DB.ExecContext(ctx, queries.ReactivateClinicStaff, membershipID, role, title, bio, isAdmin)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (repo *clinicStaffPostgresRepository) DeactivateMembership(ctx context.Context, profileID, clinicID string) error {
	result, err := repo.DB.ExecContext(ctx, queries.DeactivateClinicStaff, profileID, clinicID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		return exceptions.ErrStaffMemberNotFound(nil)
	}
	return nil
}

func (repo *clinicStaffPostgresRepository) FindActiveStaffByClinic(ctx context.Context, clinicID string) ([]responses.StaffMember, error) {
	rows, err := repo.DB.QueryContext(ctx, queries.GetActiveStaffByClinic, clinicID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var members []responses.StaffMember
	for rows.Next() {
		var member responses.StaffMember
		err := rows.Scan(
			&member.UserID,
			&member.FirstName,
			&member.LastName,
			&member.Email,
			&member.Role,
			&member.Title,
			&member.IsAdmin,
			&member.Active,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return members, nil
}
