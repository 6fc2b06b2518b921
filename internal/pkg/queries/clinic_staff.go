package queries

const (
	InsertClinicStaff = `
		INSERT INTO clinic_staff (profile_id, clinic_id, role, title, bio, is_admin, active)
		VALUES ($1, $2, $3, $4, $5, $6, true)
		RETURNING id
	`

	GetMembership = `
		SELECT id, profile_id, clinic_id, role, COALESCE(title, ''), COALESCE(bio, ''), is_admin, active, created_at, updated_at
		FROM clinic_staff
		WHERE profile_id = $1 AND clinic_id = $2
	`

	ReactivateClinicStaff = `
		UPDATE clinic_staff
		SET active = true, role = $2, title = $3, bio = $4, is_admin = $5, updated_at = now()
		WHERE id = $1
	`

	DeactivateClinicStaff = `
		UPDATE clinic_staff
		SET active = false, updated_at = now()
		WHERE profile_id = $1 AND clinic_id = $2 AND active = true
	`

	GetActiveStaffByClinic = `
		SELECT cs.profile_id, p.first_name, p.last_name, p.email, cs.role, COALESCE(cs.title, ''), cs.is_admin, cs.active
		FROM clinic_staff cs
		JOIN profiles p ON p.id = cs.profile_id
		WHERE cs.clinic_id = $1 AND cs.active = true
		ORDER BY p.first_name, p.last_name
	`
)
