package queries

const (
	InsertPatient = `
		INSERT INTO patients (clinic_id, first_name, last_name, birth_date, sex, phone, email,
			insurance_provider, insurance_number, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	GetPatientByID = `
		SELECT id, clinic_id, first_name, last_name, birth_date, sex, COALESCE(phone, ''), COALESCE(email, ''),
			COALESCE(insurance_provider, ''), COALESCE(insurance_number, ''), created_by, created_at, updated_at
		FROM patients
		WHERE id = $1 AND clinic_id = $2
	`

	GetPatientsByClinic = `
		SELECT id, clinic_id, first_name, last_name, birth_date, sex, COALESCE(phone, ''), COALESCE(email, ''),
			COALESCE(insurance_provider, ''), COALESCE(insurance_number, ''), created_by, created_at, updated_at
		FROM patients
		WHERE clinic_id = $1
			AND ($2 = '' OR first_name ILIKE '%' || $2 || '%' OR last_name ILIKE '%' || $2 || '%')
		ORDER BY first_name, last_name
		LIMIT $3 OFFSET $4
	`

	CountPatientsByClinic = `
		SELECT count(*)
		FROM patients
		WHERE clinic_id = $1
			AND ($2 = '' OR first_name ILIKE '%' || $2 || '%' OR last_name ILIKE '%' || $2 || '%')
	`

	UpdatePatient = `
		UPDATE patients
		SET first_name = $3, last_name = $4, birth_date = $5, sex = $6, phone = $7, email = $8,
			insurance_provider = $9, insurance_number = $10, updated_at = now()
		WHERE id = $1 AND clinic_id = $2
	`

	DeletePatient = `
		DELETE FROM patients
		WHERE id = $1 AND clinic_id = $2
	`
)
