package queries

const (
	InsertTussCode = `
		INSERT INTO tuss_codes (clinic_id, code, description, insurance_provider, price, active)
		VALUES ($1, $2, $3, $4, $5, true)
		RETURNING id
	`

	GetActiveTussCodesByClinic = `
		SELECT id, clinic_id, code, description, insurance_provider, price, active, created_at, updated_at
		FROM tuss_codes
		WHERE clinic_id = $1 AND active = true
		ORDER BY code
	`

	DeactivateTussCode = `
		UPDATE tuss_codes
		SET active = false, updated_at = now()
		WHERE id = $1 AND clinic_id = $2 AND active = true
	`
)
