package queries

const (
	InsertClinic = `
		INSERT INTO clinics (name, trading_name, cnpj, city, address, phone, email, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	DeleteClinic = `
		DELETE FROM clinics
		WHERE id = $1
	`

	GetClinicByID = `
		SELECT id, name, COALESCE(trading_name, ''), COALESCE(cnpj, ''), city, address,
			COALESCE(phone, ''), COALESCE(email, ''), created_by, created_at, updated_at
		FROM clinics
		WHERE id = $1
	`

	GetClinicsByProfile = `
		SELECT c.id, c.name, COALESCE(c.trading_name, ''), COALESCE(c.cnpj, ''), c.city, c.address,
			COALESCE(c.phone, ''), COALESCE(c.email, ''), c.created_by, c.created_at, c.updated_at
		FROM clinics c
		JOIN clinic_staff cs ON cs.clinic_id = c.id
		WHERE cs.profile_id = $1 AND cs.active = true
		ORDER BY c.name
	`

	GetAllClinics = `
		SELECT id, name, COALESCE(trading_name, ''), COALESCE(cnpj, ''), city, address,
			COALESCE(phone, ''), COALESCE(email, ''), created_by, created_at, updated_at
		FROM clinics
		ORDER BY name
	`
)
