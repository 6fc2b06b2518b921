package queries

const (
	GetProfileByEmail = `
		SELECT id, email, first_name, last_name, COALESCE(phone, ''), COALESCE(crm, ''), role, created_at, updated_at
		FROM profiles
		WHERE lower(email) = lower($1)
	`

	GetProfileByID = `
		SELECT id, email, first_name, last_name, COALESCE(phone, ''), COALESCE(crm, ''), role, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`
)
