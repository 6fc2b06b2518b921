package responses

type ProvisionClinicWithAdmin struct {
	UserID          string `json:"user_id"`
	ClinicID        string `json:"clinic_id"`
	Email           string `json:"email"`
	DefaultPassword string `json:"default_password"`
}

type AssociateStaff struct {
	UserID      string `json:"user_id"`
	ClinicID    string `json:"clinic_id"`
	Reactivated bool   `json:"reactivated"`
	// DefaultPassword is set only when a new identity was created.
	DefaultPassword string `json:"default_password,omitempty"`
}
