package models

import "time"

// ClinicStaff links a profile to a clinic. Rows are soft-deleted through the
// Active flag so a former member can be reactivated without a new identity.
type ClinicStaff struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	ClinicID  string    `json:"clinic_id"`
	Role      string    `json:"role"`
	Title     string    `json:"title,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
