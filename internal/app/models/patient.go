package models

import "time"

type Patient struct {
	ID                string    `json:"id"`
	ClinicID          string    `json:"clinic_id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	BirthDate         time.Time `json:"birth_date"`
	Sex               string    `json:"sex"`
	Phone             string    `json:"phone,omitempty"`
	Email             string    `json:"email,omitempty"`
	InsuranceProvider string    `json:"insurance_provider,omitempty"`
	InsuranceNumber   string    `json:"insurance_number,omitempty"`
	CreatedBy         string    `json:"created_by"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
