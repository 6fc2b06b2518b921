package models

import "time"

// TussCode is a per-clinic insurance billing procedure code (TUSS is the
// Brazilian unified health procedure terminology).
type TussCode struct {
	ID                string    `json:"id"`
	ClinicID          string    `json:"clinic_id"`
	Code              string    `json:"code"`
	Description       string    `json:"description"`
	InsuranceProvider string    `json:"insurance_provider"`
	Price             float64   `json:"price"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
