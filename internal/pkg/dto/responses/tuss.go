package responses

type TussCode struct {
	ID                string  `json:"id"`
	ClinicID          string  `json:"clinic_id"`
	Code              string  `json:"code"`
	Description       string  `json:"description"`
	InsuranceProvider string  `json:"insurance_provider"`
	Price             float64 `json:"price"`
	Active            bool    `json:"active"`
}
