package responses

type Patient struct {
	ID                string `json:"id"`
	ClinicID          string `json:"clinic_id"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	BirthDate         string `json:"birth_date"`
	Age               int    `json:"age"`
	Sex               string `json:"sex"`
	Phone             string `json:"phone,omitempty"`
	Email             string `json:"email,omitempty"`
	InsuranceProvider string `json:"insurance_provider,omitempty"`
	InsuranceNumber   string `json:"insurance_number,omitempty"`
}
