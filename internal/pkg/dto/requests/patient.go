package requests

type CreatePatient struct {
	FirstName         string `json:"first_name" validate:"required,max=100"`
	LastName          string `json:"last_name" validate:"required,max=100"`
	BirthDate         string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Sex               string `json:"sex" validate:"required,oneof=male female other"`
	Phone             string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Email             string `json:"email,omitempty" validate:"omitempty,email"`
	InsuranceProvider string `json:"insurance_provider,omitempty" validate:"omitempty,max=200"`
	InsuranceNumber   string `json:"insurance_number,omitempty" validate:"omitempty,max=64"`
}

type UpdatePatient struct {
	FirstName         string `json:"first_name" validate:"required,max=100"`
	LastName          string `json:"last_name" validate:"required,max=100"`
	BirthDate         string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Sex               string `json:"sex" validate:"required,oneof=male female other"`
	Phone             string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Email             string `json:"email,omitempty" validate:"omitempty,email"`
	InsuranceProvider string `json:"insurance_provider,omitempty" validate:"omitempty,max=200"`
	InsuranceNumber   string `json:"insurance_number,omitempty" validate:"omitempty,max=64"`
}
