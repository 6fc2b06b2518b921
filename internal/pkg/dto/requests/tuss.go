package requests

type CreateTussCode struct {
	Code              string  `json:"code" validate:"required,max=20"`
	Description       string  `json:"description" validate:"required,max=500"`
	InsuranceProvider string  `json:"insurance_provider" validate:"required,max=200"`
	Price             float64 `json:"price" validate:"gte=0"`
}
