package utils

import (
	"cardioflow-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("role", validateStaffRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateStaffRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch value {
	case constvars.RoleClinicAdmin, constvars.RoleDoctor, constvars.RoleReceptionist:
		return true
	}
	return false
}
