package constvars

// Validation messages mapper, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"uuid":     "must be a valid UUID",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"numeric":  "must be a number",
	"datetime": "must be a valid date",
	"role":     "must be a known staff role",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}
