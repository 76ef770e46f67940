package apperror

import "github.com/go-playground/validator/v10"

// FirstPresenceError returns the first missing or supplied-but-empty field,
// or nil when every failure is a format failure.
func FirstPresenceError(errs validator.ValidationErrors) validator.FieldError {
	for _, e := range errs {
		if IsPresenceError(e) {
			return e
		}
	}
	return nil
}

// IsPresenceError reports whether e is a missing or supplied-but-empty failure.
func IsPresenceError(e validator.FieldError) bool {
	switch e.Tag() {
	case "required":
		return true
	case "min":
		// min=1 on a string is how supplied-but-empty is expressed for partial updates.
		return e.Param() == "1"
	}
	return false
}

// MapFieldError converts one validator failure into a field-level AppError.
// Field names are the json names, e.g. "Field nama_lengkap is required".
func MapFieldError(e validator.FieldError) error {
	switch {
	case IsPresenceError(e):
		return RequiredField(e.Field())
	case e.Tag() == "max":
		return FieldTooLong(e.Field(), e.Param())
	default:
		return InvalidField(e.Field())
	}
}
