package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrEmptyBody = New(
		CodeInvalidInput,
		"Request body is required",
		http.StatusBadRequest,
	)
)

// RequiredField reports a missing or empty field, e.g. "Field nip is required".
func RequiredField(field string) *AppError {
	return New(
		CodeValidation,
		fmt.Sprintf("Field %s is required", field),
		http.StatusBadRequest,
	)
}

// InvalidField reports a field that is present but malformed.
func InvalidField(field string) *AppError {
	return New(
		CodeValidation,
		fmt.Sprintf("Field %s is invalid", field),
		http.StatusBadRequest,
	)
}

// FieldTooLong reports a field exceeding its column length.
func FieldTooLong(field, max string) *AppError {
	return New(
		CodeValidation,
		fmt.Sprintf("Field %s must be at most %s characters", field, max),
		http.StatusBadRequest,
	)
}
