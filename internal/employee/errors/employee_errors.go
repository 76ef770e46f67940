package employeeerrors

import (
	"go-employees/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrNIPAlreadyExists = apperror.New(
		apperror.CodeValidation,
		"NIP already exists",
		http.StatusBadRequest,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeValidation,
		"Email already exists",
		http.StatusBadRequest,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeValidation,
		"Invalid email format",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeValidation,
		"Invalid status value",
		http.StatusBadRequest,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeValidation,
		"Salary must be a non-negative number",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeValidation,
		"Invalid tanggal_masuk format. Use YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmptyBody = apperror.ErrEmptyBody
)
