package employee

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	employeeerrors "go-employees/internal/employee/errors"
	"go-employees/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	apperror.UseJSONFieldNames(v)
	return v
}

// employeeChanges is a validated update: the request plus its parsed values.
type employeeChanges struct {
	req      UpdateEmployeeRequest
	salary   *decimal.Decimal
	hireDate *time.Time
}

// validateCreate checks presence first, then formats, and returns the record to insert.
func validateCreate(req CreateEmployeeRequest, now time.Time) (*Employee, error) {
	if req.IsEmpty() {
		return nil, employeeerrors.ErrEmptyBody
	}

	errs := structErrors(req)
	if e := apperror.FirstPresenceError(errs); e != nil {
		return nil, apperror.MapFieldError(e)
	}

	salary, supplied, salaryErr := parseSalary(req.Salary)
	if !supplied {
		return nil, apperror.RequiredField("gaji")
	}
	if len(errs) > 0 {
		return nil, mapFieldError(errs[0])
	}
	if salaryErr != nil {
		return nil, salaryErr
	}

	hireDate, err := time.Parse(dateLayout, req.HireDate)
	if err != nil {
		return nil, employeeerrors.ErrInvalidHireDate
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	return &Employee{
		NIP:        req.NIP,
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      emptyToNil(req.Phone),
		Position:   req.Position,
		Department: req.Department,
		HireDate:   hireDate,
		Salary:     salary,
		Status:     status,
		Address:    emptyToNil(req.Address),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// validateUpdate checks only the supplied fields.
func validateUpdate(req UpdateEmployeeRequest) (employeeChanges, error) {
	if req.IsEmpty() {
		return employeeChanges{}, employeeerrors.ErrEmptyBody
	}

	errs := structErrors(req)
	if e := apperror.FirstPresenceError(errs); e != nil {
		return employeeChanges{}, apperror.MapFieldError(e)
	}

	salary, supplied, salaryErr := parseSalary(req.Salary)
	if !supplied && !isNullJSON(req.Salary) {
		return employeeChanges{}, apperror.RequiredField("gaji")
	}
	if len(errs) > 0 {
		return employeeChanges{}, mapFieldError(errs[0])
	}
	if salaryErr != nil {
		return employeeChanges{}, salaryErr
	}

	changes := employeeChanges{req: req}
	if supplied {
		changes.salary = &salary
	}
	if req.HireDate != nil {
		hireDate, err := time.Parse(dateLayout, *req.HireDate)
		if err != nil {
			return employeeChanges{}, employeeerrors.ErrInvalidHireDate
		}
		changes.hireDate = &hireDate
	}
	return changes, nil
}

func (c employeeChanges) apply(empl *Employee, now time.Time) {
	if c.req.NIP != nil {
		empl.NIP = *c.req.NIP
	}
	if c.req.FullName != nil {
		empl.FullName = *c.req.FullName
	}
	if c.req.Email != nil {
		empl.Email = *c.req.Email
	}
	if c.req.Phone != nil {
		empl.Phone = emptyToNil(c.req.Phone)
	}
	if c.req.Position != nil {
		empl.Position = *c.req.Position
	}
	if c.req.Department != nil {
		empl.Department = *c.req.Department
	}
	if c.hireDate != nil {
		empl.HireDate = *c.hireDate
	}
	if c.salary != nil {
		empl.Salary = *c.salary
	}
	if c.req.Status != nil {
		empl.Status = *c.req.Status
	}
	if c.req.Address != nil {
		empl.Address = emptyToNil(c.req.Address)
	}
	empl.UpdatedAt = now
}

func structErrors(s any) validator.ValidationErrors {
	err := validate.Struct(s)
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return errs
	}
	return nil
}

func mapFieldError(e validator.FieldError) error {
	switch e.Tag() {
	case "email":
		return employeeerrors.ErrInvalidEmail
	case "oneof":
		if e.Field() == "status" {
			return employeeerrors.ErrInvalidStatus
		}
	case "datetime":
		return employeeerrors.ErrInvalidHireDate
	}
	return apperror.MapFieldError(e)
}

// parseSalary accepts a JSON number or a numeric string. supplied is false when
// the value is absent, null or an empty string.
func parseSalary(raw json.RawMessage) (decimal.Decimal, bool, error) {
	if isNullJSON(raw) {
		return decimal.Zero, false, nil
	}

	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, true, employeeerrors.ErrInvalidSalary
		}
		text = strings.TrimSpace(s)
		if text == "" {
			return decimal.Zero, false, nil
		}
	}

	d, err := decimal.NewFromString(text)
	if err != nil || d.IsNegative() {
		return decimal.Zero, true, employeeerrors.ErrInvalidSalary
	}
	return d.Round(2), true, nil
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
