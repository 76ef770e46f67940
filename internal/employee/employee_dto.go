package employee

import "encoding/json"

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

type CreateEmployeeRequest struct {
	NIP        string          `json:"nip" validate:"required,max=20"`
	FullName   string          `json:"nama_lengkap" validate:"required,max=100"`
	Email      string          `json:"email" validate:"required,email,max=100"`
	Phone      *string         `json:"no_telepon" validate:"omitnil,max=15"`
	Position   string          `json:"jabatan" validate:"required,max=50"`
	Department string          `json:"departemen" validate:"required,max=50"`
	HireDate   string          `json:"tanggal_masuk" validate:"required,datetime=2006-01-02"`
	Salary     json.RawMessage `json:"gaji"`
	Status     string          `json:"status" validate:"omitempty,oneof=active inactive on_leave"`
	Address    *string         `json:"alamat"`
}

// UpdateEmployeeRequest carries a partial update; nil means "not supplied".
type UpdateEmployeeRequest struct {
	NIP        *string         `json:"nip" validate:"omitnil,min=1,max=20"`
	FullName   *string         `json:"nama_lengkap" validate:"omitnil,min=1,max=100"`
	Email      *string         `json:"email" validate:"omitnil,min=1,email,max=100"`
	Phone      *string         `json:"no_telepon" validate:"omitnil,max=15"`
	Position   *string         `json:"jabatan" validate:"omitnil,min=1,max=50"`
	Department *string         `json:"departemen" validate:"omitnil,min=1,max=50"`
	HireDate   *string         `json:"tanggal_masuk" validate:"omitnil,min=1,datetime=2006-01-02"`
	Salary     json.RawMessage `json:"gaji"`
	Status     *string         `json:"status" validate:"omitnil,oneof=active inactive on_leave"`
	Address    *string         `json:"alamat"`
}

func (r UpdateEmployeeRequest) IsEmpty() bool {
	return r.NIP == nil && r.FullName == nil && r.Email == nil && r.Phone == nil &&
		r.Position == nil && r.Department == nil && r.HireDate == nil &&
		isNullJSON(r.Salary) && r.Status == nil && r.Address == nil
}

func (r CreateEmployeeRequest) IsEmpty() bool {
	return r.NIP == "" && r.FullName == "" && r.Email == "" && r.Phone == nil &&
		r.Position == "" && r.Department == "" && r.HireDate == "" &&
		isNullJSON(r.Salary) && r.Status == "" && r.Address == nil
}

func isNullJSON(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

type EmployeeResponse struct {
	ID         uint    `json:"id"`
	NIP        string  `json:"nip"`
	FullName   string  `json:"nama_lengkap"`
	Email      string  `json:"email"`
	Phone      *string `json:"no_telepon"`
	Position   string  `json:"jabatan"`
	Department string  `json:"departemen"`
	HireDate   string  `json:"tanggal_masuk"`
	Salary     string  `json:"gaji"`
	Status     string  `json:"status"`
	Address    *string `json:"alamat"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type ListEmployeesResult struct {
	Employees []EmployeeResponse
	Total     int64
	Page      int
	Limit     int
}

type StatisticsResponse struct {
	Total        int64            `json:"total"`
	ByStatus     map[string]int64 `json:"by_status"`
	ByDepartment map[string]int64 `json:"by_department"`
}
