package employee

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedRow struct {
	nip, name, email, phone, position, department, hireDate string
	salary                                                  int64
	status, address                                         string
}

var seedRows = []seedRow{
	{"EMP001", "Ahmad Wijaya", "ahmad.wijaya@company.com", "081234567890", "Software Engineer", "IT", "2023-01-15", 8000000, StatusActive, "Jl. Sudirman No. 123, Jakarta"},
	{"EMP002", "Siti Nurhaliza", "siti.nurhaliza@company.com", "081234567891", "HR Manager", "Human Resources", "2022-03-10", 12000000, StatusActive, "Jl. Thamrin No. 456, Jakarta"},
	{"EMP003", "Budi Santoso", "budi.santoso@company.com", "081234567892", "Marketing Specialist", "Marketing", "2023-06-20", 6000000, StatusActive, "Jl. Gatot Subroto No. 789, Jakarta"},
	{"EMP004", "Dewi Sartika", "dewi.sartika@company.com", "081234567893", "Accountant", "Finance", "2021-11-05", 7000000, StatusOnLeave, "Jl. Kuningan No. 321, Jakarta"},
	{"EMP005", "Rizki Pratama", "rizki.pratama@company.com", "081234567894", "Project Manager", "IT", "2020-08-12", 15000000, StatusActive, "Jl. Senayan No. 654, Jakarta"},
	{"EMP006", "Maya Putri", "maya.putri@company.com", "081234567895", "UI/UX Designer", "IT", "2023-09-01", 7500000, StatusActive, "Jl. Asia Afrika No. 111, Bandung"},
	{"EMP007", "Fajar Ramadhan", "fajar.ramadhan@company.com", "081234567896", "Sales Manager", "Sales", "2022-12-15", 11000000, StatusActive, "Jl. Diponegoro No. 222, Surabaya"},
	{"EMP008", "Nina Wati", "nina.wati@company.com", "081234567897", "Content Writer", "Marketing", "2024-01-10", 5500000, StatusActive, "Jl. Veteran No. 333, Jakarta"},
	{"EMP009", "Hendra Kusuma", "hendra.kusuma@company.com", "081234567898", "System Administrator", "IT", "2023-03-20", 8500000, StatusActive, "Jl. Pemuda No. 444, Jakarta"},
	{"EMP010", "Lina Wijaya", "lina.wijaya@company.com", "081234567899", "Customer Service", "Customer Support", "2024-02-01", 5000000, StatusActive, "Jl. Merdeka No. 555, Jakarta"},
	{"EMP011", "Rudi Hartono", "rudi.hartono@company.com", "081234567900", "Business Analyst", "IT", "2023-11-15", 9000000, StatusActive, "Jl. Sudirman No. 666, Jakarta"},
	{"EMP012", "Sari Indah", "sari.indah@company.com", "081234567901", "HR Staff", "Human Resources", "2024-03-01", 5500000, StatusActive, "Jl. Gatot Subroto No. 777, Jakarta"},
	{"EMP013", "Doni Pratama", "doni.pratama@company.com", "081234567902", "Network Engineer", "IT", "2023-07-20", 8000000, StatusOnLeave, "Jl. Thamrin No. 888, Jakarta"},
	{"EMP014", "Rina Melati", "rina.melati@company.com", "081234567903", "Finance Staff", "Finance", "2024-01-15", 6000000, StatusActive, "Jl. Kuningan No. 999, Jakarta"},
	{"EMP015", "Ahmad Hidayat", "ahmad.hidayat@company.com", "081234567904", "Quality Assurance", "IT", "2023-10-01", 7000000, StatusActive, "Jl. Senayan No. 1000, Jakarta"},
}

// AutoMigrate creates or updates the employees table with its unique
// indexes and check constraints.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Employee{})
}

// SeedEmployees returns the sample rows EMP001..EMP015.
func SeedEmployees(now time.Time) ([]Employee, error) {
	employees := make([]Employee, 0, len(seedRows))
	for _, r := range seedRows {
		hireDate, err := time.Parse(dateLayout, r.hireDate)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", r.nip, err)
		}
		phone, address := r.phone, r.address
		employees = append(employees, Employee{
			NIP:        r.nip,
			FullName:   r.name,
			Email:      r.email,
			Phone:      &phone,
			Position:   r.position,
			Department: r.department,
			HireDate:   hireDate,
			Salary:     decimal.NewFromInt(r.salary),
			Status:     r.status,
			Address:    &address,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	return employees, nil
}

// Seed inserts the sample rows, skipping any nip that already exists.
func Seed(db *gorm.DB, logger *zap.Logger) error {
	employees, err := SeedEmployees(time.Now().UTC().Truncate(time.Second))
	if err != nil {
		return err
	}

	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "nip"}},
		DoNothing: true,
	}).Create(&employees)
	if res.Error != nil {
		return fmt.Errorf("seed employees: %w", res.Error)
	}

	logger.Info("employees seeded", zap.Int64("inserted", res.RowsAffected), zap.Int("total", len(employees)))
	return nil
}
