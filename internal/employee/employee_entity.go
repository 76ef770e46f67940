package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusOnLeave  = "on_leave"
)

type Employee struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	NIP        string          `gorm:"column:nip;size:20;not null;uniqueIndex:uq_employees_nip"`
	FullName   string          `gorm:"column:nama_lengkap;size:100;not null"`
	Email      string          `gorm:"column:email;size:100;not null;uniqueIndex:uq_employees_email"`
	Phone      *string         `gorm:"column:no_telepon;size:15"`
	Position   string          `gorm:"column:jabatan;size:50;not null"`
	Department string          `gorm:"column:departemen;size:50;not null;index:idx_employees_departemen"`
	HireDate   time.Time       `gorm:"column:tanggal_masuk;type:date;not null"`
	Salary     decimal.Decimal `gorm:"column:gaji;type:decimal(15,2);not null;check:chk_employees_gaji,gaji >= 0"`
	Status     string          `gorm:"column:status;size:20;not null;default:active;index:idx_employees_status;check:chk_employees_status,status IN ('active','inactive','on_leave')"`
	Address    *string         `gorm:"column:alamat;type:text"`
	CreatedAt  time.Time       `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;not null;autoUpdateTime:false"`
	// DeletedAt is kept for schema compatibility; deletes are hard and never set it.
	DeletedAt *time.Time `gorm:"column:deleted_at"`
}

func (Employee) TableName() string { return "employees" }
