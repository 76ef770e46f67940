package employee

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	exportSheet       = "Employees"
	ExportFileName    = "employees.xlsx"
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var exportColumns = []string{
	"id", "nip", "nama_lengkap", "email", "no_telepon", "jabatan", "departemen",
	"tanggal_masuk", "gaji", "status", "alamat", "created_at", "updated_at",
}

// headerLabel turns a column name into a sheet header: "nama_lengkap" -> "Nama Lengkap".
func headerLabel(column string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(column, "_", " "))
}

func exportRow(e EmployeeResponse) []interface{} {
	salary, err := decimal.NewFromString(e.Salary)
	var salaryCell interface{} = e.Salary
	if err == nil {
		salaryCell = salary.InexactFloat64()
	}
	return []interface{}{
		e.ID, e.NIP, e.FullName, e.Email, derefString(e.Phone), e.Position, e.Department,
		e.HireDate, salaryCell, e.Status, derefString(e.Address), e.CreatedAt, e.UpdatedAt,
	}
}

// BuildWorkbook renders employees into a single-sheet XLSX document.
func BuildWorkbook(employees []EmployeeResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := make([]interface{}, len(exportColumns))
	for i, column := range exportColumns {
		headers[i] = headerLabel(column)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range employees {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := exportRow(e)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write employee %s: %w", e.NIP, err)
		}
	}

	if err := f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
