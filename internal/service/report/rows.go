package report

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/vacation"
)

// employeeColumns are the identity cells every report repeats for an employee.
type employeeColumns struct {
	Code       string
	Name       string
	Department string
	Position   string
	Company    string
	HireDate   time.Time
}

type detailRow struct {
	employeeColumns
	Record vacation.YearRecord
}

type detailSheet struct {
	Year int
	Rows []detailRow
}

type usedDayRow struct {
	Date time.Time
	employeeColumns
}

type usedDaysSheet struct {
	Year int
	Rows []usedDayRow
}

type summaryRow struct {
	employeeColumns
	// Records holds one record per report year, in year order.
	Records []vacation.YearRecord
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func columnsOf(emp employee.EmployeeWithDetails) employeeColumns {
	return employeeColumns{
		Code:       emp.Code,
		Name:       emp.FullName(),
		Department: deref(emp.DepartmentName),
		Position:   deref(emp.PositionName),
		Company:    deref(emp.BusinessUnitName),
		HireDate:   emp.HireDate,
	}
}

// recordFor returns the record of the i-th report year, or a zero record when the
// calculator produced none.
func recordFor(data reportData, emp employee.EmployeeWithDetails, i int) vacation.YearRecord {
	if records := data.records[emp.ID]; i < len(records) {
		return records[i]
	}
	return vacation.YearRecord{Year: data.years[i]}
}

// detailRows returns one sheet per year with employees in directory order.
func detailRows(data reportData) []detailSheet {
	sheets := make([]detailSheet, 0, len(data.years))
	for i, year := range data.years {
		rows := make([]detailRow, 0, len(data.employees))
		for _, emp := range data.employees {
			rows = append(rows, detailRow{
				employeeColumns: columnsOf(emp),
				Record:          recordFor(data, emp, i),
			})
		}
		sheets = append(sheets, detailSheet{Year: year, Rows: rows})
	}
	return sheets
}

// usedDayRows returns one sheet per year with a row per vacation day, ordered by date
// and then by employee code.
func usedDayRows(data reportData) []usedDaysSheet {
	sheets := make([]usedDaysSheet, 0, len(data.years))
	for i, year := range data.years {
		rows := []usedDayRow{}
		for _, emp := range data.employees {
			columns := columnsOf(emp)
			for _, d := range recordFor(data, emp, i).UsedDates {
				rows = append(rows, usedDayRow{Date: d, employeeColumns: columns})
			}
		}
		sort.SliceStable(rows, func(a, b int) bool {
			if !rows[a].Date.Equal(rows[b].Date) {
				return rows[a].Date.Before(rows[b].Date)
			}
			return rows[a].Code < rows[b].Code
		})
		sheets = append(sheets, usedDaysSheet{Year: year, Rows: rows})
	}
	return sheets
}

func summaryRows(data reportData) []summaryRow {
	rows := make([]summaryRow, 0, len(data.employees))
	for _, emp := range data.employees {
		records := make([]vacation.YearRecord, 0, len(data.years))
		for i := range data.years {
			records = append(records, recordFor(data, emp, i))
		}
		rows = append(rows, summaryRow{employeeColumns: columnsOf(emp), Records: records})
	}
	return rows
}
