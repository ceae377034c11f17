package report

import (
	"fmt"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"
	"github.com/xuri/excelize/v2"
)

const detailDateColumns = 15

var detailFixedHeaders = []string{
	"ID", "Employee", "Department", "Position", "Hire Date",
	"Employer Company", "Years", "Vac.", "Used", "Rest.",
}

func detailHeaders() []string {
	headers := append([]string{}, detailFixedHeaders...)
	for i := 1; i <= detailDateColumns; i++ {
		headers = append(headers, fmt.Sprintf("Date %d", i))
	}
	return headers
}

// buildDetailWorkbook writes one sheet per year: header on row 1, one employee per row.
// Dates beyond the fifteenth are not listed.
func buildDetailWorkbook(f *excelize.File, sheets []detailSheet) error {
	st, err := newStyles(f)
	if err != nil {
		return err
	}
	headers := detailHeaders()

	for i, sheet := range sheets {
		name := yearSheetName(sheet.Year)
		if err := addSheet(f, name, i == 0); err != nil {
			return fmt.Errorf("sheet %s: %w", name, err)
		}
		if err := writeHeader(f, name, 1, headers, st.header); err != nil {
			return fmt.Errorf("sheet %s header: %w", name, err)
		}

		for r, row := range sheet.Rows {
			values := []interface{}{
				row.Code,
				row.Name,
				row.Department,
				row.Position,
				row.HireDate.Format(validator.DateLayout),
				row.Company,
				row.Record.YearsPassed,
				row.Record.EntitledDays,
				row.Record.UsedDays,
				row.Record.RemainingDays,
			}
			for d, used := range row.Record.UsedDates {
				if d == detailDateColumns {
					break
				}
				values = append(values, used.Format(validator.DateLayout))
			}
			if err := writeRow(f, name, r+2, values); err != nil {
				return fmt.Errorf("sheet %s row %d: %w", name, r+2, err)
			}
		}

		if len(sheet.Rows) > 0 {
			if err := styleRange(f, name, 1, 2, len(headers), len(sheet.Rows)+1, st.border); err != nil {
				return fmt.Errorf("sheet %s borders: %w", name, err)
			}
		}

		if err := f.SetColWidth(name, "A", "A", 10); err != nil {
			return err
		}
		if err := f.SetColWidth(name, "B", "D", 28); err != nil {
			return err
		}
		if err := f.SetColWidth(name, "E", "F", 16); err != nil {
			return err
		}
		lastCol, err := columnName(len(headers))
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, "K", lastCol, 12); err != nil {
			return err
		}
		if err := freezeAbove(f, name, 1, 2); err != nil {
			return fmt.Errorf("sheet %s panes: %w", name, err)
		}
	}

	return nil
}
