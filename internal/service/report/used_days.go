package report

import (
	"fmt"
	"image"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/branding"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"
	"github.com/xuri/excelize/v2"
)

const (
	usedDaysHeaderRow    = 4
	usedDaysFirstDataRow = 5
)

var usedDaysHeaders = []string{"Date", "ID", "Employee", "Department", "Position"}

// dateFills returns the palette index of each row. The index flips whenever the
// date differs from the previous row, so days read as alternating bands.
func dateFills(rows []usedDayRow) []int {
	fills := make([]int, len(rows))
	current := 0
	for i, row := range rows {
		if i > 0 && !row.Date.Equal(rows[i-1].Date) {
			current = 1 - current
		}
		fills[i] = current
	}
	return fills
}

// buildUsedDaysWorkbook writes one sheet per year. Rows 1 to 3 carry the logo and
// title, the header sits on row 4.
func buildUsedDaysWorkbook(f *excelize.File, sheets []usedDaysSheet, logo image.Image) error {
	st, err := newStyles(f)
	if err != nil {
		return err
	}

	for i, sheet := range sheets {
		name := yearSheetName(sheet.Year)
		if err := addSheet(f, name, i == 0); err != nil {
			return fmt.Errorf("sheet %s: %w", name, err)
		}

		for row := 1; row < usedDaysHeaderRow; row++ {
			if err := f.SetRowHeight(name, row, 15); err != nil {
				return err
			}
		}
		if err := branding.Embed(f, logo, branding.Placement{
			Sheet: name,
			Cell:  "A1",
			Box:   branding.DetailBox,
		}); err != nil {
			return err
		}
		if err := f.SetCellValue(name, "C2", fmt.Sprintf("Vacation days taken in %d", sheet.Year)); err != nil {
			return err
		}
		if err := f.SetCellStyle(name, "C2", "C2", st.title); err != nil {
			return err
		}

		if err := writeHeader(f, name, usedDaysHeaderRow, usedDaysHeaders, st.header); err != nil {
			return fmt.Errorf("sheet %s header: %w", name, err)
		}

		fills := dateFills(sheet.Rows)
		for r, row := range sheet.Rows {
			rowNum := usedDaysFirstDataRow + r
			values := []interface{}{
				row.Date.Format(validator.DateLayout),
				row.Code,
				row.Name,
				row.Department,
				row.Position,
			}
			if err := writeRow(f, name, rowNum, values); err != nil {
				return fmt.Errorf("sheet %s row %d: %w", name, rowNum, err)
			}
			style := st.palette[fills[r]]
			if err := styleRange(f, name, 1, rowNum, len(usedDaysHeaders), rowNum, style); err != nil {
				return fmt.Errorf("sheet %s row %d fill: %w", name, rowNum, err)
			}
		}

		if err := f.SetColWidth(name, "A", "B", 12); err != nil {
			return err
		}
		if err := f.SetColWidth(name, "C", "E", 28); err != nil {
			return err
		}
		if err := freezeAbove(f, name, 1, usedDaysFirstDataRow); err != nil {
			return fmt.Errorf("sheet %s panes: %w", name, err)
		}
	}

	return nil
}
