package report

import (
	"fmt"
	"image"
	"time"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/vacation"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/branding"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheetName    = "Summary"
	summaryYearRow      = 4
	summaryHeaderRow    = 5
	summaryFirstDataRow = 6
	// summaryFirstBlockCol is the Years column of the first block, its spacer sits just before.
	summaryFirstBlockCol = 7
	summaryBlockWidth    = 6
	// summaryLogoOffsetX nudges the logo right of A1, which also enlarges it.
	summaryLogoOffsetX = 10
)

var (
	summaryLeadingHeaders = []string{"ID", "Employee", "Department", "Position", "Hire Date"}
	summaryBlockHeaders   = []string{"Years", "Vac", "Used", "Rest", "Acc. Disp."}
)

// yearBlock locates the columns of one report year on the summary sheet.
type yearBlock struct {
	Year      int
	StartCol  int
	IsCurrent bool
}

func (b yearBlock) spacerCol() int { return b.StartCol - 1 }
func (b yearBlock) usedCol() int   { return b.StartCol + 2 }
func (b yearBlock) restCol() int   { return b.StartCol + 3 }
func (b yearBlock) endCol() int    { return b.StartCol + len(summaryBlockHeaders) - 1 }

func yearBlocks(years []int, currentYear int) []yearBlock {
	blocks := make([]yearBlock, 0, len(years))
	for i, year := range years {
		blocks = append(blocks, yearBlock{
			Year:      year,
			StartCol:  summaryFirstBlockCol + i*summaryBlockWidth,
			IsCurrent: year == currentYear,
		})
	}
	return blocks
}

type cellFill int

const (
	fillNone cellFill = iota
	fillGreen
	fillGray
	fillOrange
)

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func countFill(value int) cellFill {
	switch {
	case value > 0:
		return fillGreen
	case value == 0:
		return fillGray
	}
	return fillNone
}

// usedFill flags days taken in the current year during the first year of service by
// employees already hired as of today.
func usedFill(block yearBlock, rec vacation.YearRecord, hireDate, today time.Time) cellFill {
	fill := countFill(rec.UsedDays)
	if fill == fillGreen && block.IsCurrent && rec.YearsPassed == 1 && !dateOnly(hireDate).After(dateOnly(today)) {
		return fillOrange
	}
	return fill
}

func restFill(rec vacation.YearRecord) cellFill {
	return countFill(rec.RemainingDays)
}

func (s *styles) fillStyle(fill cellFill) int {
	switch fill {
	case fillGreen:
		return s.green
	case fillGray:
		return s.gray
	case fillOrange:
		return s.orange
	}
	return s.border
}

// buildSummaryWorkbook writes a single sheet: logo and title on rows 1 to 3, merged
// year captions on row 4, headers on row 5 and one employee per row below.
func buildSummaryWorkbook(f *excelize.File, blocks []yearBlock, rows []summaryRow, logo image.Image, today time.Time) error {
	st, err := newStyles(f)
	if err != nil {
		return err
	}
	name := summarySheetName
	if err := addSheet(f, name, true); err != nil {
		return err
	}

	if err := branding.Embed(f, logo, branding.Placement{
		Sheet:   name,
		Cell:    "A1",
		Box:     branding.SummaryBox,
		OffsetX: summaryLogoOffsetX,
	}); err != nil {
		return err
	}
	if len(blocks) > 0 {
		title := fmt.Sprintf("Vacation summary %d - %d", blocks[0].Year, blocks[len(blocks)-1].Year)
		if err := f.SetCellValue(name, "D2", title); err != nil {
			return err
		}
		if err := f.SetCellStyle(name, "D2", "D2", st.title); err != nil {
			return err
		}
	}

	if err := writeSummaryHeaders(f, name, blocks, st); err != nil {
		return err
	}

	for r, row := range rows {
		rowNum := summaryFirstDataRow + r
		if err := writeSummaryRow(f, name, rowNum, blocks, row, st, today); err != nil {
			return fmt.Errorf("row %d: %w", rowNum, err)
		}
	}

	if err := f.SetColWidth(name, "A", "A", 10); err != nil {
		return err
	}
	if err := f.SetColWidth(name, "B", "D", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(name, "E", "E", 12); err != nil {
		return err
	}
	for _, block := range blocks {
		spacer, err := columnName(block.spacerCol())
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, spacer, spacer, 2); err != nil {
			return err
		}
	}
	return freezeAbove(f, name, len(summaryLeadingHeaders)+1, summaryFirstDataRow)
}

func writeSummaryHeaders(f *excelize.File, sheet string, blocks []yearBlock, st *styles) error {
	if err := writeHeader(f, sheet, summaryHeaderRow, summaryLeadingHeaders, st.header); err != nil {
		return err
	}

	for _, block := range blocks {
		start, err := cellName(block.StartCol, summaryYearRow)
		if err != nil {
			return fmt.Errorf("year %d: %w", block.Year, err)
		}
		end, err := cellName(block.endCol(), summaryYearRow)
		if err != nil {
			return fmt.Errorf("year %d: %w", block.Year, err)
		}
		if err := f.SetCellValue(sheet, start, block.Year); err != nil {
			return err
		}
		if err := f.MergeCell(sheet, start, end); err != nil {
			return fmt.Errorf("merge year %d: %w", block.Year, err)
		}
		if err := f.SetCellStyle(sheet, start, end, st.header); err != nil {
			return err
		}

		for i, header := range summaryBlockHeaders {
			cell, err := cellName(block.StartCol+i, summaryHeaderRow)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, header); err != nil {
				return err
			}
		}
		if err := styleRange(f, sheet, block.StartCol, summaryHeaderRow, block.endCol(), summaryHeaderRow, st.header); err != nil {
			return err
		}
	}
	return nil
}

func writeSummaryRow(f *excelize.File, sheet string, rowNum int, blocks []yearBlock, row summaryRow, st *styles, today time.Time) error {
	leading := []interface{}{
		row.Code,
		row.Name,
		row.Department,
		row.Position,
		row.HireDate.Format(validator.DateLayout),
	}
	if err := writeRow(f, sheet, rowNum, leading); err != nil {
		return err
	}
	if err := styleRange(f, sheet, 1, rowNum, len(leading), rowNum, st.border); err != nil {
		return err
	}

	for i, block := range blocks {
		if i >= len(row.Records) {
			break
		}
		rec := row.Records[i]
		values := []interface{}{
			rec.YearsPassed,
			rec.EntitledDays,
			rec.UsedDays,
			rec.RemainingDays,
			rec.AccumulatedAvailableDays,
		}
		for c, v := range values {
			cell, err := cellName(block.StartCol+c, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		if err := styleRange(f, sheet, block.StartCol, rowNum, block.endCol(), rowNum, st.border); err != nil {
			return err
		}

		used, rest := block.usedCol(), block.restCol()
		if err := styleRange(f, sheet, used, rowNum, used, rowNum, st.fillStyle(usedFill(block, rec, row.HireDate, today))); err != nil {
			return err
		}
		if err := styleRange(f, sheet, rest, rowNum, rest, rowNum, st.fillStyle(restFill(rec))); err != nil {
			return err
		}
	}
	return nil
}
