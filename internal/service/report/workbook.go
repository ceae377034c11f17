package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const (
	colorHeader      = "1F4E78"
	colorHeaderFont  = "FFFFFF"
	colorBorder      = "000000"
	colorGreen       = "C6EFCE"
	colorGray        = "D9D9D9"
	colorOrange      = "F8CBAD"
	colorDatePrimary = "DDEBF7"
	colorDateAlt     = "FFF2CC"
)

// styles are registered once per workbook and shared by its sheets.
type styles struct {
	header  int
	title   int
	border  int
	green   int
	gray    int
	orange  int
	palette [2]int
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: colorBorder, Style: 1},
		{Type: "top", Color: colorBorder, Style: 1},
		{Type: "right", Color: colorBorder, Style: 1},
		{Type: "bottom", Color: colorBorder, Style: 1},
	}
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func newStyles(f *excelize.File) (*styles, error) {
	s := &styles{}
	var err error

	if s.header, err = f.NewStyle(&excelize.Style{
		Border:    thinBorders(),
		Fill:      solidFill(colorHeader),
		Font:      &excelize.Font{Bold: true, Color: colorHeaderFont},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	}); err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	if s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	}); err != nil {
		return nil, fmt.Errorf("title style: %w", err)
	}
	if s.border, err = f.NewStyle(&excelize.Style{Border: thinBorders()}); err != nil {
		return nil, fmt.Errorf("border style: %w", err)
	}

	fills := []struct {
		id    *int
		color string
	}{
		{&s.green, colorGreen},
		{&s.gray, colorGray},
		{&s.orange, colorOrange},
		{&s.palette[0], colorDatePrimary},
		{&s.palette[1], colorDateAlt},
	}
	for _, fill := range fills {
		if *fill.id, err = f.NewStyle(&excelize.Style{
			Border: thinBorders(),
			Fill:   solidFill(fill.color),
		}); err != nil {
			return nil, fmt.Errorf("fill style %s: %w", fill.color, err)
		}
	}

	return s, nil
}

// cellName converts 1-based coordinates to an A1 reference. Coordinates past the
// sheet bounds are reported as errors.
func cellName(col, row int) (string, error) {
	return excelize.CoordinatesToCellName(col, row)
}

func columnName(col int) (string, error) {
	return excelize.ColumnNumberToName(col)
}

// styleRange applies style to the rectangle between two 1-based corners.
func styleRange(f *excelize.File, sheet string, fromCol, fromRow, toCol, toRow, style int) error {
	from, err := cellName(fromCol, fromRow)
	if err != nil {
		return err
	}
	to, err := cellName(toCol, toRow)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, from, to, style)
}

// addSheet reuses the default sheet of a new workbook for the first sheet so no
// empty "Sheet1" is left behind.
func addSheet(f *excelize.File, name string, first bool) error {
	if first {
		return f.SetSheetName(f.GetSheetName(0), name)
	}
	_, err := f.NewSheet(name)
	return err
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	start, err := cellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, start, &values)
}

// writeHeader writes a styled header row starting at column 1.
func writeHeader(f *excelize.File, sheet string, row int, headers []string, style int) error {
	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := writeRow(f, sheet, row, values); err != nil {
		return err
	}
	return styleRange(f, sheet, 1, row, len(headers), row, style)
}

// freezeAbove keeps rows above firstDataRow and columns before firstDataCol in view.
func freezeAbove(f *excelize.File, sheet string, firstDataCol, firstDataRow int) error {
	topLeft, err := cellName(firstDataCol, firstDataRow)
	if err != nil {
		return err
	}
	pane := "bottomLeft"
	if firstDataCol > 1 {
		pane = "bottomRight"
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      firstDataCol - 1,
		YSplit:      firstDataRow - 1,
		TopLeftCell: topLeft,
		ActivePane:  pane,
	})
}

func yearSheetName(year int) string {
	return strconv.Itoa(year)
}
