package workbook

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"mostruario_digital/internal/catalog"
	"mostruario_digital/internal/usecase/interfaces"
)

// ExcelizeLoader reads an .xlsx workbook into raw sheet tables. The first
// row of each sheet is the header row; every later row becomes a
// column-name -> cell mapping. Raw cell values are requested so that
// date-formatted serial numbers arrive as their stored numeric form and
// the engine's own date resolution applies.
type ExcelizeLoader struct{}

var _ interfaces.IWorkbookLoader = (*ExcelizeLoader)(nil)

func NewExcelizeLoader() *ExcelizeLoader {
	return &ExcelizeLoader{}
}

func (l *ExcelizeLoader) Load(ctx context.Context, path string) (catalog.Workbook, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Workbook{}, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return catalog.Workbook{}, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var wb catalog.Workbook
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return catalog.Workbook{}, fmt.Errorf("read sheet %s: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, catalog.Sheet{Name: name, Rows: sheetRows(rows)})
	}
	return wb, nil
}

func sheetRows(raw [][]string) []catalog.Row {
	if len(raw) == 0 {
		return nil
	}
	headers := raw[0]

	var out []catalog.Row
	for _, line := range raw[1:] {
		row := make(catalog.Row, len(headers))
		empty := true
		for i, header := range headers {
			if strings.TrimSpace(header) == "" {
				continue
			}
			var value string
			if i < len(line) {
				value = line[i]
			}
			cell := toCell(value)
			if !cell.IsNull() {
				empty = false
			}
			row[header] = cell
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out
}

// toCell types a raw cell: empty is null, anything that parses as a float
// is numeric (spreadsheet number-typed columns arrive this way, including
// float-looking supplier codes and serial dates), the rest is text.
func toCell(value string) catalog.Cell {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return catalog.NullCell()
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return catalog.NumberCell(f)
	}
	return catalog.TextCell(value)
}
