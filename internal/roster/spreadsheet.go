package roster

import (
	"io"
	"regexp"
	"strings"

	"github.com/extrame/xls"
	"github.com/jonathan/consent-generator/internal/types"
	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads the first worksheet of an Office Open XML workbook.
// Cell values are read raw so that date cells arrive as serial numbers.
func LoadXLSX(r io.Reader) ([]types.RawRecord, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &LoadError{Message: "failed to open workbook", Cause: err}
	}
	defer func() { _ = file.Close() }()

	sheet := file.GetSheetName(0)
	if sheet == "" {
		return []types.RawRecord{}, nil
	}

	rows, err := file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &LoadError{Message: "failed to read worksheet " + sheet, Cause: err}
	}

	isText := func(row, col int) bool {
		cell, err := excelize.CoordinatesToCellName(col+1, row+1)
		if err != nil {
			return false
		}
		cellType, err := file.GetCellType(sheet, cell)
		if err != nil {
			return false
		}
		return cellType == excelize.CellTypeSharedString || cellType == excelize.CellTypeInlineString
	}

	return recordsFromGrid(rows, isText), nil
}

// LoadXLS reads the first worksheet of a legacy BIFF workbook
func LoadXLS(r io.ReadSeeker) ([]types.RawRecord, error) {
	workbook, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, &LoadError{Message: "failed to open workbook", Cause: err}
	}
	if workbook == nil {
		return nil, &LoadError{Message: "failed to open workbook: no workbook stream"}
	}
	if workbook.NumSheets() == 0 {
		return []types.RawRecord{}, nil
	}

	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return []types.RawRecord{}, nil
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheetRow(sheet, i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		width := row.LastCol()
		if width == 0 {
			width = maxProbeColumns
		}
		cells := make([]string, 0, width)
		for c := 0; c < width; c++ {
			cells = append(cells, row.Col(c))
		}
		rows = append(rows, trimTrailingBlanks(cells))
	}

	dropTruncatedDates(rows)
	return recordsFromGrid(rows, nil), nil
}

// maxProbeColumns bounds the scan of rows stored without a ROW record,
// which report no last column.
const maxProbeColumns = 64

// xlsMonthOnly is how the xls reader renders cells with a built-in date
// format: year and month, the day dropped.
var xlsMonthOnly = regexp.MustCompile(`^\d{4}\.\d{2}$`)

// sheetRow returns row i, or nil when the sheet holds no such row.
// WorkSheet.Row dereferences the missing entry, so the panic is recovered.
func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

// dropTruncatedDates blanks birth dates the xls reader reduced to "yyyy.MM".
// They would otherwise pass as serial numbers; with the day gone they are
// treated as absent.
func dropTruncatedDates(rows [][]string) {
	if len(rows) == 0 {
		return
	}
	col := -1
	for i, name := range rows[0] {
		if normalizeHeader(name) == FieldBirthDate {
			col = i
			break
		}
	}
	if col < 0 {
		return
	}
	for _, row := range rows[1:] {
		if col < len(row) && xlsMonthOnly.MatchString(strings.TrimSpace(row[col])) {
			row[col] = ""
		}
	}
}

func trimTrailingBlanks(cells []string) []string {
	n := len(cells)
	for n > 0 && cells[n-1] == "" {
		n--
	}
	return cells[:n]
}
