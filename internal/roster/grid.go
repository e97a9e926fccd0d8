package roster

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/consent-generator/internal/types"
)

// plainNumber matches an unsigned integer or decimal serial. ParseFloat alone
// would also admit forms like "NaN", "1e5" or hex floats.
var plainNumber = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// textCellFunc reports whether the cell at (row, col) of the grid was stored as text.
// Grid coordinates are 0-based and include the header row.
type textCellFunc func(row, col int) bool

// recordsFromGrid maps a sheet whose first row is the header onto raw records.
// Header names are matched case-insensitively; unknown columns are ignored.
func recordsFromGrid(rows [][]string, isText textCellFunc) []types.RawRecord {
	if len(rows) == 0 {
		return []types.RawRecord{}
	}

	columns := make(map[string]int)
	for i, name := range rows[0] {
		key := normalizeHeader(name)
		if _, seen := columns[key]; !seen && key != "" {
			columns[key] = i
		}
	}

	records := make([]types.RawRecord, 0, len(rows)-1)
	for r := 1; r < len(rows); r++ {
		row := rows[r]
		records = append(records, types.RawRecord{
			Role:       cellValue(row, columns, FieldRole),
			FullName:   cellValue(row, columns, FieldFullName),
			BirthDate:  cellDate(row, r, columns, isText),
			TutorName:  cellValue(row, columns, FieldTutorName),
			TutorPhone: cellValue(row, columns, FieldTutorPhone),
		})
	}
	return records
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

func cellValue(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func cellDate(row []string, r int, columns map[string]int, isText textCellFunc) types.RawDateField {
	raw := cellValue(row, columns, FieldBirthDate)
	if strings.TrimSpace(raw) == "" {
		return types.AbsentDate{}
	}
	if isText == nil || !isText(r, columns[FieldBirthDate]) {
		if v := strings.TrimSpace(raw); plainNumber.MatchString(v) {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return types.NumericDate{Serial: f}
			}
		}
	}
	return types.TextDate{Value: raw}
}
