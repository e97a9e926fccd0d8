// Package dates normalizes the date encodings found in rosters and formats dates for consent documents.
package dates

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/consent-generator/internal/types"
	"github.com/xuri/excelize/v2"
)

// maxSerial is 9999-12-31 in the 1900 date system
const maxSerial = 2958465

var isoLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02T15:04-07:00",
	"2006-01-02T15:04-0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01", // first of the month
}

// day, month, then a 2- or 4-digit year; the separator may vary between positions
var dmyPattern = regexp.MustCompile(`^(\d{1,2})[.=/-](\d{1,2})[.=/-](\d{2}|\d{4})$`)

// Parse interprets a raw birth date cell. The second result is false when the
// value is absent or cannot be read as a calendar date; Parse never fails loudly.
func Parse(field types.RawDateField) (time.Time, bool) {
	switch v := field.(type) {
	case types.CalendarDate:
		return v.Time, !v.Time.IsZero()
	case types.NumericDate:
		return FromSerial(v.Serial)
	case types.TextDate:
		return ParseText(v.Value)
	default:
		return time.Time{}, false
	}
}

// FromSerial converts a spreadsheet serial day count (1900 date system) to a date.
// The fractional time-of-day part is dropped.
func FromSerial(serial float64) (time.Time, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, false
	}
	whole := math.Floor(serial)
	if whole < 1 || whole > maxSerial {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(whole, false)
	if err != nil {
		return time.Time{}, false
	}
	return civil(t.Year(), t.Month(), t.Day()), true
}

// ParseText tries ISO 8601 first and then the D.M.Y family ("05.03.24", "5/3/2024").
// Two-digit years are placed in the 2000s.
func ParseText(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return civil(t.Year(), t.Month(), t.Day()), true
		}
	}

	m := dmyPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if len(m[3]) == 2 {
		year += 2000
	}
	return validDate(year, month, day)
}

// validDate rejects day/month combinations that time.Date would silently roll over
func validDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := civil(year, time.Month(month), day)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

func civil(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
