package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// FormatBirthDate renders a birth date as dd.mm.yyyy, or "" when absent
func FormatBirthDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006")
}

// FormatConsentDate renders the signature date as «dd» месяц yyyy г., or "" when absent
func FormatConsentDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("«%02d» %s %d г.", t.Day(), MonthName(t.Month()), t.Year())
}

// MonthName returns the standalone (nominative) Russian name of the month in
// lower case. A bare month layout keeps monday off the genitive forms.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	name := monday.Format(time.Date(2000, m, 1, 0, 0, 0, 0, time.UTC), "January", monday.LocaleRuRU)
	return strings.ToLower(name)
}
