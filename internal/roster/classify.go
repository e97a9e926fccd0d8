package roster

import (
	"regexp"
	"strings"

	"github.com/jonathan/consent-generator/internal/dates"
	"github.com/jonathan/consent-generator/internal/types"
)

// Default role labels used by the roster spreadsheets
const (
	DefaultEscortRole = "сопровождающий"
)

// DefaultTotalsRoles mark the summary row at the bottom of a roster
var DefaultTotalsRoles = []string{"итого", "total"}

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// Classifier turns raw roster rows into participants.
// Role comparisons are case-insensitive and ignore surrounding whitespace.
type Classifier struct {
	EscortRole  string
	TotalsRoles []string
}

// NewClassifier creates a classifier; an empty escort role or an empty
// totals list falls back to the defaults.
func NewClassifier(escortRole string, totalsRoles []string) Classifier {
	if strings.TrimSpace(escortRole) == "" {
		escortRole = DefaultEscortRole
	}
	if len(totalsRoles) == 0 {
		totalsRoles = DefaultTotalsRoles
	}
	return Classifier{EscortRole: escortRole, TotalsRoles: totalsRoles}
}

// DefaultClassifier uses the stock escort label and totals sentinels
func DefaultClassifier() Classifier {
	return NewClassifier("", nil)
}

// Classify normalizes rows and drops those that are not participants:
// rows without a name, totals rows, and rows whose name is only digits.
// Output order follows input order.
func (c Classifier) Classify(rows []types.RawRecord) []types.Participant {
	participants := make([]types.Participant, 0, len(rows))
	for _, row := range rows {
		p, ok := c.participant(row)
		if !ok {
			continue
		}
		participants = append(participants, p)
	}
	return participants
}

// IsEscort reports whether role is the escort label
func (c Classifier) IsEscort(role string) bool {
	return normalizeRole(role) == normalizeRole(c.EscortRole)
}

// IsTotals reports whether role marks a totals row
func (c Classifier) IsTotals(role string) bool {
	r := normalizeRole(role)
	for _, t := range c.TotalsRoles {
		if r == normalizeRole(t) {
			return true
		}
	}
	return false
}

func (c Classifier) participant(row types.RawRecord) (types.Participant, bool) {
	p := types.Participant{
		Role:       strings.TrimSpace(row.Role),
		FullName:   strings.TrimSpace(row.FullName),
		TutorName:  strings.TrimSpace(row.TutorName),
		TutorPhone: strings.TrimSpace(row.TutorPhone),
	}
	if p.FullName == "" || c.IsTotals(p.Role) || digitsOnly.MatchString(p.FullName) {
		return types.Participant{}, false
	}

	if birth, ok := dates.Parse(row.BirthDate); ok {
		p.BirthDate = birth
	}
	p.Variant = types.VariantChild
	if c.IsEscort(p.Role) {
		p.Variant = types.VariantEscort
	}
	return p, true
}

func normalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
