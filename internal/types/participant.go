// Package types provides type definitions for structured data used throughout the consent generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Variant selects which consent template a participant is bound to
type Variant int

const (
	// VariantChild is consent given by a legal representative on behalf of a minor
	VariantChild Variant = iota
	// VariantEscort is first-person consent given by an accompanying adult
	VariantEscort
)

// String returns the lowercase variant name used in logs and summaries
func (v Variant) String() string {
	if v == VariantEscort {
		return "escort"
	}
	return "child"
}

// Participant is a roster row that survived classification.
// FullName is never empty and never purely numeric.
type Participant struct {
	Role       string    `json:"role"`
	FullName   string    `json:"full_name"`
	BirthDate  time.Time `json:"birth_date,omitempty"` // zero when absent or unparseable
	TutorName  string    `json:"tutor_name,omitempty"`
	TutorPhone string    `json:"tutor_phone,omitempty"`
	Variant    Variant   `json:"-"`
}

// IsEscort reports whether the participant consents on their own behalf
func (p Participant) IsEscort() bool {
	return p.Variant == VariantEscort
}

// HasBirthDate reports whether a birth date was recovered from the roster
func (p Participant) HasBirthDate() bool {
	return !p.BirthDate.IsZero()
}
