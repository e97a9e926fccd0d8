// Package types provides type definitions for structured data used throughout the consent generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Session holds the operator inputs for one generation run.
type Session struct {
	OrgName      string        `json:"org_name" validate:"required"`
	ConsentDate  time.Time     `json:"consent_date" validate:"required"`
	Participants []Participant `json:"participants" validate:"min=1"`
}

// ReplaceParticipants swaps in a freshly classified roster. The previous list
// is discarded, never merged.
func (s *Session) ReplaceParticipants(participants []Participant) {
	s.Participants = append([]Participant(nil), participants...)
}

// Escorts returns the escort participants in roster order
func (s *Session) Escorts() []Participant {
	return s.filter(VariantEscort)
}

// Children returns the child participants in roster order
func (s *Session) Children() []Participant {
	return s.filter(VariantChild)
}

func (s *Session) filter(v Variant) []Participant {
	out := make([]Participant, 0, len(s.Participants))
	for _, p := range s.Participants {
		if p.Variant == v {
			out = append(out, p)
		}
	}
	return out
}
