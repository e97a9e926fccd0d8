// Package types provides type definitions for structured data used throughout the consent generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// RawRecord is one untyped roster row as read from the input file.
// Text fields are already stringified (absent cells become ""); the birth date
// keeps the shape it had in the source so the date parser can interpret it.
type RawRecord struct {
	Role       string
	FullName   string
	BirthDate  RawDateField
	TutorName  string
	TutorPhone string
}

// RawDateField is the birth_date cell exactly as the source encoded it.
// It is one of NumericDate, TextDate, CalendarDate or AbsentDate.
type RawDateField interface {
	rawDateField()
}

// NumericDate is a spreadsheet serial day count
type NumericDate struct {
	Serial float64
}

// TextDate is a date written as text, e.g. "2024-03-05" or "05.03.24"
type TextDate struct {
	Value string
}

// CalendarDate is a date that already arrived as a native time value
type CalendarDate struct {
	Time time.Time
}

// AbsentDate marks an empty or missing cell
type AbsentDate struct{}

func (NumericDate) rawDateField()  {}
func (TextDate) rawDateField()     {}
func (CalendarDate) rawDateField() {}
func (AbsentDate) rawDateField()   {}
