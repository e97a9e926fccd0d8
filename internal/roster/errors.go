// Package roster loads participant rosters from JSON and spreadsheet files and classifies their rows.
package roster

import (
	"errors"
	"fmt"
)

// ErrMalformedJSON is wrapped by LoadError when a JSON roster cannot be parsed
var ErrMalformedJSON = errors.New("malformed JSON roster")

// LoadError represents an error reading or decoding a roster file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	prefix := "load error"
	if e.Path != "" {
		prefix = fmt.Sprintf("load error (%s)", e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
