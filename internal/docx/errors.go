package docx

import "fmt"

// WriteError represents a failure while serializing a document
type WriteError struct {
	Part  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("docx write error: %s: %v", e.Part, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
