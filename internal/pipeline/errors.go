// Package pipeline renders a consent document per participant and packages them into one archive.
package pipeline

import (
	"fmt"
	"strings"
)

// PreconditionError reports session fields that prevent generation.
// Generation is refused outright; nothing is rendered.
type PreconditionError struct {
	Fields []string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("cannot generate consents: invalid %s", strings.Join(e.Fields, ", "))
}

// GenerateError represents a failure rendering or packaging the batch
type GenerateError struct {
	Message string
	Cause   error
}

func (e *GenerateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generate error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generate error: %s", e.Message)
}

func (e *GenerateError) Unwrap() error {
	return e.Cause
}
