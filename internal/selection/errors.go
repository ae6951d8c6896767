// Package selection turns a repository and document options into the ordered, truncated section content a template renders.
package selection

import "fmt"

// Error represents an error that occurs while selecting document content
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
