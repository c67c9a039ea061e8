package ingestion

import "fmt"

// Error represents a failure to turn a document into plain text
type Error struct {
	Source  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingestion of %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingestion of %s: %s", e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
