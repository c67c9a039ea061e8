package ranking

import "fmt"

// ScoringError represents a failure of a whole scoring operation. No partial result accompanies it.
type ScoringError struct {
	Message string
	Cause   error
}

func (e *ScoringError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ScoringError) Unwrap() error {
	return e.Cause
}
