package llm

import "fmt"

// CallError represents a failed model call (network, quota, timeout).
// Calls that fail with a CallError are retryable.
type CallError struct {
	Message string
	Cause   error
}

func (e *CallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("model call failed: %s", e.Message)
}

func (e *CallError) Unwrap() error {
	return e.Cause
}
