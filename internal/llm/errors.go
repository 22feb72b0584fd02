package llm

import "fmt"

// CompletionError is the single error kind surfaced by the completion
// service. Workflows that tolerate field-level failure catch it locally;
// all-or-nothing workflows propagate it to the caller.
type CompletionError struct {
	Message string
	Cause   error
}

func (e *CompletionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("completion service: %s: %v", e.Message, e.Cause)
	}
	return "completion service: " + e.Message
}

func (e *CompletionError) Unwrap() error {
	return e.Cause
}
