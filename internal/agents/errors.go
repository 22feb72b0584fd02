package agents

import "fmt"

// InputError reports a malformed or missing workflow input field. Workflows
// fail fast on it before making any external call.
type InputError struct {
	Field   string
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input field %q: %s", e.Field, e.Message)
	}
	return "invalid input: " + e.Message
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
