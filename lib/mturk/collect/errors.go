package collect

import "fmt"

// InputError reports an invalid or ambiguous request. It is always
// detected before any remote call is made and is never retried.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Reason
}

func inputErrorf(format string, args ...any) *InputError {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}

// LookupError reports a selector that resolved to zero matching parents.
type LookupError struct {
	Selector string
	Pattern  string
	// Suggestion is the closest value observed while resolving, when one
	// exists.
	Suggestion string
}

func (e *LookupError) Error() string {
	msg := fmt.Sprintf("no HITs matched %s %q", e.Selector, e.Pattern)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (closest match: %q)", e.Suggestion)
	}
	return msg
}

// RetryError is the terminal state of the retry machine: a remote call
// that kept failing after the maximum number of attempts. It aborts the
// whole collection; partial results are not returned.
type RetryError struct {
	Operation string
	ParentId  string
	Attempts  int
	Err       error
}

func (e *RetryError) Error() string {
	if e.ParentId == "" {
		return fmt.Sprintf("%s failed after %d attempts: %s", e.Operation, e.Attempts, e.Err)
	}
	return fmt.Sprintf("%s for %q failed after %d attempts: %s", e.Operation, e.ParentId, e.Attempts, e.Err)
}

func (e *RetryError) Unwrap() error {
	return e.Err
}
