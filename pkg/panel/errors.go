package panel

import "fmt"

// PageError represents a failed fetch of one listing page. It aborts the
// whole aggregation run: a partial server list would be indistinguishable
// from a complete one to the caller.
type PageError struct {
	// Page is the 1-based page number that failed.
	Page int

	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *PageError) Error() string {
	return fmt.Sprintf("failed to fetch panel servers page %d: %v", e.Page, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *PageError) Unwrap() error {
	return e.Cause
}
