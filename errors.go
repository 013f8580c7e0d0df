package fixturego

import (
	"fmt"
)

// Error types for better error handling and context
var (
	// ErrNotFound indicates the requested fixture or file was not found
	ErrNotFound = fmt.Errorf("not found")

	// ErrInvalidInput indicates invalid input parameters
	ErrInvalidInput = fmt.Errorf("invalid input")

	// ErrExhausted indicates a bounded pool has no capacity left
	ErrExhausted = fmt.Errorf("pool exhausted")

	// ErrOverflow indicates a result does not fit the target integer type
	ErrOverflow = fmt.Errorf("integer overflow")
)

// VerifyError represents an error that occurred while verifying a fixture
type VerifyError struct {
	Op      string // Operation that failed (e.g., "scan fixture", "read golden")
	Fixture string // Fixture name or source path where the error occurred
	Wrapped error  // The underlying error
}

func (e *VerifyError) Error() string {
	if e.Fixture == "" {
		return fmt.Sprintf("verify error: %s: %v", e.Op, e.Wrapped)
	}
	return fmt.Sprintf("verify error: %s: %s: %v", e.Op, e.Fixture, e.Wrapped)
}

func (e *VerifyError) Unwrap() error {
	return e.Wrapped
}

// LoadError represents an error that occurred while loading a fixture
// package for type checking
type LoadError struct {
	Path    string   // File or package path that was loaded
	Op      string   // Operation that failed
	Errors  []string // List of errors reported by the loader
	Wrapped error    // The underlying error
}

func (e *LoadError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("load error: %s: %s: %v (and %d more errors)",
			e.Path, e.Op, e.Errors[0], len(e.Errors)-1)
	}
	return fmt.Sprintf("load error: %s: %s: %v", e.Path, e.Op, e.Wrapped)
}

func (e *LoadError) Unwrap() error {
	return e.Wrapped
}
