// pkg/session/errors.go
package session

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolvedTool indicates a declared tool has no catalog entry
	ErrUnresolvedTool = errors.New("tool not found in catalog")

	// ErrUnresolvedLibrary indicates a declared library has no catalog entry
	ErrUnresolvedLibrary = errors.New("library not found in catalog")

	// ErrDiagnosticCommand indicates an init script line exited non-zero
	ErrDiagnosticCommand = errors.New("init command failed")
)

// Error wraps an error with evaluation context
type Error struct {
	Op   string // Operation that failed
	Name string // Tool, library or script line if applicable
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
