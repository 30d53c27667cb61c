// errors.go
package devshell

import (
	"github.com/arc-language/devshell/pkg/catalog"
	"github.com/arc-language/devshell/pkg/session"
)

// Sentinel errors, re-exported so callers only need errors.Is and this package
var (
	// ErrUnresolvedTool indicates a declared tool has no catalog entry
	ErrUnresolvedTool = session.ErrUnresolvedTool

	// ErrUnresolvedLibrary indicates a declared library has no catalog entry
	ErrUnresolvedLibrary = session.ErrUnresolvedLibrary

	// ErrDiagnosticCommand indicates an init script line exited non-zero
	ErrDiagnosticCommand = session.ErrDiagnosticCommand

	// ErrNotFound indicates a name has no catalog entry
	ErrNotFound = catalog.ErrNotFound
)
