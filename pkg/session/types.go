// pkg/session/types.go
package session

import (
	"io"
	"log"
	"os"
	"sort"
	"time"

	"github.com/arc-language/devshell/pkg/catalog"
)

// Config holds configuration for session evaluation
type Config struct {
	// BaseEnv is the environment the session starts from.
	// Defaults to the process environment.
	BaseEnv []string

	// Shell overrides the interactive shell spawned by Enter
	Shell string

	// Dir is the working directory for init script lines and the shell
	Dir string

	// Stdin, Stdout, Stderr wire the session's standard streams.
	// Default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Timeout for a single init script line, zero means no limit
	Timeout time.Duration

	// Debug enables debug logging
	Debug bool

	// Logger for custom logging
	Logger *log.Logger
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		BaseEnv: os.Environ(),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Session is one materialized shell environment. It is built fresh on every
// evaluation and holds no reference to the descriptor or catalog it came
// from; discarding it is the only cleanup.
type Session struct {
	Name string // Descriptor name

	// Env is the complete session environment
	Env map[string]string

	// BinDirs are the resolved tool directories prepended to PATH,
	// in declaration order
	BinDirs []string

	// LibDirs are the resolved runtime library directories, in
	// declaration order
	LibDirs []string

	// LibraryPathVar is the variable LibDirs were published under
	LibraryPathVar string

	// Tools and Libraries map declared names to their catalog entries
	Tools     map[string]*catalog.Entry
	Libraries map[string]*catalog.Entry

	// Init is the startup script, one command per line
	Init []string
}

// Environ returns the session environment as KEY=value pairs, sorted by key
func (s *Session) Environ() []string {
	out := make([]string, 0, len(s.Env))
	for k, v := range s.Env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
