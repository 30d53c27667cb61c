// devshell.go
package devshell

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arc-language/devshell/pkg/catalog"
	"github.com/arc-language/devshell/pkg/descriptor"
	"github.com/arc-language/devshell/pkg/env"
	"github.com/arc-language/devshell/pkg/pcfile"
	"github.com/arc-language/devshell/pkg/session"
)

// Re-export the main types for convenience
type (
	Spec          = descriptor.Spec
	Overlay       = descriptor.Overlay
	Entry         = catalog.Entry
	Session       = session.Session
	Config        = session.Config
	CompilerFlags = env.CompilerFlags
	// Error carries the failing operation and name alongside the cause
	Error = session.Error
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return session.DefaultConfig()
}

// Shell ties a package catalog to descriptor evaluation
type Shell struct {
	catalog   *catalog.Catalog
	evaluator *session.Evaluator
	config    *session.Config
}

// New creates a Shell over the catalog rooted at catalogPath
func New(catalogPath string, config *session.Config) (*Shell, error) {
	if config == nil {
		config = session.DefaultConfig()
	}

	if catalogPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			catalogPath = filepath.Join(os.TempDir(), "devshell", "catalog")
		} else {
			catalogPath = filepath.Join(home, ".devshell", "catalog")
		}
	}

	cat := catalog.New(catalogPath)

	evaluator, err := session.NewEvaluator(cat, config)
	if err != nil {
		return nil, fmt.Errorf("initializing evaluator: %w", err)
	}

	return &Shell{
		catalog:   cat,
		evaluator: evaluator,
		config:    config,
	}, nil
}

// Catalog returns the underlying catalog
func (s *Shell) Catalog() *catalog.Catalog {
	return s.catalog
}

// Evaluate materializes a session from a descriptor
func (s *Shell) Evaluate(spec *descriptor.Spec) (*session.Session, error) {
	if spec == nil {
		return nil, fmt.Errorf("descriptor cannot be nil")
	}
	return s.evaluator.Evaluate(spec)
}

// Verify reports every declared name the catalog cannot resolve
func (s *Shell) Verify(spec *descriptor.Spec) []string {
	return s.evaluator.Verify(spec)
}

// Run evaluates a descriptor, executes its init script and hands the
// terminal to an interactive shell until the user exits
func (s *Shell) Run(ctx context.Context, spec *descriptor.Spec) error {
	sess, err := s.Evaluate(spec)
	if err != nil {
		return err
	}

	if err := s.evaluator.RunInit(ctx, sess); err != nil {
		return err
	}

	return s.evaluator.Enter(ctx, sess)
}

// Flags resolves the compiler and linker flags for a declared library,
// pkg-config style: a real .pc file from the entry's pkgconfig directories
// wins, otherwise flags are synthesized from the entry's layout.
func (s *Shell) Flags(name string) (*env.CompilerFlags, error) {
	entry, err := s.catalog.Load(name)
	if err != nil {
		return nil, &Error{Op: "resolve library", Name: name, Err: err}
	}

	if pc, err := pcfile.Find(entry.PkgConfigDirs(), name); err == nil {
		return flagsFromPC(pc), nil
	}

	flags, err := entry.Environment().FlagsFor(name)
	if err != nil {
		return nil, &Error{Op: "query flags", Name: name, Err: err}
	}
	return flags, nil
}

// flagsFromPC sorts parsed .pc flags into the CompilerFlags buckets
func flagsFromPC(pc *pcfile.File) *env.CompilerFlags {
	flags := &env.CompilerFlags{}

	for _, f := range pc.Cflags {
		flags.IncludeFlags = append(flags.IncludeFlags, f)
	}

	for _, f := range pc.Libs {
		if len(f) > 2 && f[:2] == "-L" {
			flags.LibraryFlags = append(flags.LibraryFlags, f)
		} else {
			flags.LinkFlags = append(flags.LinkFlags, f)
		}
	}

	return flags
}
