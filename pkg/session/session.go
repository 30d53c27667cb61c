// pkg/session/session.go
package session

import (
	"errors"
	"io"
	"log"
	"os"
	"strings"

	"github.com/arc-language/devshell/pkg/catalog"
	"github.com/arc-language/devshell/pkg/descriptor"
	"github.com/arc-language/devshell/pkg/platform"
)

// Evaluator turns descriptors into sessions against one catalog
type Evaluator struct {
	catalog  *catalog.Catalog
	config   *Config
	platform *platform.Platform
	logger   *log.Logger
}

// NewEvaluator creates an Evaluator over a catalog
func NewEvaluator(cat *catalog.Catalog, cfg *Config) (*Evaluator, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.BaseEnv == nil {
		cfg.BaseEnv = os.Environ()
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(cfg.Stderr, "[DEBUG] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	plat, err := platform.Detect()
	if err != nil {
		return nil, err
	}
	if cfg.Shell != "" {
		plat.Shell = cfg.Shell
	}

	return &Evaluator{
		catalog:  cat,
		config:   cfg,
		platform: plat,
		logger:   logger,
	}, nil
}

// Evaluate resolves every declared name and materializes a session. Any
// unresolvable tool or library fails the whole evaluation; no session is
// produced. Evaluating the same descriptor against the same catalog twice
// yields sessions with identical environments.
func (ev *Evaluator) Evaluate(spec *descriptor.Spec) (*Session, error) {
	s := &Session{
		Name:           spec.Name,
		Tools:          make(map[string]*catalog.Entry, len(spec.Tools)),
		Libraries:      make(map[string]*catalog.Entry, len(spec.Libraries)),
		LibraryPathVar: ev.platform.LibraryPathVar,
		Init:           append([]string(nil), spec.Init...),
	}

	for _, name := range spec.Tools {
		entry, err := ev.catalog.Load(name)
		if err != nil {
			return nil, &Error{Op: "resolve tool", Name: name, Err: unresolved(err, ErrUnresolvedTool)}
		}
		s.Tools[name] = entry
		s.BinDirs = appendNew(s.BinDirs, entry.BinDirs()...)
	}

	for _, name := range spec.Libraries {
		entry, err := ev.catalog.Load(name)
		if err != nil {
			return nil, &Error{Op: "resolve library", Name: name, Err: unresolved(err, ErrUnresolvedLibrary)}
		}
		s.Libraries[name] = entry
		s.LibDirs = appendNew(s.LibDirs, entry.LibDirs()...)
		// Headers and .pc files of declared libraries must be findable
		// by pkg-config style queries inside the session
		s.BinDirs = appendNew(s.BinDirs, entry.BinDirs()...)
	}

	s.Env = ev.buildEnv(spec, s)

	ev.logger.Printf("evaluated %q: %d tools, %d libraries", spec.Name, len(s.Tools), len(s.Libraries))
	return s, nil
}

// Verify resolves every declared name without building a session and
// reports all missing names, for dry-run checks
func (ev *Evaluator) Verify(spec *descriptor.Spec) (missing []string) {
	for _, name := range spec.Tools {
		if !ev.catalog.Has(name) {
			missing = append(missing, name)
		}
	}
	for _, name := range spec.Libraries {
		if !ev.catalog.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Platform returns the platform the evaluator resolved at construction
func (ev *Evaluator) Platform() *platform.Platform {
	return ev.platform
}

func (ev *Evaluator) buildEnv(spec *descriptor.Spec, s *Session) map[string]string {
	env := make(map[string]string, len(ev.config.BaseEnv)+len(spec.Env)+2)
	for _, pair := range ev.config.BaseEnv {
		if i := strings.Index(pair, "="); i > 0 {
			env[pair[:i]] = pair[i+1:]
		}
	}

	sep := string(os.PathListSeparator)

	if len(s.BinDirs) > 0 {
		path := strings.Join(s.BinDirs, sep)
		if existing := env["PATH"]; existing != "" {
			path += sep + existing
		}
		env["PATH"] = path
	}

	if len(s.LibDirs) > 0 {
		libPath := strings.Join(s.LibDirs, sep)
		if existing := env[s.LibraryPathVar]; existing != "" {
			libPath += sep + existing
		}
		env[s.LibraryPathVar] = libPath
	}

	// Make .pc files of declared libraries visible to a real pkg-config
	var pcDirs []string
	for _, name := range spec.Libraries {
		pcDirs = appendNew(pcDirs, s.Libraries[name].PkgConfigDirs()...)
	}
	if len(pcDirs) > 0 {
		pcPath := strings.Join(pcDirs, sep)
		if existing := env["PKG_CONFIG_PATH"]; existing != "" {
			pcPath += sep + existing
		}
		env["PKG_CONFIG_PATH"] = pcPath
	}

	for k, v := range spec.Env {
		env[k] = v
	}

	for _, k := range spec.UnsetEnv {
		delete(env, k)
	}

	return env
}

// unresolved maps a catalog miss to the matching resolution error while
// passing through read and parse failures untouched
func unresolved(err error, sentinel error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return sentinel
	}
	return err
}

func appendNew(base []string, items ...string) []string {
	for _, item := range items {
		found := false
		for _, existing := range base {
			if existing == item {
				found = true
				break
			}
		}
		if !found {
			base = append(base, item)
		}
	}
	return base
}
