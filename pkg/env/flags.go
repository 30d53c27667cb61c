// pkg/env/flags.go
package env

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FlagsFor synthesizes compiler and linker flags for a library under the
// root: -I for every existing include directory, -L for the directory the
// library file was found in, and -l for the library itself.
func (e *Environment) FlagsFor(name string) (*CompilerFlags, error) {
	lib := e.FindLibrary(name)
	if lib == nil {
		return nil, fmt.Errorf("library %q not found under %s", name, e.Root)
	}

	flags := &CompilerFlags{
		LinkFlags: []string{"-l" + name},
	}

	for _, dir := range e.GetIncludePaths() {
		flags.IncludeFlags = append(flags.IncludeFlags, "-I"+dir)
	}

	flags.LibraryFlags = append(flags.LibraryFlags, "-L"+filepath.Dir(lib.Path))

	return flags, nil
}

// All returns every flag in pkg-config order: includes, library dirs, links
func (f *CompilerFlags) All() []string {
	out := make([]string, 0, len(f.IncludeFlags)+len(f.LibraryFlags)+len(f.LinkFlags))
	out = append(out, f.IncludeFlags...)
	out = append(out, f.LibraryFlags...)
	out = append(out, f.LinkFlags...)
	return out
}

// String formats the flags as a single command line fragment
func (f *CompilerFlags) String() string {
	return strings.Join(f.All(), " ")
}
