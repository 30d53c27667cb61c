// pkg/catalog/types.go
package catalog

import (
	"github.com/arc-language/devshell/pkg/env"
)

// Entry describes one resolvable name in the catalog: where its install
// root lives and which directories under it hold binaries, libraries,
// headers and pkg-config files. Directory lists are relative to Root and
// optional; an entry without them is searched with the default layout.
type Entry struct {
	Name      string   `toml:"name"`
	Version   string   `toml:"version"`
	Root      string   `toml:"root"`
	Bin       []string `toml:"bin"`
	Lib       []string `toml:"lib"`
	Include   []string `toml:"include"`
	PkgConfig []string `toml:"pkgconfig"`
	StorePath string   `toml:"store_path"`
}

// Environment returns the search environment for the entry's install root
func (e *Entry) Environment() *env.Environment {
	if len(e.Bin) == 0 && len(e.Lib) == 0 && len(e.Include) == 0 && len(e.PkgConfig) == 0 {
		return env.New(e.Root)
	}

	layout := env.DefaultLayout()
	if len(e.Bin) > 0 {
		layout.Binaries = e.Bin
	}
	if len(e.Lib) > 0 {
		layout.Libraries = e.Lib
	}
	if len(e.Include) > 0 {
		layout.Includes = e.Include
	}
	if len(e.PkgConfig) > 0 {
		layout.PkgConfig = e.PkgConfig
	}

	return env.NewWithLayout(e.Root, layout)
}

// BinDirs returns the entry's existing binary directories
func (e *Entry) BinDirs() []string {
	return e.Environment().GetBinaryPaths()
}

// LibDirs returns the entry's existing library directories
func (e *Entry) LibDirs() []string {
	return e.Environment().GetLibraryPaths()
}

// PkgConfigDirs returns the entry's existing pkg-config directories
func (e *Entry) PkgConfigDirs() []string {
	return e.Environment().GetPkgConfigPaths()
}
