// pkg/env/env.go
package env

import (
	"os"
	"path/filepath"
)

// New creates an Environment over an install root using the default layout
func New(root string) *Environment {
	return NewWithLayout(root, DefaultLayout())
}

// NewWithLayout creates an Environment with an explicit layout
func NewWithLayout(root string, layout Layout) *Environment {
	return &Environment{
		Root:   root,
		layout: layout,
	}
}

// GetBinaryPaths returns the binary directories that exist under the root
func (e *Environment) GetBinaryPaths() []string {
	return e.existingDirs(e.layout.Binaries)
}

// GetLibraryPaths returns the library directories that exist under the root
func (e *Environment) GetLibraryPaths() []string {
	return e.existingDirs(e.layout.Libraries)
}

// GetIncludePaths returns the include directories that exist under the root
func (e *Environment) GetIncludePaths() []string {
	return e.existingDirs(e.layout.Includes)
}

// GetPkgConfigPaths returns the pkg-config directories that exist under the root
func (e *Environment) GetPkgConfigPaths() []string {
	return e.existingDirs(e.layout.PkgConfig)
}

func (e *Environment) existingDirs(relative []string) []string {
	var dirs []string
	for _, rel := range relative {
		dir := filepath.Join(e.Root, rel)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
