// pkg/env/layout.go
package env

import (
	"path/filepath"
	"runtime"
)

// DefaultLayout returns the search layout used when a catalog entry does not
// spell out its own directories. It covers both flat store-style roots
// (bin/, lib/, include/) and FHS-style roots (usr/bin, usr/lib, ...).
func DefaultLayout() Layout {
	return Layout{
		Binaries: []string{
			"bin",
			filepath.Join("usr", "bin"),
			filepath.Join("usr", "local", "bin"),
		},
		Libraries: []string{
			"lib",
			"lib64",
			filepath.Join("usr", "lib"),
			filepath.Join("usr", "lib64"),
			filepath.Join("usr", "local", "lib"),
		},
		Includes: []string{
			"include",
			filepath.Join("usr", "include"),
			filepath.Join("usr", "local", "include"),
		},
		PkgConfig: []string{
			filepath.Join("lib", "pkgconfig"),
			filepath.Join("lib64", "pkgconfig"),
			filepath.Join("usr", "lib", "pkgconfig"),
			filepath.Join("usr", "share", "pkgconfig"),
		},
	}
}

// GetLibraryExtensions returns file extensions to look for based on OS
func GetLibraryExtensions() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{".dylib", ".a"}
	case "windows":
		return []string{".dll", ".lib"}
	default: // linux, etc.
		return []string{".so", ".a"}
	}
}

// GetSharedLibraryExtensions returns only shared library extensions
func GetSharedLibraryExtensions() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{".dylib"}
	case "windows":
		return []string{".dll"}
	default:
		return []string{".so"}
	}
}
