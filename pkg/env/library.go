// pkg/env/library.go
package env

import (
	"path/filepath"
)

// FindLibrary searches for a specific library by name.
// Returns the first match found in library search paths.
func (e *Environment) FindLibrary(name string) *Library {
	searchPaths := e.GetLibraryPaths()
	extensions := GetLibraryExtensions()

	for _, dir := range searchPaths {
		for _, ext := range extensions {
			// Try lib{name}{ext} pattern (e.g., libssl.so)
			filename := "lib" + name + ext
			fullPath := filepath.Join(dir, filename)

			if fileExists(fullPath) {
				return &Library{
					Name:     name,
					Path:     fullPath,
					Type:     ext,
					IsStatic: ext == ".a" || ext == ".lib",
				}
			}

			// Try versioned: lib{name}{ext}.* (e.g., libssl.so.3)
			matches, _ := filepath.Glob(filepath.Join(dir, filename+".*"))
			if len(matches) > 0 {
				return &Library{
					Name:     name,
					Path:     matches[0],
					Type:     ext,
					IsStatic: ext == ".a" || ext == ".lib",
				}
			}
		}
	}

	return nil
}

// FindSharedLibrary searches specifically for shared libraries (.so, .dylib, .dll)
func (e *Environment) FindSharedLibrary(name string) *Library {
	searchPaths := e.GetLibraryPaths()
	extensions := GetSharedLibraryExtensions()

	for _, dir := range searchPaths {
		for _, ext := range extensions {
			filename := "lib" + name + ext
			fullPath := filepath.Join(dir, filename)

			if fileExists(fullPath) {
				return &Library{
					Name:     name,
					Path:     fullPath,
					Type:     ext,
					IsStatic: false,
				}
			}

			matches, _ := filepath.Glob(filepath.Join(dir, filename+".*"))
			if len(matches) > 0 {
				return &Library{
					Name:     name,
					Path:     matches[0],
					Type:     ext,
					IsStatic: false,
				}
			}
		}
	}

	return nil
}

// HasLibrary checks if a library exists in the environment
func (e *Environment) HasLibrary(name string) bool {
	return e.FindLibrary(name) != nil
}
