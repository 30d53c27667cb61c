// pkg/env/types.go
package env

// Layout defines where files are located within an install root
type Layout struct {
	Binaries  []string // Relative paths to binary directories
	Libraries []string // Relative paths to library directories
	Includes  []string // Relative paths to include directories
	PkgConfig []string // Relative paths to pkg-config directories
}

// Library represents a found library file
type Library struct {
	Name     string // Library name (e.g., "ssl")
	Path     string // Absolute path to library file
	Type     string // Extension: ".so", ".a", ".dylib", ".dll", ".lib"
	IsStatic bool   // True for .a / .lib files
}

// Environment represents an install root searched for tools and libraries
type Environment struct {
	Root   string // Install root (e.g., /opt/devshell/openssl)
	layout Layout
}

// CompilerFlags holds compiler and linker flags
type CompilerFlags struct {
	IncludeFlags []string // -I flags
	LibraryFlags []string // -L flags
	LinkFlags    []string // -l flags
}
