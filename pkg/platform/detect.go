// pkg/platform/detect.go
package platform

import (
	"fmt"
	"os"
	"runtime"
)

// Platform represents the detected system platform
type Platform struct {
	OS             string // linux, darwin, windows
	Arch           string // amd64, arm64, 386, arm
	Shell          string // interactive shell to spawn
	LibraryPathVar string // runtime library search path variable
}

// Detect detects the current platform, its interactive shell and the
// environment variable used for runtime library resolution
func Detect() (*Platform, error) {
	p := &Platform{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	var err error
	p.LibraryPathVar, err = LibraryPathVar(p.OS)
	if err != nil {
		return nil, err
	}

	p.Shell = loginShell(p.OS)
	if p.Shell == "" {
		return nil, fmt.Errorf("no usable shell found")
	}

	return p, nil
}

// LibraryPathVar returns the runtime library search path variable for an OS
func LibraryPathVar(goos string) (string, error) {
	switch goos {
	case "linux":
		return "LD_LIBRARY_PATH", nil
	case "darwin":
		return "DYLD_LIBRARY_PATH", nil
	case "windows":
		// Windows resolves DLLs through PATH
		return "PATH", nil
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (shell: %s, library path: %s)",
		p.OS, p.Arch, p.Shell, p.LibraryPathVar)
}

// loginShell returns the user's shell, falling back to a system default
func loginShell(goos string) string {
	if goos == "windows" {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			return comspec
		}
		return "cmd.exe"
	}

	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}

	for _, candidate := range []string{"bash", "zsh", "sh"} {
		if path, ok := lookupCommand(candidate); ok {
			return path
		}
	}

	if _, err := os.Stat("/bin/sh"); err == nil {
		return "/bin/sh"
	}

	return ""
}
