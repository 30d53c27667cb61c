// pkg/platform/utils.go
package platform

import "os/exec"

// lookupCommand resolves a command on PATH
func lookupCommand(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
