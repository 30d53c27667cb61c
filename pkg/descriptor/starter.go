// pkg/descriptor/starter.go
package descriptor

import (
	"fmt"
	"os"
)

// The starter init script prints two fixed banner lines before querying the
// compiler and linker flags for the declared cryptography library.
const starterTemplate = `name: %s
tools:
  - gcc
  - make
  - gofmt
  - staticcheck
libraries:
  - openssl
env:
  PKG_CONFIG_ALLOW_CROSS: "1"
init:
  - echo "Environment loaded."
  - echo "Toolchain ready."
  - devshell flags openssl
`

// WriteStarter writes a starter descriptor to path. It refuses to overwrite
// an existing file.
func WriteStarter(path, name string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	data := fmt.Sprintf(starterTemplate, name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("writing descriptor: %w", err)
	}

	return nil
}
