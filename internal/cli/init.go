// internal/cli/init.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arc-language/devshell/pkg/descriptor"
)

var initName string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter descriptor",
	Long: `Write a starter devshell.yaml into the current directory. The
starter declares a C toolchain and OpenSSL, and its init script prints a
two line banner followed by the resolved OpenSSL flags.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "descriptor name (default: directory name)")
}

func runInit(cmd *cobra.Command, args []string) error {
	name := initName
	if name == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		name = filepath.Base(wd)
	}

	if err := descriptor.WriteStarter(config.Descriptor, name); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", config.Descriptor)
	return nil
}
