// internal/cli/enter.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/devshell"
	"github.com/arc-language/devshell/pkg/descriptor"
)

var enterCmd = &cobra.Command{
	Use:   "enter",
	Short: "Evaluate the descriptor and enter the shell",
	Long: `Evaluate the descriptor against the catalog, run its init script
and spawn an interactive shell with the resulting environment.

Examples:
  devshell enter
  devshell enter --spec ci/devshell.yaml`,
	Args: cobra.NoArgs,
	RunE: runEnter,
}

func runEnter(cmd *cobra.Command, args []string) error {
	spec, err := descriptor.LoadWithOverlay(config.Descriptor)
	if err != nil {
		return err
	}

	shell, err := newShell()
	if err != nil {
		return err
	}

	if config.Debug {
		fmt.Printf("Descriptor: %s (%s)\n", config.Descriptor, spec.Name)
		fmt.Printf("Catalog: %s\n", config.CatalogPath)
	}

	return shell.Run(context.Background(), spec)
}

// newShell builds the facade from the loaded config
func newShell() (*devshell.Shell, error) {
	cfg := devshell.DefaultConfig()
	cfg.Debug = config.Debug
	cfg.Shell = config.Shell

	return devshell.New(config.CatalogPath, cfg)
}
