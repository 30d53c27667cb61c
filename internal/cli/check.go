// internal/cli/check.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/devshell/pkg/descriptor"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that every declared name resolves",
	Long: `Resolve every tool and library in the descriptor against the
catalog without creating a session, and report each name that is missing.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	spec, err := descriptor.LoadWithOverlay(config.Descriptor)
	if err != nil {
		return err
	}

	shell, err := newShell()
	if err != nil {
		return err
	}

	missing := shell.Verify(spec)
	missingSet := make(map[string]bool, len(missing))
	for _, name := range missing {
		missingSet[name] = true
	}

	report := func(kind string, names []string) {
		for _, name := range names {
			marker := "✓"
			if missingSet[name] {
				marker = "✗"
			}
			fmt.Printf("  %s %s (%s)\n", marker, name, kind)
		}
	}

	fmt.Printf("Checking %s against %s\n\n", spec.Name, config.CatalogPath)
	report("tool", spec.Tools)
	report("library", spec.Libraries)

	if len(missing) > 0 {
		return fmt.Errorf("%d name(s) unresolved", len(missing))
	}

	fmt.Printf("\nAll names resolved.\n")
	return nil
}
