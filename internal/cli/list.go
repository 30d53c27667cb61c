// internal/cli/list.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/devshell/pkg/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entries",
	Long:  `List every resolvable name in the local package catalog.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cat := catalog.New(config.CatalogPath)

	names, err := cat.Names()
	if err != nil {
		return fmt.Errorf("listing catalog: %w", err)
	}

	if len(names) == 0 {
		fmt.Printf("Catalog at %s is empty. Run 'devshell sync' first.\n", config.CatalogPath)
		return nil
	}

	fmt.Printf("Catalog: %s\n\n", config.CatalogPath)
	for _, name := range names {
		entry, err := cat.Load(name)
		if err != nil {
			fmt.Printf("  %s (unreadable: %v)\n", name, err)
			continue
		}
		if entry.Version != "" {
			fmt.Printf("  %s %s\n", name, entry.Version)
		} else {
			fmt.Printf("  %s\n", name)
		}
	}

	return nil
}
