// internal/cli/sync.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/arc-language/devshell/pkg/catalog"
)

var (
	syncRepoURL string
	syncBranch  string
	syncBundle  string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Update the local catalog",
	Long: `Update the local catalog from the catalog repository, or import a
.tar.xz catalog bundle. Only catalog metadata is transferred; devshell never
installs packages.

Examples:
  devshell sync
  devshell sync --repo https://example.com/catalog --branch stable
  devshell sync --bundle ./catalog.tar.xz`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncRepoURL, "repo", "", "catalog repository URL")
	syncCmd.Flags().StringVar(&syncBranch, "branch", "", "catalog repository branch")
	syncCmd.Flags().StringVar(&syncBundle, "bundle", "", "import a .tar.xz bundle instead of cloning")
}

func runSync(cmd *cobra.Command, args []string) error {
	if syncBundle != "" {
		return catalog.ImportBundle(config.CatalogPath, syncBundle)
	}
	return catalog.Sync(config.CatalogPath, syncRepoURL, syncBranch)
}
