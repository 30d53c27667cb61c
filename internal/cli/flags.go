// internal/cli/flags.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagsCmd = &cobra.Command{
	Use:   "flags [library]",
	Short: "Print compiler and linker flags for a library",
	Long: `Resolve a library against the catalog and print its compiler and
linker flags, pkg-config style: a .pc file shipped with the library wins,
otherwise -I/-L/-l flags are synthesized from its install layout.`,
	Args: cobra.ExactArgs(1),
	RunE: runFlags,
}

func runFlags(cmd *cobra.Command, args []string) error {
	shell, err := newShell()
	if err != nil {
		return err
	}

	flags, err := shell.Flags(args[0])
	if err != nil {
		return err
	}

	fmt.Println(flags.String())
	return nil
}
