// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/devshell/pkg/core"
)

var (
	cfgFile  string
	specFile string
	debug    bool
	config   *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "devshell",
	Short: "Declarative development shells",
	Long: `devshell - Declarative development shells

A descriptor file names the build tools, linkable libraries, environment
variables and init script of a development shell. devshell resolves the
names against a local package catalog and drops you into the shell.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/devshell/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&specFile, "spec", "", "descriptor file (default is devshell.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(enterCmd)
	rootCmd.AddCommand(flagsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if specFile != "" {
		config.Descriptor = specFile
	}
	if debug {
		config.Debug = true
	}
}
