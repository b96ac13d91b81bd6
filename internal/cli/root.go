package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathname",
	Short: "Walk, remove and create filesystem trees",
	Long: `pathname walks directory trees in deterministic pre-order, removes them
bottom-up and creates directories together with their missing ancestors.

Walks can run sequentially or fan out directory reads concurrently (--async);
both forms produce the same ordering. Symbolic links are listed, never followed.

Configuration is read from pathname.yaml in the working directory (or --config),
then overridden by PATHNAME_* environment variables. A .env file is loaded first.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Path not found
  12 - Permission denied
  13 - Not a directory
  14 - Directory not empty
  15 - User denied removal approval`,
	SilenceUsage: true,
}

// rootFlagValues holds flags shared by every command.
type rootFlagValues struct {
	verbose    bool
	configPath string
}

var rootFlags rootFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false,
		"Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&rootFlags.configPath, "config", "",
		"Path to a config file (default: ./pathname.yaml when present)")
}
