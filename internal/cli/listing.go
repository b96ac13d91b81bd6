package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathname/pkg/pathname"
)

var childrenCmd = &cobra.Command{
	Use:               "children <path>",
	Short:             "List the entry names of a directory",
	Args:              RequirePath,
	RunE:              runChildren,
	ValidArgsFunction: completeDirectories,
}

var siblingsCmd = &cobra.Command{
	Use:   "siblings <path>",
	Short: "List the other entries of a path's parent directory",
	Long: `Siblings lists the entry names of the parent of <path>, excluding <path> itself.
The filesystem root has no siblings.`,
	Args:              RequirePath,
	RunE:              runSiblings,
	ValidArgsFunction: completeAnyPath,
}

var componentsCmd = &cobra.Command{
	Use:   "components <path>",
	Short: "Print every prefix of a path, root first",
	Long: `Components prints the cumulative prefixes of <path> after normalization,
one per line. The filesystem is not consulted.

Example:
  $ pathname components /usr/local/bin
  /
  /usr
  /usr/local
  /usr/local/bin`,
	Args: RequirePath,
	RunE: runComponents,
}

func init() {
	rootCmd.AddCommand(childrenCmd)
	rootCmd.AddCommand(siblingsCmd)
	rootCmd.AddCommand(componentsCmd)
}

func runChildren(cmd *cobra.Command, args []string) error {
	env, err := buildEnvironment(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(cmd)
	defer cancel()

	children, err := env.walker.Children(ctx, pathname.New(args[0]))
	if err != nil {
		return fmt.Errorf("children failed: %w", err)
	}
	return printPaths(cmd, children)
}

func runSiblings(cmd *cobra.Command, args []string) error {
	env, err := buildEnvironment(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(cmd)
	defer cancel()

	siblings, err := env.walker.Siblings(ctx, pathname.New(args[0]))
	if err != nil {
		return fmt.Errorf("siblings failed: %w", err)
	}
	return printPaths(cmd, siblings)
}

func runComponents(cmd *cobra.Command, args []string) error {
	return pathname.New(args[0]).Traverse(func(p pathname.Path) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), p)
		return err
	})
}

func printPaths(cmd *cobra.Command, paths []pathname.Path) error {
	for _, p := range paths {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), p); err != nil {
			return err
		}
	}
	return nil
}
