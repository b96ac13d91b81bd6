package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathname/pkg/pathname"
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <path>",
	Short: "Create a directory and any missing ancestors",
	Long: `Mkdir creates every missing prefix of <path>, starting closest to the root.
Existing prefixes are left untouched, so running it twice is harmless.

New directories get dir_mode from the configuration (default 0700).
With verify_ancestors enabled, an existing prefix that is not a directory fails
with exit code 13.

Examples:
  pathname mkdir ./build/cache/objects`,
	Args:              RequirePath,
	RunE:              runMkdir,
	ValidArgsFunction: completeDirectories,
}

type mkdirFlagValues struct {
	async bool
}

var mkdirFlags mkdirFlagValues

func init() {
	rootCmd.AddCommand(mkdirCmd)

	mkdirCmd.Flags().BoolVar(&mkdirFlags.async, "async", false,
		"Run the creation on a background goroutine (prefixes are still created in order)")
}

func runMkdir(cmd *cobra.Command, args []string) error {
	env, err := buildEnvironment(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()

	target := pathname.New(args[0])
	created, err := resolve(ctx, mkdirFlags.async,
		func() (pathname.Path, error) { return env.creator.Create(ctx, target) },
		func() <-chan pathname.Outcome[pathname.Path] { return env.creator.CreateAsync(ctx, target) },
	)
	if err != nil {
		return fmt.Errorf("mkdir failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), created)
	return nil
}
