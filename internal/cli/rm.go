package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathname/internal/tui"
	"github.com/vvka-141/pathname/internal/ui"
	"github.com/vvka-141/pathname/pkg/pathname"
)

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Remove a file or directory tree",
	Long: `Rm removes <path> and everything below it, children before parents.
Symbolic links are unlinked, never followed.

Interactive sessions must confirm by typing the basename of <path>.
Non-interactive sessions (CI, pipes, PATHNAME_NON_INTERACTIVE=1) require --force.

Examples:
  pathname rm ./build
  pathname rm ./build --force --async`,
	Args:              RequirePath,
	RunE:              runRm,
	ValidArgsFunction: completeAnyPath,
}

type rmFlagValues struct {
	async bool
	force bool
}

var rmFlags rmFlagValues

// selectApprover picks the approval flow for rm. Replaced in tests.
var selectApprover = func(force, verbose bool) (pathname.Approver, error) {
	if force {
		return ui.NewForcedApprover(verbose), nil
	}
	if !tui.IsInteractive() {
		return nil, fmt.Errorf("%w: refusing to remove without confirmation in a non-interactive session; use --force", pathname.ErrApprovalDenied)
	}
	return ui.NewInteractiveApprover(verbose), nil
}

func init() {
	rootCmd.AddCommand(rmCmd)

	rmCmd.Flags().BoolVar(&rmFlags.async, "async", false,
		"Walk the tree with concurrent directory reads before removing")
	rmCmd.Flags().BoolVar(&rmFlags.force, "force", false,
		"Skip the interactive confirmation (a short countdown is shown instead)\n"+
			"Required in non-interactive sessions")
}

func runRm(cmd *cobra.Command, args []string) error {
	env, err := buildEnvironment(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()

	target := pathname.New(args[0])

	// Fail on a missing target before asking for confirmation.
	if _, err := env.probe.TypeOf(ctx, target); err != nil {
		return fmt.Errorf("remove failed: %w", err)
	}

	approver, err := selectApprover(rmFlags.force, env.verbose)
	if err != nil {
		return err
	}
	approved, err := approver.RequestApproval(ctx, target)
	if err != nil {
		return fmt.Errorf("approval failed: %w", err)
	}
	if !approved {
		return fmt.Errorf("%w: %s was not removed", pathname.ErrApprovalDenied, target)
	}

	removed, err := resolve(ctx, rmFlags.async,
		func() (pathname.Path, error) { return env.remover.Remove(ctx, target) },
		func() <-chan pathname.Outcome[pathname.Path] { return env.remover.RemoveAsync(ctx, target) },
	)
	if err != nil {
		return fmt.Errorf("remove failed: %w", err)
	}

	env.logger.Info("removed %s", removed)
	return nil
}
