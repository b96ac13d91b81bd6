package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vvka-141/pathname/internal/tui"
	"github.com/vvka-141/pathname/pkg/pathname"
)

// ForcedApprover approves removal without input after a short countdown.
// Used when rm runs with --force.
type ForcedApprover struct {
	verbose   bool
	countdown time.Duration
	output    io.Writer
	sleepFn   func(time.Duration)
}

// NewForcedApprover creates a ForcedApprover writing to stderr.
func NewForcedApprover(verbose bool) pathname.Approver {
	return &ForcedApprover{
		verbose:   verbose,
		countdown: pathname.DefaultForceApprovalCountdown,
		output:    os.Stderr,
		sleepFn:   time.Sleep,
	}
}

// RequestApproval warns about the removal, counts down and approves.
// Cancelling ctx during the countdown denies approval.
func (a *ForcedApprover) RequestApproval(ctx context.Context, target pathname.Path) (bool, error) {
	countdown := a.countdown
	if countdown <= 0 {
		countdown = pathname.DefaultForceApprovalCountdown
	}

	fmt.Fprintln(a.output)
	fmt.Fprintln(a.output, tui.WarningStyle.Render(fmt.Sprintf("DANGER: removing %s and everything below it", target)))
	fmt.Fprintln(a.output)

	for i := int(countdown.Seconds()); i > 0; i-- {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(a.output)
			return false, err
		}
		fmt.Fprintf(a.output, "\rRemoving in: %d seconds... (Press Ctrl+C to cancel)", i)
		a.sleepFn(time.Second)
	}
	if err := ctx.Err(); err != nil {
		fmt.Fprintln(a.output)
		return false, err
	}

	fmt.Fprintf(a.output, "\r%s Proceeding with removal of %s                    \n", tui.SymbolCheck, target)
	return true, nil
}

var _ pathname.Approver = (*ForcedApprover)(nil)
