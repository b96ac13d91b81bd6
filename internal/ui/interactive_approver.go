package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/pathname/internal/tui"
	"github.com/vvka-141/pathname/pkg/pathname"
)

// InteractiveApprover asks the user to type the basename of the path being
// removed before a recursive removal proceeds.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates an InteractiveApprover reading stdin and writing stderr.
func NewInteractiveApprover(verbose bool) pathname.Approver {
	return &InteractiveApprover{
		verbose: verbose,
		input:   os.Stdin,
		output:  os.Stderr,
	}
}

// RequestApproval prompts for the basename of target and approves on an exact match.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, target pathname.Path) (bool, error) {
	name := target.Base().String()

	fmt.Fprintf(a.output, "\n%s\n", tui.WarningStyle.Render(fmt.Sprintf("WARNING: You are about to remove '%s' recursively", target)))
	fmt.Fprintln(a.output, "This will permanently delete every file and directory below it!")
	fmt.Fprintf(a.output, "\nTo confirm, type '%s' and press Enter: ", name)

	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if input == name {
			fmt.Fprintf(a.output, "%s Confirmed. Removing %s...\n", tui.SymbolCheck, target)
			return true, nil
		}
		fmt.Fprintf(a.output, "%s Input '%s' does not match '%s'. Operation cancelled.\n", tui.SymbolCross, input, name)
		return false, nil
	}
}

var _ pathname.Approver = (*InteractiveApprover)(nil)
