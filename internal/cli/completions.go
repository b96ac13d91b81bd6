package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathname/internal/files/filesystem"
	"github.com/vvka-141/pathname/internal/tui/components"
)

// outputFormats contains valid --format values for shell completion.
var outputFormats = []string{formatText, formatYAML}

// completeFormats provides shell completion for --format.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, f := range outputFormats {
		if strings.HasPrefix(f, toComplete) {
			matches = append(matches, f)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories completes the single path argument with directories.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completePaths(args, toComplete, true)
}

// completeAnyPath completes the single path argument with any filesystem entry.
func completeAnyPath(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completePaths(args, toComplete, false)
}

func completePaths(args []string, toComplete string, dirsOnly bool) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	completer := components.NewPathCompleter(filesystem.NewOSProbe(), dirsOnly)
	matches := completer.Complete(context.Background(), toComplete)
	return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
