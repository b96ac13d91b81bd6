package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/pathname/internal/tui"
	"github.com/vvka-141/pathname/pkg/pathname"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatYAML = "yaml"
)

var walkCmd = &cobra.Command{
	Use:   "walk <path>",
	Short: "List a directory tree in pre-order",
	Long: `Walk lists <path> followed by every node below it in pre-order: each
directory is followed by its children's subtrees, siblings in listing order.

Symbolic links are listed but never followed.

Examples:
  # Whole tree
  pathname walk ./build

  # Root and its direct children only
  pathname walk ./build --depth 1

  # Concurrent directory reads, same ordering
  pathname walk ./build --async

  # Only Go files, as YAML
  pathname walk . --match '**/*.go' --format yaml`,
	Args:              RequirePath,
	RunE:              runWalk,
	ValidArgsFunction: completeDirectories,
}

type walkFlagValues struct {
	depth  int
	async  bool
	match  string
	format string
}

var walkFlags walkFlagValues

func init() {
	rootCmd.AddCommand(walkCmd)

	walkCmd.Flags().IntVar(&walkFlags.depth, "depth", 0,
		"Maximum depth below <path> to descend (default: unbounded)\n"+
			"0 or a negative value lists only <path> itself")
	walkCmd.Flags().BoolVar(&walkFlags.async, "async", false,
		"Read directories concurrently (bounded by max_concurrent_reads)")
	walkCmd.Flags().StringVar(&walkFlags.match, "match", "",
		"Only print paths whose location relative to <path> matches this glob\n"+
			"Supports ** for any number of directories, e.g. '**/*.go'")
	walkCmd.Flags().StringVar(&walkFlags.format, "format", formatText,
		"Output format: text|yaml")
	_ = walkCmd.RegisterFlagCompletionFunc("format", completeFormats)
}

// walkDepth maps the --depth flag to a pathname.Depth; an unset flag is unbounded.
func walkDepth(cmd *cobra.Command) pathname.Depth {
	if !cmd.Flags().Changed("depth") {
		return pathname.Unbounded
	}
	return pathname.MaxDepth(walkFlags.depth)
}

func runWalk(cmd *cobra.Command, args []string) error {
	if walkFlags.format != formatText && walkFlags.format != formatYAML {
		return fmt.Errorf("invalid argument %q for --format: must be %s or %s", walkFlags.format, formatText, formatYAML)
	}
	if walkFlags.match != "" && !doublestar.ValidatePattern(walkFlags.match) {
		return fmt.Errorf("invalid argument %q for --match: malformed glob", walkFlags.match)
	}

	env, err := buildEnvironment(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()

	root := pathname.New(args[0])
	depth := walkDepth(cmd)

	paths, err := resolve(ctx, walkFlags.async,
		func() ([]pathname.Path, error) { return env.walker.Walk(ctx, root, depth) },
		func() <-chan pathname.Outcome[[]pathname.Path] { return env.walker.WalkAsync(ctx, root, depth) },
	)
	if err != nil {
		return fmt.Errorf("walk failed: %w", err)
	}

	paths, err = filterPaths(root, paths, walkFlags.match)
	if err != nil {
		return err
	}
	env.logger.Verbose("printing %d of the walked paths", len(paths))

	out := cmd.OutOrStdout()
	if walkFlags.format == formatYAML {
		return writeYAML(out, paths)
	}
	return writeText(ctx, out, env.probe, paths)
}

// filterPaths keeps paths whose slash-separated location relative to root
// matches pattern. An empty pattern keeps everything.
func filterPaths(root pathname.Path, paths []pathname.Path, pattern string) ([]pathname.Path, error) {
	if pattern == "" {
		return paths, nil
	}
	kept := make([]pathname.Path, 0, len(paths))
	for _, p := range paths {
		rel, err := p.Rel(root)
		if err != nil {
			return nil, err
		}
		ok, err := doublestar.Match(pattern, filepath.ToSlash(rel.String()))
		if err != nil {
			return nil, fmt.Errorf("invalid argument %q for --match: %w", pattern, err)
		}
		if ok {
			kept = append(kept, p)
		}
	}
	return kept, nil
}

func writeYAML(out io.Writer, paths []pathname.Path) error {
	data, err := yaml.Marshal(paths)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// writeText prints one path per line. On a color terminal directories and
// symlinks are highlighted, which costs one lstat per path.
func writeText(ctx context.Context, out io.Writer, probe pathname.Probe, paths []pathname.Path) error {
	styled := tui.ColorEnabled(out)
	for _, p := range paths {
		line := p.String()
		if styled {
			line = styleByType(ctx, probe, p)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func styleByType(ctx context.Context, probe pathname.Probe, p pathname.Path) string {
	typ, err := probe.TypeOf(ctx, p)
	if err != nil {
		return p.String()
	}
	switch typ {
	case pathname.TypeDirectory:
		return tui.DirectoryStyle.Render(p.String())
	case pathname.TypeSymlink:
		return tui.SymlinkStyle.Render(p.String())
	default:
		return tui.FileStyle.Render(p.String())
	}
}
