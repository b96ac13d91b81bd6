package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/pathname/internal/config"
	"github.com/vvka-141/pathname/internal/files/filesystem"
	"github.com/vvka-141/pathname/internal/logging"
	"github.com/vvka-141/pathname/internal/tree"
	"github.com/vvka-141/pathname/pkg/pathname"
)

// environment is everything a command needs once configuration is resolved.
type environment struct {
	cfg     *config.ProjectConfig
	verbose bool
	logger  pathname.Logger
	probe   pathname.Probe
	walker  *tree.Walker
	remover *tree.Remover
	creator *tree.Creator
}

// loadProjectConfig loads godotenv and project configuration.
// A missing ./pathname.yaml is not an error; a missing --config file is.
func loadProjectConfig() (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	cfg, err := config.Resolve(wd, rootFlags.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newLogger selects the logger implementation for the configured format.
func newLogger(cfg *config.ProjectConfig, verbose bool, out io.Writer) pathname.Logger {
	if cfg.LogFormat == config.LogFormatJSON {
		return logging.NewZapLogger(out, verbose)
	}
	return logging.NewConsoleLoggerTo(out, verbose)
}

// buildEnvironment resolves configuration and wires the probe and tree operations.
func buildEnvironment(cmd *cobra.Command) (*environment, error) {
	cfg, err := loadProjectConfig()
	if err != nil {
		return nil, err
	}

	mode, err := cfg.FileMode()
	if err != nil {
		return nil, err
	}

	verbose := rootFlags.verbose || cfg.Verbose
	logger := newLogger(cfg, verbose, cmd.ErrOrStderr())
	probe := filesystem.NewOSProbe(filesystem.WithDirMode(mode))
	opts := tree.DefaultOptions()
	opts.MaxConcurrentReads = cfg.MaxConcurrentReads
	opts.VerifyAncestors = cfg.VerifyAncestors
	walker := tree.NewWalker(probe, logger, opts)

	logger.Verbose("config: max_concurrent_reads=%d dir_mode=%04o verify_ancestors=%t log_format=%s",
		cfg.MaxConcurrentReads, mode, cfg.VerifyAncestors, cfg.LogFormat)

	return &environment{
		cfg:     cfg,
		verbose: verbose,
		logger:  logger,
		probe:   probe,
		walker:  walker,
		remover: tree.NewRemover(walker),
		creator: tree.NewCreator(probe, logger, opts),
	}, nil
}

// signalContext returns a context cancelled on Ctrl+C or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// resolve returns the Outcome of an async call, or the blocking result.
func resolve[T any](ctx context.Context, async bool, blocking func() (T, error), nonBlocking func() <-chan pathname.Outcome[T]) (T, error) {
	if async {
		return pathname.Await(ctx, nonBlocking())
	}
	return blocking()
}
