package tree

import (
	"context"

	"github.com/vvka-141/pathname/pkg/pathname"
)

// Creator creates a directory together with any missing ancestors, visiting
// the prefixes of the target root first.
type Creator struct {
	probe  pathname.Probe
	logger pathname.Logger
	opts   Options
}

var _ pathname.Creator = (*Creator)(nil)

// NewCreator creates a Creator over probe.
// Panics if probe or logger is nil.
func NewCreator(probe pathname.Probe, logger pathname.Logger, opts Options) *Creator {
	if probe == nil {
		panic("probe cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Creator{probe: probe, logger: logger, opts: opts}
}

// Create makes every missing prefix of target and returns target.
// Calling it again on an existing tree is a no-op.
func (c *Creator) Create(ctx context.Context, target pathname.Path) (pathname.Path, error) {
	err := target.Traverse(func(prefix pathname.Path) error {
		return c.ensure(ctx, prefix)
	})
	if err != nil {
		return pathname.Path{}, err
	}
	return target, nil
}

// CreateAsync runs Create on its own goroutine. Prefixes are still created one at a time.
func (c *Creator) CreateAsync(ctx context.Context, target pathname.Path) <-chan pathname.Outcome[pathname.Path] {
	return pathname.Go(func() (pathname.Path, error) {
		return c.Create(ctx, target)
	})
}

func (c *Creator) ensure(ctx context.Context, prefix pathname.Path) error {
	exists, err := c.probe.Exists(ctx, prefix)
	if err != nil {
		return err
	}
	if exists {
		if c.opts.VerifyAncestors {
			return c.verify(ctx, prefix)
		}
		return nil
	}

	if err := c.probe.CreateDirectory(ctx, prefix); err != nil {
		// Another creator may have made it between Exists and CreateDirectory.
		if ok, _ := c.probe.Exists(ctx, prefix); ok {
			return nil
		}
		return err
	}
	c.logger.Verbose("created directory %s", prefix)
	return nil
}

// verify accepts directories and symlinks; a symlink to a non-directory
// surfaces as NotADirectory from the next CreateDirectory.
func (c *Creator) verify(ctx context.Context, prefix pathname.Path) error {
	typ, err := c.probe.TypeOf(ctx, prefix)
	if err != nil {
		return err
	}
	if typ != pathname.TypeDirectory && typ != pathname.TypeSymlink {
		return pathname.NewError("mkdir", prefix, pathname.KindNotADirectory, nil)
	}
	return nil
}
