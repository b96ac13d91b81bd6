package filesystem

import (
	"context"

	"github.com/vvka-141/pathname/pkg/pathname"
)

// Async exposes each Probe primitive in non-blocking form. Every method
// returns immediately with a channel that receives exactly one Outcome.
type Async struct {
	probe pathname.Probe
}

// NewAsync wraps probe.
// Panics if probe is nil.
func NewAsync(probe pathname.Probe) *Async {
	if probe == nil {
		panic("probe cannot be nil")
	}
	return &Async{probe: probe}
}

func (a *Async) Exists(ctx context.Context, p pathname.Path) <-chan pathname.Outcome[bool] {
	return pathname.Go(func() (bool, error) {
		return a.probe.Exists(ctx, p)
	})
}

func (a *Async) TypeOf(ctx context.Context, p pathname.Path) <-chan pathname.Outcome[pathname.NodeType] {
	return pathname.Go(func() (pathname.NodeType, error) {
		return a.probe.TypeOf(ctx, p)
	})
}

func (a *Async) ListChildren(ctx context.Context, p pathname.Path) <-chan pathname.Outcome[[]string] {
	return pathname.Go(func() ([]string, error) {
		return a.probe.ListChildren(ctx, p)
	})
}

func (a *Async) CreateDirectory(ctx context.Context, p pathname.Path) <-chan pathname.Outcome[pathname.Path] {
	return pathname.Go(func() (pathname.Path, error) {
		return p, a.probe.CreateDirectory(ctx, p)
	})
}

func (a *Async) RemoveFile(ctx context.Context, p pathname.Path) <-chan pathname.Outcome[pathname.Path] {
	return pathname.Go(func() (pathname.Path, error) {
		return p, a.probe.RemoveFile(ctx, p)
	})
}

func (a *Async) RemoveEmptyDirectory(ctx context.Context, p pathname.Path) <-chan pathname.Outcome[pathname.Path] {
	return pathname.Go(func() (pathname.Path, error) {
		return p, a.probe.RemoveEmptyDirectory(ctx, p)
	})
}
