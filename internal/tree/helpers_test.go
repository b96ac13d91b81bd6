package tree

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/vvka-141/pathname/internal/files/filesystem"
	"github.com/vvka-141/pathname/internal/logging"
	"github.com/vvka-141/pathname/pkg/pathname"
)

// newScenario builds the reference tree:
//
//	/R
//	  bar        (file)
//	  boo/       (dir)
//	    moo/     (dir)
//	      zoo    (file)
func newScenario(t *testing.T) *filesystem.MemoryProbe {
	t.Helper()
	mp := filesystem.NewMemoryProbe("/R")
	mp.AddFile("bar", "bar")
	mp.AddDir("boo/moo")
	mp.AddFile("boo/moo/zoo", "zoo")
	return mp
}

func paths(ss ...string) []pathname.Path {
	out := make([]pathname.Path, len(ss))
	for i, s := range ss {
		out[i] = pathname.New(s)
	}
	return out
}

func newTestWalker(probe pathname.Probe, opts Options) *Walker {
	return NewWalker(probe, logging.NewNullLogger(), opts)
}

// faultFs fails Open for selected paths, which makes ListChildren fail there.
type faultFs struct {
	afero.Fs
	failOpen map[string]error
}

func (f *faultFs) Open(name string) (afero.File, error) {
	if err, ok := f.failOpen[filepath.Clean(name)]; ok {
		return nil, err
	}
	return f.Fs.Open(name)
}

// recordingProbe records every mutation in call order.
type recordingProbe struct {
	pathname.Probe

	mu      sync.Mutex
	removed []pathname.Path
	created []pathname.Path
}

func (r *recordingProbe) CreateDirectory(ctx context.Context, p pathname.Path) error {
	if err := r.Probe.CreateDirectory(ctx, p); err != nil {
		return err
	}
	r.mu.Lock()
	r.created = append(r.created, p)
	r.mu.Unlock()
	return nil
}

func (r *recordingProbe) RemoveFile(ctx context.Context, p pathname.Path) error {
	if err := r.Probe.RemoveFile(ctx, p); err != nil {
		return err
	}
	r.mu.Lock()
	r.removed = append(r.removed, p)
	r.mu.Unlock()
	return nil
}

func (r *recordingProbe) RemoveEmptyDirectory(ctx context.Context, p pathname.Path) error {
	if err := r.Probe.RemoveEmptyDirectory(ctx, p); err != nil {
		return err
	}
	r.mu.Lock()
	r.removed = append(r.removed, p)
	r.mu.Unlock()
	return nil
}

// slowProbe delays listings so concurrent branches finish out of listing order,
// and tracks the peak number of listings in flight.
type slowProbe struct {
	pathname.Probe
	delay func(p pathname.Path) time.Duration

	inFlight atomic.Int64
	peak     atomic.Int64
}

func (s *slowProbe) ListChildren(ctx context.Context, p pathname.Path) ([]string, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		peak := s.peak.Load()
		if n <= peak || s.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	if s.delay != nil {
		time.Sleep(s.delay(p))
	}
	return s.Probe.ListChildren(ctx, p)
}
