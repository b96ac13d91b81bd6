package filesystem

import (
	"github.com/spf13/afero"
)

// OSProbe implements pathname.Probe for the host filesystem.
type OSProbe struct {
	*Probe
}

// NewOSProbe creates a new host filesystem probe.
func NewOSProbe(opts ...Option) *OSProbe {
	return &OSProbe{Probe: NewProbe(afero.NewOsFs(), opts...)}
}
